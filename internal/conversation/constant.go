package conversation

// Log prefixes
const (
	LogPrefixChat    = "internal.conversation.Chat"
	LogPrefixAnswer  = "internal.conversation.Answer"
	LogPrefixInstant = "internal.conversation.instant"
)

const (
	ChatTemperature     = 0.7
	ChatMaxTokens       = 1024
	RealtimeTemperature = 0.7
	RealtimeMaxTokens   = 512

	DefaultHistoryLimit  = 20
	DefaultSearchResults = 5

	endOfSequence = "</s>"
)

// MsgRateLimited is returned in place of an answer while the model is rate limited.
const MsgRateLimited = "I'm temporarily rate-limited. Please try again."

// PromptChatSystem receives the username and the assistant name.
const PromptChatSystem = `Hello, I am %s, You are a very accurate and advanced AI chatbot named %s which also has real-time up-to-date information from the internet.
*** Do not tell time until I ask, do not talk too much, just answer the question.***
*** Reply in only English, even if the question is in another language, reply in English.***
*** Do not provide notes in the output, just answer the question and never mention your training data. ***`

// PromptRealtimeSystem receives the username and the assistant name.
const PromptRealtimeSystem = `Hello, I am %s, You are a very accurate and advanced AI chatbot named %s which has real-time up-to-date information from the internet.
*** Provide Answers In a Professional Way, make sure to add full stops, commas, question marks, and use proper grammar.***
*** Just answer the question from the provided data in a professional way. ***`

// PromptLiveData introduces deterministic lookups that must be preferred over search snippets.
const PromptLiveData = "Live data (prefer these exact values over search results):\n"
