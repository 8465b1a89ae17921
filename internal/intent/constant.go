package intent

import "time"

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
	LogPrefixDecide   = "internal.intent.Decide"
	LogPrefixRoute    = "internal.intent.Route"
)

// Classifier configuration
const (
	ClassifierTemperature = 0.1
	ClassifierMaxTokens   = 256
	DefaultMaxRetries     = 3
	MaxRateLimitBackoff   = 10 * time.Second
	DefaultCacheSize      = 256
	DefaultCacheTTL       = 10 * time.Minute

	// UndecidedMarker is what the classifier emits when it could not fill in an argument.
	UndecidedMarker = "(query)"
)

// User visible notices
const (
	NoticeFallback    = "(Decision model unavailable; using fallback routing.)"
	NoticeRateLimited = "(Decision model is temporarily rate-limited; answering directly.)"
)

// Error messages
const (
	ErrMsgLLMCallFailed  = "LLM call failed"
	ErrMsgEmptyResponse  = "Empty or undecided classifier output, retrying"
	ErrMsgRetryExhausted = "Retry bound reached, falling back to general"
	ErrMsgRateLimited    = "Classifier rate limited, backing off"
)

// PromptClassifierSystem is the fixed instruction block. %s receives the category list.
const PromptClassifierSystem = `You are a very accurate Decision-Making Model which decides what kind of query is given to you.
You will decide whether a query is a 'general' query, a 'realtime' query, or is asking to perform a task or automation.
*** Do not answer any query, just decide what kind of query is given to you. ***

Categories:
%s

Formatting rules:
- Output one task per line. Never put commas between tasks.
- Every line must start with one of the category prefixes above.
- Use all lowercase for the prefix. Keep names and quoted text as the user said them.
- If the query asks for several things, output one line per thing in the order asked.
- If you cannot decide, or the query is not in the list above, respond with 'general (query)' where (query) is the query itself.
- Do not add explanations.`

// categoryDescriptions explains each prefix to the classifier, with a positive and a negative hint.
var categoryDescriptions = map[Kind]string{
	KindGeneral: `-> 'general (query)' if the query can be answered by a conversational model and does not need up to date information.
   e.g. 'who was akbar?' -> 'general who was akbar?', 'how are you?' -> 'general how are you?', 'what's the time?' -> 'general what's the time?'.
   Not for questions about current events, people's current roles or live data.`,
	KindRealtime: `-> 'realtime (query)' if the query needs up to date information.
   e.g. 'who is the indian prime minister' -> 'realtime who is the indian prime minister', 'today's news' -> 'realtime today's news', 'weather in paris' -> 'realtime weather in paris'.
   Not for questions about historical facts.`,
	KindOpen: `-> 'open (application or website name)' to open an application or website, one line per app.
   e.g. 'open facebook, telegram and chrome' -> 'open facebook', 'open telegram', 'open chrome'.`,
	KindClose:         `-> 'close (application name)' to close an application, one line per app. e.g. 'close notepad' -> 'close notepad'.`,
	KindPlay:          `-> 'play (song name)' to play a song or video. e.g. 'play let her go' -> 'play let her go'.`,
	KindGenerateImage: `-> 'generate image (image prompt)' to create an image. e.g. 'make a picture of a lion' -> 'generate image a lion'.`,
	KindReminder:      `-> 'reminder (datetime with message)' to set a reminder. e.g. 'remind me at 9pm on 25th june about my meeting' -> 'reminder 9:00pm 25th june meeting'.`,
	KindSystem:        `-> 'system (task name)' for mute, unmute, volume up or volume down. e.g. 'turn the volume up' -> 'system volume up'.`,
	KindContent:       `-> 'content (topic)' to write any kind of content: applications, code, emails drafts saved to a file. e.g. 'write an application for sick leave' -> 'content application for sick leave'.`,
	KindGoogleSearch:  `-> 'google search (topic)' to search a topic on google. e.g. 'search golang on google' -> 'google search golang'.`,
	KindYouTubeSearch: `-> 'youtube search (topic)' to search a topic on youtube. e.g. 'find lofi on youtube' -> 'youtube search lofi'.`,
	KindSendEmail: `-> 'send email (instruction)' to compose and send an email. Keep recipients, subject and body words in the instruction.
   e.g. 'email bob@x.com about the meeting' -> 'send email to bob@x.com about the meeting'.`,
	KindExit: `-> 'exit' if the user says goodbye or wants to end the conversation. e.g. 'bye jarvis' -> 'exit'.`,
}

// categoryOrder is the order categories appear in the prompt.
var categoryOrder = []Kind{
	KindGeneral, KindRealtime, KindOpen, KindClose, KindPlay, KindGenerateImage, KindReminder,
	KindSystem, KindContent, KindGoogleSearch, KindYouTubeSearch, KindSendEmail, KindExit,
}

type example struct {
	query  string
	answer string
}

// fewShot biases the classifier towards the line based output format.
var fewShot = []example{
	{"how are you?", "general how are you?"},
	{"do you like pizza?", "general do you like pizza?"},
	{"open chrome and tell me about mahatma gandhi.", "open chrome\ngeneral tell me about mahatma gandhi."},
	{"open chrome and firefox", "open chrome\nopen firefox"},
	{"what is today's date and by the way remind me that i have a dancing performance on 5th aug at 11pm", "general what is today's date\nreminder 11:00pm 5th aug dancing performance"},
	{"who won the last football world cup", "realtime who won the last football world cup"},
	{"chat with me.", "general chat with me."},
	{"bye", "exit"},
}
