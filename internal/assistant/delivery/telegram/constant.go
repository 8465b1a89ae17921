package telegram

import "time"

const (
	defaultTimeout = 2 * time.Minute

	commandStart = "/start"
	commandHelp  = "/help"
	commandLog   = "/log"

	logEntries = 10

	msgStart = "👋 Hi! I'm your assistant.\n\n" +
		"Send me what you would say out loud, for example:\n" +
		"• open chrome and play lofi music\n" +
		"• what's the weather in Paris\n" +
		"• reminder 9:00pm 25th june meeting with team\n\n" +
		"Type /help for more."
	msgHelp = "*How to use:*\n\n" +
		"Several requests can go in one message, separated by \"and\" or commas. " +
		"Actions run on the assistant's computer, questions get one combined answer.\n\n" +
		"`/log` shows the latest conversation."
	msgVoiceUnsupported = "Voice messages are not supported here yet, please type your request."
	msgNotAllowed       = "Sorry, this chat is not allowed to use the assistant."
	msgTooFast          = "You're sending messages too quickly. Please wait a moment."
	msgFailed           = "Something went wrong while processing your request. Please try again."
	msgEmptyLog         = "The conversation log is empty."
	msgLogRestricted    = "The conversation log is only shared with allowed chats."

	LogPrefixWebhook = "internal.assistant.delivery.telegram.HandleWebhook"
	LogPrefixProcess = "internal.assistant.delivery.telegram.processMessage"
)
