package chatlog

const (
	LogPrefixTransact = "internal.chatlog.Transact"
	LogPrefixLoad     = "internal.chatlog.Load"

	seedUserTemplate      = "Hello %s, How are you?"
	seedAssistantTemplate = "Welcome %s. I am doing well. How may I help you?"

	corruptSuffix = ".corrupt-"

	filePerm = 0o644
	dirPerm  = 0o755
)
