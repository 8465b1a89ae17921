package usecase

const (
	LogPrefixProcess = "internal.assistant.Process"
	LogPrefixMerge   = "internal.assistant.merge"

	MsgDone         = "Done."
	MsgAnswerFailed = "Sorry, I couldn't process that request."
)
