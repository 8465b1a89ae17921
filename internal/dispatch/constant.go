package dispatch

const (
	LogPrefixDispatch = "internal.dispatch.Dispatch"

	DefaultMaxParallel = 8
	DefaultFarewell    = "Okay, bye!"
	MsgNotPermitted    = "I can only do that for a trusted sender."

	msgUnavailable = "%s is not available."
	msgUnsupported = "I don't know how to do that yet."
	msgCrashed     = "Something went wrong while doing that."
	msgImageFailed = "I couldn't start image generation."
	msgEmptyPrompt = "Tell me what image to generate."
)
