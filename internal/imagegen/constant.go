package imagegen

const (
	LogPrefixStart = "internal.imagegen.Start"
	LogPrefixRun   = "internal.imagegen.run"

	DefaultImageCount = 4
	DefaultDataDir    = "Data"
	maxSeed           = 1_000_000
	notificationBuf   = 16

	promptSuffix = ", quality 4K, sharpness maximum, Ultra High details, high resolution, seed %d"

	MsgInProgress = "Generating images for '%s'."
	msgDone       = "Images for '%s' are ready."
	msgFailed     = "I couldn't generate images for '%s'."
)
