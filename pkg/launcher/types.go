package launcher

// Action is a system level media action.
type Action string

const (
	ActionMute       Action = "mute"
	ActionUnmute     Action = "unmute"
	ActionVolumeUp   Action = "volume up"
	ActionVolumeDown Action = "volume down"
)

// Config configures the launcher. Empty fields take platform defaults.
type Config struct {
	// Editor opens written content. Empty uses the platform file opener.
	Editor string
	// Browser opens URLs. Empty uses the platform default browser.
	Browser string
	// System maps an action to the argv that performs it.
	System map[Action][]string
	// AppAlias maps a spoken app name to an executable name.
	AppAlias map[string]string
	// GOOS overrides runtime.GOOS, mostly for tests.
	GOOS string
}

type launcherImpl struct {
	cfg      Config
	goos     string
	start    func(argv []string) error
	run      func(argv []string) error
	lookPath func(file string) (string, error)
	openURL  func(url string) error
	openFile func(path string) error
}
