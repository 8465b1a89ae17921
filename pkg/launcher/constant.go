package launcher

import "time"

const (
	// CommandTimeout bounds short lived helper commands such as volume control.
	CommandTimeout = 5 * time.Second
)

func defaultSystemCommands(goos string) map[Action][]string {
	switch goos {
	case "darwin":
		return map[Action][]string{
			ActionMute:       {"osascript", "-e", "set volume output muted true"},
			ActionUnmute:     {"osascript", "-e", "set volume output muted false"},
			ActionVolumeUp:   {"osascript", "-e", "set volume output volume ((output volume of (get volume settings)) + 10)"},
			ActionVolumeDown: {"osascript", "-e", "set volume output volume ((output volume of (get volume settings)) - 10)"},
		}
	case "windows":
		return map[Action][]string{
			ActionMute:       {"nircmd.exe", "mutesysvolume", "1"},
			ActionUnmute:     {"nircmd.exe", "mutesysvolume", "0"},
			ActionVolumeUp:   {"nircmd.exe", "changesysvolume", "6553"},
			ActionVolumeDown: {"nircmd.exe", "changesysvolume", "-6553"},
		}
	default:
		return map[Action][]string{
			ActionMute:       {"pactl", "set-sink-mute", "@DEFAULT_SINK@", "1"},
			ActionUnmute:     {"pactl", "set-sink-mute", "@DEFAULT_SINK@", "0"},
			ActionVolumeUp:   {"pactl", "set-sink-volume", "@DEFAULT_SINK@", "+10%"},
			ActionVolumeDown: {"pactl", "set-sink-volume", "@DEFAULT_SINK@", "-10%"},
		}
	}
}
