package model

// Channel is where an utterance came from.
type Channel string

const (
	ChannelCLI      Channel = "cli"
	ChannelVoice    Channel = "voice"
	ChannelHTTP     Channel = "http"
	ChannelTelegram Channel = "telegram"
	ChannelIPC      Channel = "ipc"
)

// Scope identifies who sent an utterance.
type Scope struct {
	Channel Channel
	UserID  string
	// Trusted lets a remote channel run actions on the host.
	Trusted bool
}

// Local reports whether the utterance came from the machine the assistant runs on.
func (s Scope) Local() bool {
	switch s.Channel {
	case ChannelCLI, ChannelVoice, ChannelIPC:
		return true
	}
	return false
}

// MayAct reports whether the sender may run automation, email, image and reminder tasks.
func (s Scope) MayAct() bool {
	return s.Local() || s.Trusted
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentDevelopment Environment = "development"
)
