package automation

const (
	LogPrefixOpen    = "internal.automation.OpenApp"
	LogPrefixClose   = "internal.automation.CloseApp"
	LogPrefixPlay    = "internal.automation.Play"
	LogPrefixSystem  = "internal.automation.System"
	LogPrefixContent = "internal.automation.WriteContent"
	LogPrefixSearch  = "internal.automation.Search"

	GoogleSearchURL  = "https://www.google.com/search?q="
	YouTubeSearchURL = "https://www.youtube.com/results?search_query="

	contentTemperature = 0.7
	contentMaxTokens   = 512

	promptContentWriter = "Hello, I am %s, You're a content writer. You have to write content like letters, codes, applications, essays, poems etc."

	msgAppUnavailable = "App '%s' is not available on this system."
	msgNothingToOpen  = "Nothing to open."
	msgContentFailed  = "I couldn't write content about %s right now."
)

// browserNames are never closed, the assistant lives in a browser tab on some setups.
var browserNames = map[string]bool{
	"chrome":         true,
	"google chrome":  true,
	"browser":        true,
	"firefox":        true,
	"microsoft edge": true,
	"edge":           true,
}

// knownSites maps spoken names to web addresses for services that are not desktop apps.
var knownSites = map[string]string{
	"youtube":   "https://www.youtube.com",
	"facebook":  "https://www.facebook.com",
	"instagram": "https://www.instagram.com",
	"twitter":   "https://x.com",
	"x":         "https://x.com",
	"gmail":     "https://mail.google.com",
	"google":    "https://www.google.com",
	"github":    "https://github.com",
	"linkedin":  "https://www.linkedin.com",
	"whatsapp":  "https://web.whatsapp.com",
	"chatgpt":   "https://chatgpt.com",
	"netflix":   "https://www.netflix.com",
	"spotify":   "https://open.spotify.com",
	"reddit":    "https://www.reddit.com",
	"amazon":    "https://www.amazon.com",
	"wikipedia": "https://www.wikipedia.org",
}
