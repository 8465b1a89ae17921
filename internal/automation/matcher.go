package automation

import (
	"net/url"
	"regexp"
	"strings"
)

var nonFileChars = regexp.MustCompile(`[^a-z0-9_\-]+`)

// normalizeName lowercases and collapses whitespace in a spoken app name.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// websiteFor returns the address of a well known web service.
func websiteFor(name string) (string, bool) {
	u, ok := knownSites[normalizeName(name)]
	return u, ok
}

// guessSite builds the best effort https://<name>.com address used when no app exists.
func guessSite(name string) string {
	return "https://" + url.QueryEscape(strings.ReplaceAll(normalizeName(name), " ", "")) + ".com"
}

func isBrowser(name, configured string) bool {
	n := normalizeName(name)
	return browserNames[n] || (configured != "" && n == normalizeName(configured))
}

func searchURL(base, topic string) string {
	return base + url.QueryEscape(strings.TrimSpace(topic))
}

// contentFileName turns a topic into a file name: lowercase, spaces removed.
func contentFileName(topic string) string {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(topic)), " ", "")
	name = nonFileChars.ReplaceAllString(name, "")
	if name == "" {
		name = "content"
	}
	return name + ".txt"
}
