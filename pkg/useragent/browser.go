package useragent

import (
	"strings"
)

// ParseDevicename reports the browser name and version of a user agent, e.g.
// "Chrome 98.0.4758.102" or "Firefox 89.0". It never fails: a user agent
// without a space yields UnknownBrowser.
//
// Chrome, Edge, Opera and GNOME Web all carry a Safari compatibility token, so
// a Safari tail is resolved in priority order: a Chrome token anywhere in the
// string, then the Linux heuristic for GNOME Web, then Safari itself. The Edge
// and Opera rewrites only apply to tails without Safari.
func ParseDevicename(ua string) string {
	start := strings.LastIndexByte(ua, ' ')
	if start < 0 {
		return UnknownBrowser
	}
	tail := strings.ReplaceAll(ua[start+1:], "/", " ")

	if s := strings.LastIndex(tail, BrowserSafari); s >= 0 {
		if name, ok := chromeToken(ua); ok {
			return name
		}
		if strings.Contains(ua, tokenLinux) {
			return BrowserGNOMEWeb
		}
		return tail[s:]
	}

	switch {
	case strings.Contains(tail, tokenEdge):
		return strings.ReplaceAll(tail, tokenEdge, labelEdge)
	case strings.Contains(tail, tokenOpera):
		return strings.ReplaceAll(tail, tokenOpera, labelOpera)
	default:
		return tail
	}
}

// chromeToken cuts "Chrome/<version>" out of ua starting at the last Chrome
// occurrence and renders it as "Chrome <version>".
// A token that runs to the end of the string is reported as plain Chrome.
func chromeToken(ua string) (string, bool) {
	begin := strings.LastIndex(ua, tokenChrome)
	if begin < 0 {
		return "", false
	}
	token := ua[begin:]
	end := strings.IndexByte(token, ' ')
	if end < 0 {
		return BrowserChrome, true
	}
	return strings.ReplaceAll(token[:end], "/", " "), true
}
