package useragent

import (
	"strings"
)

// ParsePlatform classifies the platform parenthetical of a user agent.
// Order matters: Android user agents also contain "Linux" and are reported as Linux.
func ParsePlatform(ua string) Platform {
	p, ok := Parenthetical(ua)
	if !ok {
		return Unknown(UnknownPlatform)
	}

	switch {
	case windowsKeywords.contains(p):
		return Windows
	case strings.Contains(p, tokenLinux):
		return Linux
	case strings.Contains(p, tokenMacOSX):
		return MacOS
	default:
		return Unknown(p)
	}
}

// ParseDistro returns the distribution label of a user agent: "Windows 10.0",
// "Ubuntu", "Mac OS X 10.15.7", or the raw parenthetical for families it does
// not know. It fails with ErrParsingFailed when the parenthetical is missing.
func ParseDistro(ua string) (string, error) {
	p, ok := Parenthetical(ua)
	if !ok {
		return "", ErrParsingFailed
	}

	switch {
	case windowsKeywords.contains(p):
		return windowsDistro(p), nil
	case strings.Contains(p, tokenLinux):
		return linuxDistro(p), nil
	case strings.Contains(p, tokenMacOSX):
		return macDistro(p), nil
	default:
		return p, nil
	}
}

// windowsDistro formats the NT version, e.g. "Windows NT 10.0; Win64" becomes "Windows 10.0".
func windowsDistro(p string) string {
	nt := strings.Index(p, tokenNT)
	if nt < 0 {
		return DistroWindows
	}
	version, _, _ := strings.Cut(after(p, nt+len(tokenNT)), ";")
	version = strings.TrimSpace(version)
	if !strings.Contains(version, versionDelim) {
		return DistroWindows
	}
	return DistroWindows + " " + version
}

// linuxDistro returns the token naming the distribution, e.g. "Ubuntu" in
// "X11; Ubuntu; Linux x86_64". A leading windowing system token is dropped first.
func linuxDistro(p string) string {
	if windowingKeywords.contains(p) {
		semi := strings.IndexByte(p, ';')
		if semi < 0 {
			return UnknownLinux
		}
		p = after(p, semi+2)
	}
	if strings.HasPrefix(p, tokenLinux) {
		return UnknownLinux
	}
	name, _, ok := strings.Cut(p, ";")
	if !ok {
		return UnknownLinux
	}
	return name
}

// macDistro returns "Mac OS X <version>". Versions use underscores in this
// position and are rewritten with dots when nothing follows them.
func macDistro(p string) string {
	begin := strings.Index(p, tokenMacOSX)
	rest := p[begin:]
	if name, _, ok := strings.Cut(rest, ";"); ok {
		return name
	}
	return strings.ReplaceAll(rest, "_", ".")
}

// after returns s from offset i, or "" when i is past the end.
func after(s string, i int) string {
	if i > len(s) {
		return ""
	}
	return s[i:]
}
