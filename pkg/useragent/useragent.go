// Package useragent parses host identity facts out of browser user agent strings.
package useragent

import (
	"strings"
)

// Platform is the platform family reported by a user agent.
// Detail holds the raw parenthetical for FamilyUnknown and is empty otherwise.
type Platform struct {
	Family Family
	Detail string
}

// Windows, Linux and MacOS are the recognized platforms
var (
	Windows = Platform{Family: FamilyWindows}
	Linux   = Platform{Family: FamilyLinux}
	MacOS   = Platform{Family: FamilyMacOS}
)

// Unknown returns an Unknown platform carrying the unrecognized text
func Unknown(detail string) Platform {
	return Platform{Family: FamilyUnknown, Detail: detail}
}

// IsUnknown returns true if the platform family was not recognized
func (p Platform) IsUnknown() bool { return p.Family == FamilyUnknown || p.Family == "" }

// String returns a human-readable platform name
func (p Platform) String() string {
	switch p.Family {
	case FamilyWindows:
		return "Windows"
	case FamilyLinux:
		return "Linux"
	case FamilyMacOS:
		return "Mac OS"
	default:
		return "Unknown: " + p.Detail
	}
}

// MarshalText renders the platform with String so encoders print the readable name
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Parenthetical returns the text between the first "(" and the first ")" of ua.
// It reports false when either delimiter is missing or they are out of order.
func Parenthetical(ua string) (string, bool) {
	begin := strings.IndexByte(ua, '(')
	if begin < 0 {
		return "", false
	}
	end := strings.IndexByte(ua, ')')
	if end < begin {
		return "", false
	}
	return ua[begin+1 : end], true
}

// keywordSet matches a string against any of several tokens
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
