package useragent

// Fallback labels returned when parsing cannot go further
const (
	// UnknownBrowser is returned for user agents without a space-separated tail
	UnknownBrowser = "Unknown Browser"

	// UnknownLinux is returned when a Linux user agent does not name its distribution
	UnknownLinux = "Unknown Linux"

	// UnknownPlatform is the detail of the Unknown platform when no parenthetical exists
	UnknownPlatform = "Unknown"
)

// Browser labels that replace tokens found in the user agent
const (
	// BrowserChrome is reported when a Chrome token has no version attached
	BrowserChrome = "Chrome"

	// BrowserGNOMEWeb identifies GNOME's WebKit browser, which looks like Safari on Linux
	BrowserGNOMEWeb = "GNOME Web"

	// BrowserSafari is the compatibility token shared by WebKit and Blink browsers
	BrowserSafari = "Safari"
)

// Distribution labels
const (
	// DistroWindows is the Windows label when no NT version can be cut out
	DistroWindows = "Windows"
)

// Family is the coarse operating system family of a platform
type Family string

// Platform families
const (
	// FamilyWindows identifies Microsoft Windows (Win32 or Win64 token)
	FamilyWindows Family = "windows"

	// FamilyLinux identifies Linux-based systems, Android included
	FamilyLinux Family = "linux"

	// FamilyMacOS identifies Apple macOS (Mac OS X token)
	FamilyMacOS Family = "macos"

	// FamilyUnknown covers every other family: mobile, console, BSD, embedded
	FamilyUnknown Family = "unknown"
)

// Tokens searched inside the platform parenthetical
const (
	tokenNT      = "NT"
	tokenLinux   = "Linux"
	tokenMacOSX  = "Mac OS X"
	tokenChrome  = "Chrome"
	tokenEdge    = "Edg "
	tokenOpera   = "OPR "
	labelEdge    = "Edge "
	labelOpera   = "Opera "
	versionDelim = "."
)

var (
	windowsKeywords   = newKeywordSet("Win32", "Win64")
	windowingKeywords = newKeywordSet("X11", "Wayland")
)
