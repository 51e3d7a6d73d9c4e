// Package useragent extracts host identity facts from the user agent string a
// web browser exposes through navigator.userAgent.
//
// It derives three facts, each with its own fallback policy:
//   - Browser name and version – "Chrome 98.0.4758.102", "Edge 98.0", "GNOME Web", …
//   - Distribution label – "Windows 10.0", "Ubuntu", "Mac OS X 10.15.7", …
//   - Platform family – Windows, Linux, MacOS or Unknown carrying the raw text
//
// All parsers are pure functions of their input. They work on the original
// casing of the string because the labels they return are cut out of it.
//
// # Architecture
//
// Distro and platform detection both start from the platform parenthetical, the
// text between the first "(" and the first ")" of the user agent, which
// Parenthetical slices out. Browser detection works on the last
// space-separated token instead, falling back to global searches of the whole
// string to tell apart the many engines that advertise "Safari".
//
//	┌─────────────────┐  UA string ┌───────────────┐
//	│ ParseDevicename │◀──────────│  browser.go   │
//	└─────────────────┘            └───────────────┘
//	┌─────────────────┐            ┌───────────────┐
//	│ ParseDistro     │◀──┐       │ Parenthetical │
//	│ ParsePlatform   │◀──┴───────│ (useragent.go)│
//	└─────────────────┘            └───────────────┘
//
// # Usage
//
//	import "github.com/dmitrymomot/webwhoami/pkg/useragent"
//
//	ua := "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
//
//	useragent.ParseDevicename(ua) // "Firefox 89.0"
//	useragent.ParsePlatform(ua)   // Platform{Family: FamilyLinux}
//	distro, err := useragent.ParseDistro(ua) // "Ubuntu", nil
//
// # Error Handling
//
// Only ParseDistro can fail, with ErrParsingFailed when the parenthetical is
// missing. The package also declares the error kinds shared with the identity
// package: ErrNotFound, ErrPermissionDenied and ErrInvalidData. Match them with
// errors.Is.
//
// Fallback labels such as "Unknown Browser", "Unknown Linux" or an Unknown
// platform are successful results, not errors.
package useragent
