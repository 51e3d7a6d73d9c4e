// Package identity reports host identity facts for a Go program running in a
// web browser, where no operating system APIs are reachable.
//
// An Identity wraps a browser.Source and answers one fact per method call,
// reading the raw browser values fresh every time:
//
//	id := identity.New(browser.Window(), identity.WithLogger(log))
//
//	id.Username()   // "anonymous"
//	id.Devicename() // "Firefox 89.0"
//	id.Platform()   // useragent.Linux
//	id.Arch()       // identity.Wasm64 on Go's wasm port
//
//	host, err := id.Hostname() // useragent.ErrDomainMissing when the page has no hostname
//	distro, err := id.Distro() // useragent.ErrNoUserAgent, useragent.ErrParsingFailed
//
//	for lang := range id.Lang().All() {
//	    fmt.Println(lang)
//	}
//
// User and real names are fixed: the browser sandbox never exposes the OS
// account. Desktop environment is always WebBrowser.
//
// Lang returns a single-pass Languages cursor. Tags and Match turn the declared
// languages into golang.org/x/text language tags.
package identity
