// Package browser exposes the few values a web browser makes reachable to a
// Go program compiled for js/wasm: the navigator user agent, the page
// hostname and the navigator language list.
//
// Consumers depend on the Source interface. Window returns the live source
// backed by syscall/js on js/wasm builds and an always-absent source on every
// other target, so the same code compiles and degrades gracefully everywhere.
// Static is a fixed source for tests and command-line tooling.
//
// # Usage
//
//	src := browser.Window()
//	if ua, ok := src.UserAgent(); ok {
//	    fmt.Println(ua)
//	}
//
//	fixed := browser.NewStatic(
//	    browser.WithUserAgent("Mozilla/5.0 (X11; Linux x86_64) ..."),
//	    browser.WithDomain("example.com"),
//	    browser.WithLanguages("en-US", "fr"),
//	)
//
// # Absence
//
// Every lookup fails closed. A missing window, document, location or navigator
// yields the absent result for the whole lookup, never a partial value.
package browser
