// Package webwhoami reports host identity facts for Go programs compiled to
// js/wasm and running in a web browser.
//
// A browser exposes no operating system APIs, so the facts are derived from
// what the page can see: the navigator user agent, the page hostname and the
// navigator language list. The package-level functions read those values
// from the current window on every call:
//
//	fmt.Println(webwhoami.Devicename()) // "Chrome 98.0.4758.102"
//	fmt.Println(webwhoami.Platform())   // "Windows"
//
//	distro, err := webwhoami.Distro() // "Windows 10.0"
//	host, err := webwhoami.Hostname() // "example.com"
//
// Outside js/wasm there is no window and every fact takes its fallback path.
// Use pkg/identity with a custom browser.Source to analyse other strings, and
// pkg/useragent for the pure parsers.
package webwhoami
