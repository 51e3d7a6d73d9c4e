//go:build !(js && wasm)

package browser

// Window returns an absent source: outside js/wasm there is no browser.
func Window() Source {
	return Static{}
}
