//go:build js && wasm

package browser

import (
	"syscall/js"
)

// Window returns the live source for the current browser window. Without a
// window object (web workers, Node) every lookup is absent.
func Window() Source {
	w := js.Global().Get("window")
	if !isObject(w) {
		return Static{}
	}
	return window{v: w}
}

type window struct {
	v js.Value
}

func (w window) UserAgent() (string, bool) {
	nav := w.v.Get("navigator")
	if !isObject(nav) {
		return "", false
	}
	return stringValue(nav.Get("userAgent"))
}

func (w window) DocumentDomain() (string, bool) {
	doc := w.v.Get("document")
	if !isObject(doc) {
		return "", false
	}
	loc := doc.Get("location")
	if !isObject(loc) {
		return "", false
	}
	return stringValue(loc.Get("hostname"))
}

func (w window) Languages() []any {
	nav := w.v.Get("navigator")
	if !isObject(nav) {
		return nil
	}
	langs := nav.Get("languages")
	if !isArray(langs) {
		return nil
	}

	n := langs.Length()
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		v := langs.Index(i)
		if s, ok := stringValue(v); ok {
			out = append(out, s)
			continue
		}
		out = append(out, v)
	}
	return out
}

func isObject(v js.Value) bool {
	return v.Type() == js.TypeObject
}

func isArray(v js.Value) bool {
	return isObject(v) && js.Global().Get("Array").Call("isArray", v).Bool()
}

func stringValue(v js.Value) (string, bool) {
	if v.Type() != js.TypeString {
		return "", false
	}
	return v.String(), true
}
