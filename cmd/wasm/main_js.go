//go:build js && wasm

package main

import (
	"os"
	"syscall/js"

	"github.com/dmitrymomot/webwhoami/pkg/browser"
	"github.com/dmitrymomot/webwhoami/pkg/identity"
	"github.com/dmitrymomot/webwhoami/pkg/logger"
)

// globalName is the property set on the JavaScript global object.
const globalName = "webwhoami"

func main() {
	log := logger.New(
		logger.WithEnvironment(os.Getenv("WHOAMI_ENV"), globalName),
		logger.WithOutput(os.Stderr),
	)
	newIdentity := func() *identity.Identity {
		return identity.New(browser.Window(), identity.WithLogger(log))
	}

	api := make(map[string]any)
	for name, get := range exports(newIdentity, log) {
		api[name] = js.FuncOf(func(js.Value, []js.Value) any {
			v := get()
			if v == nil {
				return js.Null()
			}
			return v
		})
	}
	js.Global().Set(globalName, js.ValueOf(api))
	log.Info("identity facts published", logger.Component(globalName))

	// Keep the exported functions alive.
	select {}
}
