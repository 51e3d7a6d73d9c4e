// Command wasm publishes the host identity facts to JavaScript. Built with
// GOOS=js GOARCH=wasm it sets globalThis.webwhoami to an object of functions:
//
//	webwhoami.devicename() // "Firefox 120.0"
//	webwhoami.distro()     // "Fedora", or null when it cannot be determined
//	webwhoami.lang()       // ["en-US", "fr"]
//
// Failing facts return null and the error is logged to the console.
package main

import (
	"log/slog"

	"github.com/dmitrymomot/webwhoami/pkg/identity"
	"github.com/dmitrymomot/webwhoami/pkg/logger"
)

// exports maps JavaScript function names to fact getters. A nil result is
// published as null. Each call builds a fresh Identity so the browser values
// are read at call time.
func exports(newIdentity func() *identity.Identity, log *slog.Logger) map[string]func() any {
	fallible := func(fact string, get func(*identity.Identity) (string, error)) func() any {
		return func() any {
			v, err := get(newIdentity())
			if err != nil {
				log.Warn("fact unavailable", logger.Fact(fact), logger.Error(err))
				return nil
			}
			return v
		}
	}

	return map[string]func() any{
		identity.FactUsername:   func() any { return newIdentity().Username() },
		identity.FactRealname:   func() any { return newIdentity().Realname() },
		identity.FactDevicename: func() any { return newIdentity().Devicename() },
		identity.FactPlatform:   func() any { return newIdentity().Platform().String() },
		identity.FactArch:       func() any { return newIdentity().Arch().String() },
		"desktopEnv":            func() any { return newIdentity().DesktopEnv().String() },
		identity.FactHostname:   fallible(identity.FactHostname, (*identity.Identity).Hostname),
		identity.FactDistro:     fallible(identity.FactDistro, (*identity.Identity).Distro),
		identity.FactLang: func() any {
			langs := []any{}
			for l := range newIdentity().Lang().All() {
				langs = append(langs, l)
			}
			return langs
		},
	}
}
