package webwhoami

import (
	"github.com/dmitrymomot/webwhoami/pkg/browser"
	"github.com/dmitrymomot/webwhoami/pkg/identity"
	"github.com/dmitrymomot/webwhoami/pkg/useragent"
)

func current() *identity.Identity {
	return identity.New(browser.Window())
}

// Username returns "anonymous": the browser sandbox hides the OS account.
func Username() string { return current().Username() }

// Realname returns "Anonymous".
func Realname() string { return current().Realname() }

// Devicename returns the browser name and version, or "Unknown Browser".
func Devicename() string { return current().Devicename() }

// Hostname returns the page hostname or useragent.ErrDomainMissing.
func Hostname() (string, error) { return current().Hostname() }

// Distro returns the operating system distribution label.
func Distro() (string, error) { return current().Distro() }

// Platform returns the operating system family.
func Platform() useragent.Platform { return current().Platform() }

// Arch returns the wasm architecture of the running binary.
func Arch() identity.Arch { return current().Arch() }

// DesktopEnv always returns identity.WebBrowser.
func DesktopEnv() identity.DesktopEnv { return current().DesktopEnv() }

// Lang returns the declared languages as a single-pass sequence.
func Lang() *identity.Languages { return current().Lang() }
