package webwhoami_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/webwhoami"
	"github.com/dmitrymomot/webwhoami/pkg/identity"
	"github.com/dmitrymomot/webwhoami/pkg/useragent"
)

// Tests run outside a browser, so the window source is absent.
func TestFacadeOutsideBrowser(t *testing.T) {
	assert.Equal(t, "anonymous", webwhoami.Username())
	assert.Equal(t, "Anonymous", webwhoami.Realname())
	assert.Equal(t, identity.WebBrowser, webwhoami.DesktopEnv())
	assert.Equal(t, useragent.UnknownBrowser, webwhoami.Devicename())
	assert.Equal(t, useragent.Unknown("Unknown"), webwhoami.Platform())
	assert.NotEmpty(t, webwhoami.Arch().String())

	_, err := webwhoami.Hostname()
	assert.ErrorIs(t, err, useragent.ErrNotFound)

	_, err = webwhoami.Distro()
	assert.ErrorIs(t, err, useragent.ErrPermissionDenied)

	assert.Empty(t, webwhoami.Lang().Collect())
}
