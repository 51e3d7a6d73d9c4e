package identity

import (
	"log/slog"

	"github.com/dmitrymomot/webwhoami/pkg/browser"
	"github.com/dmitrymomot/webwhoami/pkg/logger"
	"github.com/dmitrymomot/webwhoami/pkg/useragent"
)

// Identity answers host identity facts from a browser source.
// It keeps no state between calls and is safe for concurrent use.
type Identity struct {
	src browser.Source
	log *slog.Logger
}

// Option configures an Identity.
type Option func(*Identity)

// WithLogger sets the logger used to report fallbacks at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(id *Identity) {
		if l != nil {
			id.log = l
		}
	}
}

// New creates an Identity over src. A nil src behaves like an absent browser.
func New(src browser.Source, opts ...Option) *Identity {
	if src == nil {
		src = browser.Static{}
	}
	id := &Identity{
		src: src,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(id)
	}
	id.log = id.log.With(logger.Component("identity"))
	return id
}

// Username returns the fixed anonymous user name.
func (id *Identity) Username() string { return Username }

// Realname returns the fixed anonymous real name.
func (id *Identity) Realname() string { return Realname }

// DesktopEnv always returns WebBrowser.
func (id *Identity) DesktopEnv() DesktopEnv { return WebBrowser }

// Arch returns the architecture matching the compiled pointer width.
func (id *Identity) Arch() Arch { return targetArch() }

// Devicename returns the browser name and version. It never fails; without a
// user agent it returns useragent.UnknownBrowser.
func (id *Identity) Devicename() string {
	ua, ok := id.src.UserAgent()
	if !ok {
		id.log.Debug("user agent unavailable", logger.Fact(FactDevicename))
	}
	return useragent.ParseDevicename(ua)
}

// Hostname returns the page hostname unchanged.
// It fails with useragent.ErrDomainMissing when the hostname is absent or empty.
func (id *Identity) Hostname() (string, error) {
	domain, ok := id.src.DocumentDomain()
	if !ok || domain == "" {
		id.log.Debug("document domain unavailable", logger.Fact(FactHostname))
		return "", useragent.ErrDomainMissing
	}
	return domain, nil
}

// Distro returns the distribution label parsed from the user agent.
// It fails with useragent.ErrNoUserAgent when the browser exposes no user
// agent and with useragent.ErrParsingFailed when it has no parenthetical.
func (id *Identity) Distro() (string, error) {
	ua, ok := id.src.UserAgent()
	if !ok {
		id.log.Debug("user agent unavailable", logger.Fact(FactDistro))
		return "", useragent.ErrNoUserAgent
	}
	distro, err := useragent.ParseDistro(ua)
	if err != nil {
		id.log.Debug("cannot classify user agent",
			logger.Fact(FactDistro),
			logger.UserAgent(ua),
			logger.Error(err),
		)
		return "", err
	}
	return distro, nil
}

// Platform returns the platform family parsed from the user agent.
// It never fails; unrecognized values come back as useragent.Unknown.
func (id *Identity) Platform() useragent.Platform {
	ua, _ := id.src.UserAgent()
	p := useragent.ParsePlatform(ua)
	if p.IsUnknown() {
		id.log.Debug("unrecognized platform",
			logger.Fact(FactPlatform),
			slog.String("detail", p.Detail),
		)
	}
	return p
}

// Lang returns the declared languages as a single-pass sequence. It is empty
// when there is no browser.
func (id *Identity) Lang() *Languages {
	return NewLanguages(id.src.Languages())
}
