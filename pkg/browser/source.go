package browser

// Source is the capability surface a browser exposes.
type Source interface {
	// UserAgent returns navigator.userAgent, or false when there is none.
	UserAgent() (string, bool)
	// DocumentDomain returns document.location.hostname, or false when any link is missing.
	DocumentDomain() (string, bool)
	// Languages returns the raw navigator.languages values. Elements are
	// strings when the browser provided text and arbitrary values otherwise.
	Languages() []any
}

// Option configures a Static source.
type Option func(*Static)

// WithUserAgent sets the user agent of a Static source.
func WithUserAgent(ua string) Option {
	return func(s *Static) {
		s.userAgent = ua
		s.hasUserAgent = true
	}
}

// WithDomain sets the document domain of a Static source.
func WithDomain(domain string) Option {
	return func(s *Static) {
		s.domain = domain
		s.hasDomain = true
	}
}

// WithLanguages appends declared languages to a Static source.
func WithLanguages(langs ...string) Option {
	return func(s *Static) {
		for _, l := range langs {
			s.languages = append(s.languages, l)
		}
	}
}

// WithRawLanguages appends heterogeneous language values, mirroring what a
// browser array may hold.
func WithRawLanguages(values ...any) Option {
	return func(s *Static) {
		s.languages = append(s.languages, values...)
	}
}

// Static is a Source with fixed values. The zero value is absent on every lookup.
type Static struct {
	userAgent    string
	hasUserAgent bool
	domain       string
	hasDomain    bool
	languages    []any
}

// NewStatic creates a Static source from options.
func NewStatic(opts ...Option) Static {
	var s Static
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s Static) UserAgent() (string, bool) { return s.userAgent, s.hasUserAgent }

func (s Static) DocumentDomain() (string, bool) { return s.domain, s.hasDomain }

// Languages returns a copy so callers cannot mutate the source.
func (s Static) Languages() []any {
	if len(s.languages) == 0 {
		return nil
	}
	out := make([]any, len(s.languages))
	copy(out, s.languages)
	return out
}
