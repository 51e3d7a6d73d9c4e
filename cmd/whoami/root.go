package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/webwhoami/pkg/browser"
	"github.com/dmitrymomot/webwhoami/pkg/config"
	"github.com/dmitrymomot/webwhoami/pkg/identity"
	"github.com/dmitrymomot/webwhoami/pkg/logger"
)

// options holds the persistent flags shared by all commands.
type options struct {
	userAgent string
	domain    string
	langs     []string
	output    string
	supported []string
	envFiles  []string
	logLevel  string
}

// env is the resolved configuration of one command run.
type env struct {
	cfg       config.Config
	log       *slog.Logger
	src       browser.Static
	supported []language.Tag
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Report browser host identity facts",
		Long: `Reports the identity facts a Go program running in a web browser derives
from the navigator user agent, the page hostname and the declared languages.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.resolve(cmd, stderr)
			if err != nil {
				return err
			}
			id := identity.New(e.src, identity.WithLogger(e.log))
			return render(stdout, e.cfg.Output, buildReport(id, e.supported))
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.userAgent, "user-agent", "", "user agent string to analyse (WHOAMI_USER_AGENT)")
	flags.StringVar(&opts.domain, "domain", "", "page hostname (WHOAMI_DOMAIN)")
	flags.StringSliceVar(&opts.langs, "lang", nil, "declared language, repeatable (WHOAMI_LANGUAGES)")
	flags.StringVarP(&opts.output, "output", "o", "", "output format: text, json or yaml (WHOAMI_OUTPUT)")
	flags.StringSliceVar(&opts.supported, "supported", nil, "supported language tag to match against, repeatable")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "env file to load before reading WHOAMI_* variables")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error (WHOAMI_LOG_LEVEL)")

	cmd.AddCommand(newBatchCmd(opts, stdout, stderr))
	return cmd
}

// resolve merges the environment configuration with the flags that were set.
func (o *options) resolve(cmd *cobra.Command, stderr io.Writer) (env, error) {
	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return env{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return env{}, err
	}

	srcOpts := []browser.Option{}
	switch {
	case flags.Changed("user-agent"):
		srcOpts = append(srcOpts, browser.WithUserAgent(o.userAgent))
	case cfg.UserAgent != "":
		srcOpts = append(srcOpts, browser.WithUserAgent(cfg.UserAgent))
	}
	switch {
	case flags.Changed("domain"):
		srcOpts = append(srcOpts, browser.WithDomain(o.domain))
	case cfg.Domain != "":
		srcOpts = append(srcOpts, browser.WithDomain(cfg.Domain))
	}
	if flags.Changed("lang") {
		srcOpts = append(srcOpts, browser.WithLanguages(o.langs...))
	} else {
		srcOpts = append(srcOpts, browser.WithLanguages(cfg.Languages...))
	}

	supported := make([]language.Tag, 0, len(o.supported))
	for _, s := range o.supported {
		tag, err := language.Parse(s)
		if err != nil {
			return env{}, fmt.Errorf("invalid supported language %q: %w", s, err)
		}
		supported = append(supported, tag)
	}

	return env{
		cfg:       cfg,
		log:       newLogger(cfg, stderr),
		src:       browser.NewStatic(srcOpts...),
		supported: supported,
	}, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{logger.WithEnvironment(cfg.Env, cfg.Service)}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	opts = append(opts,
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithOutput(w),
	)
	return logger.New(opts...)
}

// report is the full set of facts printed by the root command.
type report struct {
	Username   string            `json:"username" yaml:"username"`
	Realname   string            `json:"realname" yaml:"realname"`
	Devicename string            `json:"devicename" yaml:"devicename"`
	Hostname   string            `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Distro     string            `json:"distro,omitempty" yaml:"distro,omitempty"`
	Platform   string            `json:"platform" yaml:"platform"`
	Arch       string            `json:"arch" yaml:"arch"`
	DesktopEnv string            `json:"desktop_env" yaml:"desktop_env"`
	Languages  []string          `json:"languages,omitempty" yaml:"languages,omitempty"`
	Locale     string            `json:"locale,omitempty" yaml:"locale,omitempty"`
	Errors     map[string]string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func buildReport(id *identity.Identity, supported []language.Tag) report {
	r := report{
		Username:   id.Username(),
		Realname:   id.Realname(),
		Devicename: id.Devicename(),
		Platform:   id.Platform().String(),
		Arch:       id.Arch().String(),
		DesktopEnv: id.DesktopEnv().String(),
		Languages:  id.Lang().Collect(),
	}

	if host, err := id.Hostname(); err != nil {
		r.fail(identity.FactHostname, err)
	} else {
		r.Hostname = host
	}
	if distro, err := id.Distro(); err != nil {
		r.fail(identity.FactDistro, err)
	} else {
		r.Distro = distro
	}

	if len(supported) > 0 {
		if tag, conf := identity.Match(slices.Values(r.Languages), supported...); conf != language.No {
			r.Locale = tag.String()
		}
	}
	return r
}

func (r *report) fail(fact string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	r.Errors[fact] = err.Error()
}
