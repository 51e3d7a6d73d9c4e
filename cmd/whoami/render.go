package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/webwhoami/pkg/config"
)

// render writes the report in the requested output format.
func render(w io.Writer, output string, r report) error {
	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, r)
	}
}

func renderText(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", k, v)
		}
	}
	row("username", r.Username)
	row("realname", r.Realname)
	row("devicename", r.Devicename)
	row("hostname", r.Hostname)
	row("distro", r.Distro)
	row("platform", r.Platform)
	row("arch", r.Arch)
	row("desktop env", r.DesktopEnv)
	row("languages", strings.Join(r.Languages, ", "))
	row("locale", r.Locale)

	facts := make([]string, 0, len(r.Errors))
	for fact := range r.Errors {
		facts = append(facts, fact)
	}
	sort.Strings(facts)
	for _, fact := range facts {
		row(fact+" error", r.Errors[fact])
	}
	return tw.Flush()
}
