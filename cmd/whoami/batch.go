package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/webwhoami/pkg/browser"
	"github.com/dmitrymomot/webwhoami/pkg/config"
	"github.com/dmitrymomot/webwhoami/pkg/identity"
	"github.com/dmitrymomot/webwhoami/pkg/logger"
)

// maxLineSize bounds a single user agent line.
const maxLineSize = 1 << 20

// batchEntry holds the user agent facts of one input line.
type batchEntry struct {
	Line       int    `json:"line" yaml:"line"`
	UserAgent  string `json:"user_agent" yaml:"user_agent"`
	Devicename string `json:"devicename" yaml:"devicename"`
	Platform   string `json:"platform" yaml:"platform"`
	Distro     string `json:"distro,omitempty" yaml:"distro,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newBatchCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file]",
		Short: "Report devicename, platform and distro for each user agent line",
		Long: `Reads user agents one per line from a file, or from stdin when the file is
omitted or "-", and reports the user agent facts of each line. Blank lines are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.resolve(cmd, stderr)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			w, err := newBatchWriter(stdout, e.cfg.Output)
			if err != nil {
				return err
			}

			log := e.log.With(logger.Component("batch"))
			sc := bufio.NewScanner(in)
			sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
			n := 0
			for sc.Scan() {
				n++
				ua := strings.TrimSpace(sc.Text())
				if ua == "" {
					continue
				}
				id := identity.New(browser.NewStatic(browser.WithUserAgent(ua)), identity.WithLogger(log.With(logger.Line(n))))
				if err := w.write(analyse(n, ua, id)); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				log.Error("reading input failed", logger.Line(n), logger.Error(err))
				return fmt.Errorf("read input: %w", err)
			}
			return w.close()
		},
	}
}

func analyse(line int, ua string, id *identity.Identity) batchEntry {
	e := batchEntry{
		Line:       line,
		UserAgent:  ua,
		Devicename: id.Devicename(),
		Platform:   id.Platform().String(),
	}
	if distro, err := id.Distro(); err != nil {
		e.Error = err.Error()
	} else {
		e.Distro = distro
	}
	return e
}

// batchWriter streams entries so large inputs are never buffered whole.
type batchWriter struct {
	write func(batchEntry) error
	close func() error
}

func newBatchWriter(w io.Writer, output string) (batchWriter, error) {
	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		return batchWriter{
			write: func(e batchEntry) error { return enc.Encode(e) },
			close: func() error { return nil },
		}, nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		return batchWriter{
			write: func(e batchEntry) error { return enc.Encode(e) },
			close: enc.Close,
		}, nil
	case config.OutputText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "LINE\tDEVICENAME\tPLATFORM\tDISTRO")
		return batchWriter{
			write: func(e batchEntry) error {
				distro := e.Distro
				if e.Error != "" {
					distro = "error: " + e.Error
				}
				_, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Line, e.Devicename, e.Platform, distro)
				return err
			},
			close: tw.Flush,
		}, nil
	default:
		return batchWriter{}, fmt.Errorf("%w: %q", config.ErrInvalidOutput, output)
	}
}
