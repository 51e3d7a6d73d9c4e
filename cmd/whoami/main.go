// Command whoami reports the host identity facts a browser program would see
// for a given user agent, page hostname and language list.
//
// Usage:
//
//	whoami --user-agent "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
//	whoami -o json --domain example.com --lang en-US --lang fr --supported fr
//	whoami batch access-log-agents.txt
//
// Flags override WHOAMI_* environment variables, see pkg/config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
