package main

import (
	"fmt"
	"io"

	"github.com/hexaflex/peacock/cli"
	"github.com/pkg/errors"
)

// parseArgs resolves command line arguments, minus the program name.
//
// If the arguments are malformed, a one-line diagnostic goes to stderr and
// exit code 1 is returned along with a nil config. When help is requested it
// is printed to stdout and exit code 0 is returned, also with a nil config.
func parseArgs(args []string, stdout, stderr io.Writer) (*cli.Config, int) {
	c, err := cli.Resolve(args)
	switch {
	case errors.Is(err, cli.ErrHelp):
		fmt.Fprintln(stdout, Version())
		if err := cli.WriteUsage(stdout, AppName); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", AppName, err)
			return nil, 1
		}
		return nil, 0

	case err != nil:
		fmt.Fprintf(stderr, "%s: %v\n", AppName, err)
		return nil, 1
	}

	return c, 0
}
