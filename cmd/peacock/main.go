package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run resolves the invocation and reports it to the stage driver. It returns
// the process exit code.
func run(stdout, stderr io.Writer, args []string) int {
	logger := newLogger(stderr, os.Getenv(logEnv))
	logger.Debug("starting", "version", Version(), "args", args)

	config, code := parseArgs(args, stdout, stderr)
	if config == nil {
		return code
	}

	logger.Debug("resolved invocation",
		"mode", config.Mode,
		"stage", config.Mode.Stage(),
		"input", config.Input,
		"output", config.Output)

	fmt.Fprintln(stdout, config)
	return 0
}
