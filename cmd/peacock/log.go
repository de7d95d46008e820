package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// logEnv names the environment variable selecting the log level.
const logEnv = "PEACOCK_LOG"

// newLogger creates the program logger, writing to w at the given level
// name. An empty or unknown level means warnings and errors only.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: AppName,
		Level:  log.WarnLevel,
	})

	level = strings.TrimSpace(level)
	if level == "" {
		return logger
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("ignoring log level", "env", logEnv, "value", level)
		return logger
	}

	logger.SetLevel(lvl)
	return logger
}
