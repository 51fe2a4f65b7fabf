// Package logger provides per-module leveled loggers for the emulator.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
)

var leveled logging.LeveledBackend

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// NewLogger returns the logger for a module, such as "[cpu]".
func NewLogger(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetVerbose enables debug level output for all modules.
func SetVerbose(verbose bool) {
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}
}
