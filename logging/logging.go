// Package logging holds the shared logger used across the harness.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

// Default returns the process wide logger, creating it on first use.
func Default() *log.Logger {
	once.Do(func() {
		singleton = New(os.Stderr, log.InfoLevel)
	})
	return singleton
}

// New builds a logger writing to w with the harness defaults.
func New(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "glharness",
	})
	l.SetLevel(level)
	return l
}

// SetLevel parses level ("debug", "info", ...) and applies it to the default logger.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	Default().SetLevel(lvl)
	return nil
}
