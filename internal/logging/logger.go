// Package logging builds the logrus logger shared by a run.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options selects where log lines go and how much detail they carry.
type Options struct {
	Verbose bool
	// File, when set, receives all log output (appended).
	File string
	// Quiet discards output when no File is set. Used while the TUI owns
	// the terminal.
	Quiet bool
}

// New returns a configured logger and a func that releases its sink.
func New(opts Options) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	closer := func() error { return nil }
	var out io.Writer = os.Stderr
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, closer, err
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closer, err
		}
		out = f
		closer = f.Close
	case opts.Quiet:
		out = io.Discard
	}

	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   opts.File != "",
	})
	return log, closer, nil
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
