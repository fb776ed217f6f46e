// Package logging builds the leveled logger shared by the game and server.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

func New(out io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if nil != err {
		return nil, fmt.Errorf("unable to parse log level: %w", err)
	}
	return log.NewWithOptions(out, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Prefix:          "lanes",
	}), nil
}

// Open appends to a log file. The returned closer must be called on exit.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	logger, err := New(f, level)
	if nil != err {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard is a logger for tests and for callers that do not care.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
