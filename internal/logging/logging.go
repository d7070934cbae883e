// Package logging builds the logrus logger shared by the advent command.
// Library packages never log; they expose hooks that callers log through.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing text records to w (normally stderr, so
// answers on stdout stay clean) at the named level.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	return log, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}
