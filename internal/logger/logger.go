package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. format "json" selects the JSON formatter,
// anything else the text one. An unknown level falls back to info.
func New(output io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(new(logrus.JSONFormatter))
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// Discard returns a logger that writes nowhere; handy for tests and defaults.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
