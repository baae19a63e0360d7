// Package logger is the structured logger of the ecrlp command, a thin wrapper around logrus.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Fields are attached to a single log line.
type Fields map[string]any

type Logger struct {
	logger *logrus.Logger
}

// NewLogger returns a logger writing text lines to out at info level, or debug level if verbose is set.
func NewLogger(out io.Writer, verbose bool) *Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return &Logger{
		logger,
	}
}

func (l *Logger) Debug(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *Logger) Error(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}
