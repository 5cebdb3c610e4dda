package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. format is "json" or "text".
func Setup(out io.Writer, level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	switch format {
	case "json", "":
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339Nano})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	log.SetOutput(out)
	log.SetLevel(lvl)
	return nil
}

// watermillLogger routes watermill's internal logs through logrus.
type watermillLogger struct {
	entry *log.Entry
}

func NewWatermillLogger(entry *log.Entry) watermill.LoggerAdapter {
	return &watermillLogger{entry: entry}
}

func (l *watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.withFields(fields).WithError(err).Error(msg)
}

func (l *watermillLogger) Info(msg string, fields watermill.LogFields) {
	l.withFields(fields).Info(msg)
}

func (l *watermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.withFields(fields).Debug(msg)
}

func (l *watermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.withFields(fields).Trace(msg)
}

func (l *watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &watermillLogger{entry: l.withFields(fields)}
}

func (l *watermillLogger) withFields(fields watermill.LogFields) *log.Entry {
	return l.entry.WithFields(log.Fields(fields))
}
