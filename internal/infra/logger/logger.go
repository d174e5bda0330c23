// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"gym_admin/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the global logger instance
var Log = logrus.New()

const defaultLevel = logrus.WarnLevel

// Init configures the global logger. Output goes to stderr because stdout
// belongs to the interactive prompts.
func Init(cfg *config.AppConfig) {
	configure(Log, cfg, os.Stderr)
}

func configure(l *logrus.Logger, cfg *config.AppConfig, out io.Writer) {
	l.SetOutput(out)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		l.SetLevel(defaultLevel)
		l.Warnf("Invalid log level '%s', defaulting to '%s'. Error: %v", cfg.LogLevel, defaultLevel, err)
	} else {
		l.SetLevel(level)
	}

	switch cfg.Environment {
	case "production", "staging":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.WithFields(logrus.Fields{
		"level":       l.GetLevel().String(),
		"environment": cfg.Environment,
	}).Debug("Logger configured")
}

// Get returns the configured global logger.
func Get() *logrus.Logger {
	return Log
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
