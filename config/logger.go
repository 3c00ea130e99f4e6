package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. Defaults to info-level JSON output so
// packages can log before SetLogLevel runs.
var Log = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

// SetLogLevel applies the configured level to the shared logger.
func SetLogLevel(logLevel string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
