package logger

import (
	"os"
	"strings"

	"github.com/lunara-app/lunara/internal/config"
	"github.com/sirupsen/logrus"
)

// New builds the application logger from configuration: JSON output in
// production and staging, colored text everywhere else.
func New(cfg *config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		log.Warnf("invalid log level %q, defaulting to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch cfg.Environment {
	case "production", "staging":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return log
}
