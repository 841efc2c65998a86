package config

import (
	"jokerpoker/internal/util"
	"strings"

	"github.com/sirupsen/logrus"
)

// ConfigureLogger applies the level and format from the config to the logger
// LOG_FORMAT=json in the environment takes precedence over the configured format.
func (c Config) ConfigureLogger(logger *logrus.Logger) error {
	if lvl := c.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return err
		}

		logger.SetLevel(level)
	}

	format := c.Log.Format
	if env := util.Getenv("LOG_FORMAT", ""); env != "" {
		format = env
	}

	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}
