package util

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the standard logrus logger
// An empty level leaves the current level alone. The format may be "json" or "text".
func SetupLogger(level, format string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}

		logrus.SetLevel(lvl)
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	return nil
}
