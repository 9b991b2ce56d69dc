// Package log creates the logger of pinlint.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	return logger.WithFields(logrus.Fields{
		"version": version,
		"program": "pinlint",
	})
}
