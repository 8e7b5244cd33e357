package config

import (
	"github.com/sirupsen/logrus"
)

var (
	logg *logrus.Logger
)

// GetLogger returns the shared application logger
func GetLogger() *logrus.Logger {
	if logg != nil {
		return logg
	}

	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	if AppConfig != nil && IsProduction() {
		logg.SetLevel(logrus.ErrorLevel)
	} else {
		logg.SetLevel(logrus.InfoLevel)
	}

	return logg
}
