package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger (re)initializes the shared Logger from the LOG_LEVEL environment variable.
func InitLogger() {
	Logger = newLogger(os.Getenv("LOG_LEVEL"))
}

// newLogger creates a logger at the named level, defaulting to info when the
// name is empty or invalid.
func newLogger(levelName string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if levelName == "" {
		levelName = "info"
	}

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL '%s', defaulting to 'info'\n", levelName)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
