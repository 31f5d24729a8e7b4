package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger is shared by every package. Packages grab it at init time, so
// InitLogger reconfigures it in place instead of replacing it.
var logger = logrus.New()

// InitLogger sets the level and output format of the shared logger.
// JSON output is what CloudWatch expects; text is friendlier for local runs.
func InitLogger(level logrus.Level, json bool) {
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// GetLogger returns the shared logger.
func GetLogger() *logrus.Logger {
	return logger
}

// ParseLevel maps a level name to a logrus level, forcing debug when the
// debug flag is set.
func ParseLevel(name string, debug bool) (logrus.Level, error) {
	if debug {
		return logrus.DebugLevel, nil
	}
	return logrus.ParseLevel(name)
}
