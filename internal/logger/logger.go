// Package logger wraps a process-wide logrus logger for the action.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/celestiaorg/instawp-action/internal/constants"
)

var log = logrus.New()

// InitializeAndConfigure sets up the logger for a CI step: plain text on
// stdout without timestamps, since the runner stamps every line itself.
// The level comes from LOG_LEVEL, and RUNNER_DEBUG=1 forces debug.
func InitializeAndConfigure() {
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	log.SetOutput(os.Stdout)

	Configure(os.Getenv(constants.EnvLogLevel), os.Getenv(constants.EnvRunnerDebug) == "1")
}

// Configure applies a log level. An empty or unparsable level keeps info.
func Configure(levelStr string, runnerDebug bool) {
	log.SetLevel(logrus.InfoLevel)

	if runnerDebug {
		log.SetLevel(logrus.DebugLevel)
		return
	}

	if levelStr == "" {
		return
	}

	level, err := logrus.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to 'info'", levelStr)
		return
	}

	log.SetLevel(level)
	log.Debugf("Log level set to '%s'", level)
}

// SetOutput redirects log output, mostly for tests
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Level returns the current log level
func Level() logrus.Level {
	return log.GetLevel()
}

// Debug logs a message at the debug level
func Debug(args ...interface{}) {
	log.Debug(args...)
}

// Info logs a message at the Info level
func Info(args ...interface{}) {
	log.Info(args...)
}

// Error logs a message at the Error level
func Error(args ...interface{}) {
	log.Error(args...)
}

// Debugf logs a message at the Debugf level
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs a message at the Infof level
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs a message at the Warnf level
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// InfoWithFields logs a message at the info level with additional fields
func InfoWithFields(msg string, fields map[string]interface{}) {
	log.WithFields(logrus.Fields(fields)).Info(msg)
}

// DebugWithFields logs a message at the debug level with additional fields
func DebugWithFields(msg string, fields map[string]interface{}) {
	log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// WarnWithFields logs a message at the warn level with additional fields
func WarnWithFields(msg string, fields map[string]interface{}) {
	log.WithFields(logrus.Fields(fields)).Warn(msg)
}
