package core

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	if singleton == nil {
		once.Do(
			func() {
				l := log.NewWithOptions(os.Stderr, log.Options{
					ReportCaller:    true,
					ReportTimestamp: true,
					TimeFormat:      time.RFC3339,
					Prefix:          "Ombra 🕯️ ",
				})
				l.SetLevel(log.DebugLevel)
				singleton = &logger{l}
			})
	}
	return singleton
}

// LogLevel mirrors the levels of the underlying logger so that callers
// outside of core do not need to import it.
type LogLevel int32

const (
	DebugLevel = LogLevel(log.DebugLevel)
	InfoLevel  = LogLevel(log.InfoLevel)
	WarnLevel  = LogLevel(log.WarnLevel)
	ErrorLevel = LogLevel(log.ErrorLevel)
	FatalLevel = LogLevel(log.FatalLevel)
)

// SetLogLevel adjusts the minimum severity emitted by the engine logger.
func SetLogLevel(level LogLevel) {
	getLogger().SetLevel(log.Level(level))
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
