package logger

import (
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init builds the process-wide logger. Development gets the console encoder,
// everything else the production JSON config.
func Init(environment string) {
	var base *zap.Logger
	var err error

	if environment == "development" {
		base, err = zap.NewDevelopment()
	} else {
		base, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}

	log = base.Sugar()
}

func ensure() *zap.SugaredLogger {
	if log == nil {
		Init("development")
	}
	return log
}

func Info(msg string, keysAndValues ...interface{}) {
	ensure().Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...interface{}) {
	ensure().Warnw(msg, keysAndValues...)
}

// Error logs msg with an optional trailing error followed by key/value pairs.
func Error(msg string, args ...interface{}) {
	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			ensure().Errorw(msg, append([]interface{}{"error", err}, args[1:]...)...)
			return
		}
	}
	ensure().Errorw(msg, args...)
}

func Fatal(msg string, keysAndValues ...interface{}) {
	ensure().Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	if log != nil {
		_ = log.Desugar().Sync()
	}
}
