package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// A usable default so packages can log before Init runs (tests, early boot).
	l, _ := zap.NewProduction()
	sugar = l.Sugar()
}

// Init replaces the default logger. Pass debug=true for development output.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		l, err = cfg.Build()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	sugar = l.Sugar()
	return nil
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = sugar.Sync()
}

func Debug(msg string, keysAndValues ...any) {
	sugar.Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	sugar.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	sugar.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	sugar.Errorw(msg, keysAndValues...)
}
