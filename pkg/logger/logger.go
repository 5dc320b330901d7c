package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level leveled logger. Everything goes to stderr so stdout stays
// reserved for model output. Components ("cli", "bedrock", "output", ...)
// are carried as a structured field via the *CF variants.

var (
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	log   = newLogger()
)

func newLogger() *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}

// SetVerbose enables debug-level output.
func SetVerbose(verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

func Debug(msg string) { log.Debug(msg) }
func Info(msg string)  { log.Info(msg) }
func Warn(msg string)  { log.Warn(msg) }
func Error(msg string) { log.Error(msg) }

// DebugCF logs with a component tag and optional structured fields.
func DebugCF(component, msg string, fields map[string]interface{}) {
	log.Debugw(msg, flatten(component, fields)...)
}

func InfoCF(component, msg string, fields map[string]interface{}) {
	log.Infow(msg, flatten(component, fields)...)
}

func WarnCF(component, msg string, fields map[string]interface{}) {
	log.Warnw(msg, flatten(component, fields)...)
}

func ErrorCF(component, msg string, fields map[string]interface{}) {
	log.Errorw(msg, flatten(component, fields)...)
}

func flatten(component string, fields map[string]interface{}) []interface{} {
	kv := make([]interface{}, 0, 2+2*len(fields))
	kv = append(kv, "component", component)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}
