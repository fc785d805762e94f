// Package debug provides structured logging for texidor.
// Enable debug output by setting TEXIDOR_DEBUG=1 or passing --debug.
package debug

import (
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.Mutex
	instance = zap.NewNop().Sugar()
	enabled  bool
)

// InitWithWriter initializes the global debug logger on w. When on is false
// every call is a no-op.
func InitWithWriter(w io.Writer, on bool) {
	mu.Lock()
	defer mu.Unlock()

	_ = instance.Sync()
	enabled = on
	if !on {
		instance = zap.NewNop().Sugar()
		return
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	instance = zap.New(core).Sugar()
}

// IsEnabled returns true if debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a debug entry named after fn with key/value fields.
// Example: 2024-01-10T15:04:05Z debug Loop.Prompt {"attempt": 2, "result": "rejected"}
func Log(fn string, fields ...interface{}) {
	logger().Debugw(fn, fields...)
}

// Error logs an error with context.
func Error(fn string, err error, fields ...interface{}) {
	allFields := append([]interface{}{"error", err.Error()}, fields...)
	logger().Debugw(fn, allFields...)
}

// Sync flushes buffered entries.
func Sync() error {
	return logger().Sync()
}

func logger() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return instance
}
