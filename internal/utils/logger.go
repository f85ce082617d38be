package utils

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	loggerOnce sync.Once
	logger     *zap.SugaredLogger
)

// Logger returns the process-wide sugared logger, building it on first use.
func Logger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		config := zap.NewProductionConfig()
		config.EncoderConfig = encoderConfig

		base, err := config.Build()
		if err != nil {
			base = zap.NewNop()
		}
		logger = base.Sugar()
	})
	return logger
}

// SyncLogger flushes buffered log entries; call on shutdown.
func SyncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// LogEvent writes a standardized line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	Logger().Infow(message,
		"module", strings.ToUpper(module),
		"action", action,
		"request_id", strings.TrimSpace(requestID),
	)
}

// LogError mirrors LogEvent at error level.
func LogError(requestID, module, action string, err error) {
	Logger().Errorw(err.Error(),
		"module", strings.ToUpper(module),
		"action", action,
		"request_id", strings.TrimSpace(requestID),
	)
}
