package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"gamelibrary/backend/internal/config"
)

// New builds the service logger. Production writes JSON, development a
// colored console format. When LOG_FILE is set, entries are also written to
// a rotated file.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	var encCfg zapcore.EncoderConfig
	var encoder zapcore.Encoder
	if cfg.IsDevelopment() {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "time"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	if cfg.LogFile != "" {
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.TimeKey = "time"
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), sink, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
