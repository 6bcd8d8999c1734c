// Package logger 提供 zap 日志器的构建
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config logger configuration
// Config 日志配置
type Config struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string
	// File 日志文件路径，为空则只输出到 stderr
	File string
	// Production 是否启用 JSON 输出
	Production bool
}

// NewLogger builds a zap.Logger from Config.
// Logs always go to stderr; when File is set they are duplicated to the file.
// NewLogger 根据配置构建 zap.Logger，stderr 恒定输出，File 配置后同时写入文件。
func NewLogger(c Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		level = zapcore.WarnLevel
	}

	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	cores := []zapcore.Core{consoleCore}

	if c.File != "" {
		if err := os.MkdirAll(filepath.Dir(c.File), 0754); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(c.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}

		var fileEncoder zapcore.Encoder
		if c.Production {
			encoderConfig := zap.NewProductionEncoderConfig()
			encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			fileEncoder = zapcore.NewJSONEncoder(encoderConfig)
		} else {
			encoderConfig := zap.NewDevelopmentEncoderConfig()
			encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			fileEncoder = zapcore.NewConsoleEncoder(encoderConfig)
		}
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.Lock(file), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
