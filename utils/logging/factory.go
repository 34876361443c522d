// Copyright (C) 2023-2025, Danialkaren. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines where and how verbosely a Logger writes.
type Config struct {
	LogLevel     Level  `json:"logLevel"`
	DisplayLevel Level  `json:"displayLevel"`
	Directory    string `json:"directory"`

	// Rotation settings for the log file, in MiB / days / files.
	MaxSize  int `json:"maxSize"`
	MaxAge   int `json:"maxAge"`
	MaxFiles int `json:"maxFiles"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:     Debug,
		DisplayLevel: Info,
		MaxSize:      8,
		MaxAge:       7,
		MaxFiles:     7,
	}
}

// New builds a Logger named [prefix] writing to stdout at
// [config.DisplayLevel] and, if a directory is configured, to a rotated file
// at [config.LogLevel].
func New(prefix string, config Config) Logger {
	consoleEnc := zapcore.NewConsoleEncoder(newEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(
			consoleEnc,
			zapcore.AddSync(os.Stdout),
			zapcore.Level(config.DisplayLevel),
		),
	}

	if config.Directory != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, prefix+".log"),
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxFiles,
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(newEncoderConfig()),
			zapcore.AddSync(fileWriter),
			zapcore.Level(config.LogLevel),
		))
	}

	return NewLogger(prefix, cores...)
}

func newEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	return config
}
