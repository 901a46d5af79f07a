// Package logger 基于zap构建全局结构化日志
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool
}

// New 按配置创建zap.Logger，并替换zap全局Logger
// 返回的cleanup负责刷新缓冲区
func New(opts Options) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(strings.ToLower(defaultString(opts.Level, "info")))
	if err != nil {
		return nil, nil, fmt.Errorf("无效的日志级别 %q: %w", opts.Level, err)
	}

	encoding := "json"
	if opts.Format == "console" {
		encoding = "console"
	}

	output := defaultString(opts.Output, "stdout")

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !opts.EnableCaller,
		DisableStacktrace: level > zapcore.DebugLevel,
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("创建日志失败: %w", err)
	}

	restore := zap.ReplaceGlobals(l)
	cleanup := func() {
		_ = l.Sync()
		restore()
	}
	return l, cleanup, nil
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
