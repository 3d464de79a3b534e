// Package log 提供全局日志记录器的初始化和获取功能
// 使用 zerolog 作为日志库，支持多种输出模式（控制台、文件、两者）
// 控制台日志写入 stderr，stdout 只留给审计报告
package log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 定义全局日志记录器类型
type Logger = *zerolog.Logger

// globalLogger 全局日志记录器实例，由 InitLogger 初始化
var globalLogger Logger

// InitLogger 初始化日志记录器并设置为全局实例
func InitLogger(ctx context.Context, config *configs.LogConfig, appConfig *configs.AppConfig) Logger {
	logger := New(ctx, os.Stderr, config, appConfig)
	globalLogger = &logger
	log.Logger = logger
	return &logger
}

// New 按配置创建日志记录器，console 为控制台模式的输出目标
// 优先级：quiet > debug > verbose > config.Level
func New(ctx context.Context, console io.Writer, config *configs.LogConfig, appConfig *configs.AppConfig) zerolog.Logger {
	if appConfig.Quiet {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return zerolog.New(io.Discard)
	}
	zerolog.SetGlobalLevel(resolveLevel(config, appConfig))

	var writers []io.Writer
	switch strings.ToLower(config.Mode) {
	case "file":
		writers = append(writers, createFileWriter(config, console))
	case "both":
		writers = append(writers, createConsoleWriter(console, config.JSON), createFileWriter(config, console))
	default:
		// 默认输出到控制台
		writers = append(writers, createConsoleWriter(console, config.JSON))
	}

	output := writers[0]
	if len(writers) > 1 {
		output = io.MultiWriter(writers...)
	}

	if appConfig.Debug {
		return zerolog.New(output).With().Caller().
			Str("app", appConfig.Name).
			Ctx(ctx).Timestamp().Logger()
	}
	if appConfig.Verbose {
		return zerolog.New(output).With().
			Str("app", appConfig.Name).
			Ctx(ctx).Timestamp().Logger()
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// resolveLevel 计算生效的日志级别（quiet 已在调用方处理）
func resolveLevel(config *configs.LogConfig, appConfig *configs.AppConfig) zerolog.Level {
	switch {
	case appConfig.Debug:
		return zerolog.DebugLevel
	case appConfig.Verbose:
		return zerolog.InfoLevel
	default:
		return parseLogLevel(config.Level)
	}
}

// createConsoleWriter 创建控制台输出写入器
func createConsoleWriter(out io.Writer, useJSON bool) io.Writer {
	if useJSON {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// createFileWriter 创建文件输出写入器，目录创建失败时回退到控制台
func createFileWriter(config *configs.LogConfig, fallback io.Writer) io.Writer {
	logDir := filepath.Dir(config.FilePath)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fallback
	}

	// 使用 lumberjack 进行日志轮转
	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize,    // megabytes
		MaxBackups: config.MaxBackups, // 保留备份数量
		MaxAge:     config.MaxAge,     // days
		Compress:   true,              // 压缩旧日志文件
	}
}

// GetLogger 获取全局日志记录器，未初始化时返回写入 stderr 的 warn 级别记录器
func GetLogger() Logger {
	if globalLogger == nil {
		return InitLogger(context.Background(),
			&configs.LogConfig{Level: "warn", Mode: "console"},
			&configs.AppConfig{Name: "wcagcheck"})
	}
	return globalLogger
}

// parseLogLevel 解析日志级别
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.WarnLevel
	}
}

// Debug 创建一个 Debug 级别的日志事件
func Debug() *zerolog.Event {
	return GetLogger().Debug()
}

// Info 创建一个 Info 级别的日志事件
func Info() *zerolog.Event {
	return GetLogger().Info()
}

// Warn 创建一个 Warn 级别的日志事件
func Warn() *zerolog.Event {
	return GetLogger().Warn()
}

// Error 创建一个 Error 级别的日志事件
func Error() *zerolog.Event {
	return GetLogger().Error()
}
