// Package context 聚合一次命令执行所需的配置、日志与 viper 实例
package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/utils/log"
)

// GlobalFlags 根命令上的全局标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	CPUProfile    string
	Trace         string
	VersionEnable bool
}

// WcagContext 命令执行上下文
type WcagContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Logger log.Logger      // 日志记录器
	Viper  *viper.Viper    // 已加载配置的 viper 实例，供 config 子命令读取原始数据
}

// InitContext 加载配置并初始化日志，命令行标志优先于配置文件
func InitContext(ctx context.Context, flags GlobalFlags) (*WcagContext, error) {
	v := configs.NewViper()
	config, err := configs.LoadConfig(v, flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	config.App.Debug = config.App.Debug || flags.Debug
	config.App.Verbose = config.App.Verbose || flags.Verbose
	config.App.Quiet = config.App.Quiet || flags.Quiet

	logger := log.InitLogger(ctx, &config.Log, &config.App)
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug().Str("config", used).Msg("loaded config file")
	}

	return &WcagContext{
		Context: ctx,
		Config:  config,
		Logger:  logger,
		Viper:   v,
	}, nil
}
