package configs

import (
	"github.com/spf13/viper"
)

// AppConfig 应用配置
type AppConfig struct {
	Name    string        `mapstructure:"name"`
	Debug   bool          `mapstructure:"debug"`
	Verbose bool          `mapstructure:"verbose"`
	Quiet   bool          `mapstructure:"quiet"` // 是否安静模式，禁止所有日志输出
	Hotload HotloadConfig `mapstructure:"hotload"`
}

// HotloadConfig 监听模式配置，监听对象为 token 源文件所在目录
// 监听模式只由 audit --watch 开启，配置文件只调整其行为
type HotloadConfig struct {
	Debounce       int      `mapstructure:"debounce"`        // 防抖时间，毫秒
	IgnorePatterns []string `mapstructure:"ignore_patterns"` // 忽略的文件模式
	GitIgnore      bool     `mapstructure:"git_ignore"`      // 是否使用 .gitignore 文件
}

func setAppConfigDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "wcagcheck")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.verbose", false)
	v.SetDefault("app.quiet", false)

	// 监听模式默认值
	v.SetDefault("app.hotload.debounce", 300) // 毫秒
	v.SetDefault("app.hotload.ignore_patterns", []string{
		"*.tmp",
		"*.swp",
		"*~",
	})
	v.SetDefault("app.hotload.git_ignore", true)
}
