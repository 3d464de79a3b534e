// Package configs 提供应用程序配置管理功能
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/yeisme/wcagcheck/pkg/utils/fsop"
)

// Config 应用配置结构
type Config struct {
	Version string      `mapstructure:"version"`
	Log     LogConfig   `mapstructure:"log"`
	App     AppConfig   `mapstructure:"app"`
	Audit   AuditConfig `mapstructure:"audit"`
}

// EnvPrefix 环境变量前缀，例如 WCAGCHECK_AUDIT_SOURCE
const EnvPrefix = "WCAGCHECK"

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
	setAuditConfigDefaults(v)
}

// searchPaths 配置文件搜索路径
func searchPaths() []string {
	paths := []string{
		".",
		"./configs",
		"$HOME/.config/wcagcheck",
	}
	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		paths = append(paths, "$APPDATA/wcagcheck")
	} else {
		paths = append(paths, "/etc/wcagcheck")
	}
	return paths
}

// findConfigFile 按搜索路径与扩展名组合查找第一个存在的配置文件
func findConfigFile(fs afero.Fs) (string, bool) {
	configNames := []string{".wcagcheck", "wcagcheck"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, dir := range searchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(dir, name+"."+ext)
				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}
				if ok, _ := afero.Exists(fs, configFile); ok {
					return configFile, true
				}
			}
		}
	}
	return "", false
}

// NewViper 创建绑定到 fsop 后端的 viper 实例并设置默认值与环境变量
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetFs(fsop.API().Fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadConfig 加载配置文件；configPath 为空时按搜索路径查找，找不到则只使用默认值
func LoadConfig(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		// 使用指定的配置文件路径
		v.SetConfigFile(configPath)
	} else if found, ok := findConfigFile(fsop.API().Fs); ok {
		v.SetConfigFile(found)
	}

	// 读取配置文件，未找到时只使用默认值
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := fsop.API().MkdirAll(logDir, 0o755); err != nil {
			return nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	return &config, nil
}

// CreateDefaultConfig 将默认配置写入 path 并返回实际写入的路径，文件已存在时返回错误
// path 没有扩展名时按 format 补全
func CreateDefaultConfig(path string, format OutputFormat) (string, error) {
	if format != FormatYAML && format != FormatJSON && format != FormatTOML {
		return "", fmt.Errorf("unsupported config format: %s", format)
	}
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "yaml", "yml", "json", "toml":
	default:
		path += "." + string(format)
	}
	if ok, _ := fsop.API().Exists(path); ok {
		return "", fmt.Errorf("config file already exists: %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fsop.API().MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	v := viper.New()
	v.SetFs(fsop.API().Fs)
	setDefaults(v)
	// viper 依据扩展名选择编码格式
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
