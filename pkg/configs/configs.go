// Package configs 提供 dirstat 的配置管理
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Version string        `mapstructure:"version"`
	App     AppConfig     `mapstructure:"app"`
	Log     LogConfig     `mapstructure:"log"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Debug   bool   `mapstructure:"debug"`
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"` // 安静模式，禁止所有日志输出
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`       // 日志级别: trace, debug, info, warn, error, fatal, panic
	JSON       bool   `mapstructure:"json"`        // 是否使用 JSON 格式输出
	Mode       string `mapstructure:"mode"`        // 输出模式: console, file, both
	FilePath   string `mapstructure:"file_path"`   // 文件路径（mode 为 file 或 both 时使用）
	MaxSize    int    `mapstructure:"max_size"`    // 日志文件最大大小（MB）
	MaxBackups int    `mapstructure:"max_backups"` // 保留的备份文件数量
	MaxAge     int    `mapstructure:"max_age"`     // 文件保留天数
}

// FilterConfig 过滤与遍历配置
type FilterConfig struct {
	Exclude        []string `mapstructure:"exclude"`         // 排除模式列表
	Include        []string `mapstructure:"include"`         // 包含模式列表，空表示全部
	MaxDepth       int      `mapstructure:"max_depth"`       // 最大遍历深度，-1 不限制
	IncludeHidden  bool     `mapstructure:"include_hidden"`  // 是否包含隐藏文件
	FollowSymlinks bool     `mapstructure:"follow_symlinks"` // 是否跟随符号链接
}

// CatalogConfig 扩展名目录表配置
type CatalogConfig struct {
	Path string `mapstructure:"path"` // 外部目录表路径，空表示使用内置默认表
}

// MetricsConfig 文本指标提取配置
type MetricsConfig struct {
	Encoding       string   `mapstructure:"encoding"`        // 读取文件使用的编码（IANA 名称），空表示平台默认
	CommentMarkers []string `mapstructure:"comment_markers"` // 注释行前缀标记列表
}

// setDefaults 设置默认配置值
func setDefaults() {
	viper.SetDefault("version", "1.0")
	viper.SetDefault("app.name", "dirstat")
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.verbose", false)
	viper.SetDefault("app.quiet", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)
	viper.SetDefault("log.mode", "console")
	viper.SetDefault("log.file_path", ".dirstat/dirstat.log")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age", 28)
	viper.SetDefault("filter.exclude", []string{
		"*.tmp", "*.log", "*~", ".git", ".svn", "node_modules", "vendor", "bin", "obj", "dist",
	})
	viper.SetDefault("filter.include", []string{})
	viper.SetDefault("filter.max_depth", -1)
	viper.SetDefault("filter.include_hidden", false)
	viper.SetDefault("filter.follow_symlinks", false)
	viper.SetDefault("catalog.path", "")
	viper.SetDefault("metrics.encoding", "")
	viper.SetDefault("metrics.comment_markers", []string{"#", "//", "/*", "<!--", "--", ";", "REM "})
}

var globalConfig *Config

// tryLoadConfigFiles 按搜索路径尝试加载不同格式的配置文件
func tryLoadConfigFiles() bool {
	searchPaths := []string{
		".",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/dirstat",
	}

	if runtime.GOOS == "windows" {
		searchPaths = append(searchPaths,
			"$USERPROFILE",
			"$APPDATA/dirstat",
		)
	} else {
		searchPaths = append(searchPaths, "/etc/dirstat")
	}

	configNames := []string{".dirstat", "dirstat"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}
				if _, err := os.Stat(configFile); err == nil {
					viper.SetConfigFile(configFile)
					return true
				}
			}
		}
	}
	return false
}

// LoadConfig 加载配置文件
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		tryLoadConfigFiles()
	}

	viper.SetEnvPrefix("DIRSTAT")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}

	globalConfig = &config
	return &config, nil
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("load config: %v", err))
		}
		return config
	}
	return globalConfig
}
