// Package context 提供贯穿命令执行的应用上下文
package context

import (
	"context"

	"github.com/yeisme/dirstat/pkg/configs"
	"github.com/yeisme/dirstat/pkg/utils/log"
)

// AppContext 应用上下文：标准 context + 配置 + 日志记录器
type AppContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Logger log.Logger      // 日志记录器
}

// InitAppContext 加载配置并初始化日志后构造应用上下文
// 命令行标志覆盖配置文件中的对应项
func InitAppContext(configPath string, debug, verbose, quiet bool) *AppContext {
	ctx := context.Background()
	config, err := configs.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}

	if debug {
		config.App.Debug = true
	}
	if verbose {
		config.App.Verbose = true
	}
	if quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &AppContext{
		Context: ctx,
		Config:  config,
		Logger:  logger,
	}
}
