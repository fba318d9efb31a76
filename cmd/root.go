// Package cmd 提供 dirstat 的命令行入口
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	appctx "github.com/yeisme/dirstat/pkg/context"
	log2 "github.com/yeisme/dirstat/pkg/utils/log"
)

var (
	appCtx *appctx.AppContext
	log    log2.Logger

	// 全局标志
	configPathFlag string
	debugFlag      bool
	verboseFlag    bool
	quietFlag      bool
)

// rootCmd dirstat 的根命令
var rootCmd = &cobra.Command{
	Use:   "dirstat",
	Short: "dirstat analyzes a directory tree and reports per-language statistics",
	Long: `dirstat walks a directory tree, classifies each file by its extension
and aggregates text metrics (lines, characters, words, comment and blank
lines) into language, category and extension statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
		}
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		ctx := appctx.InitAppContext(configPathFlag, debugFlag, verboseFlag, quietFlag)
		appCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("execute command: dirstat %s", strings.Join(os.Args[1:], " "))
	},
}

// Execute 将全部子命令挂到根命令并执行
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "V", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "suppress all output except errors")
}
