package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeisme/dirstat/pkg/style"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Manage dirstat configuration",
	Aliases: []string{"c"},
}

// configShowCmd 按指定格式输出当前生效的配置
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `dirstat config show prints the merged configuration (defaults, config
file and environment variables).

Examples:
  dirstat config show
  dirstat config show --format toml
  dirstat config show --format json`,
	Aliases: []string{"list", "ls"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		switch configFormat {
		case "yaml", "yml":
			return style.PrintYAML(out, appCtx.Config)
		case "toml":
			return style.PrintTOML(out, appCtx.Config)
		case "json":
			return style.PrintJSON(out, appCtx.Config)
		default:
			return fmt.Errorf("unknown format %q (want yaml, toml or json)", configFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "output format: yaml, toml or json")
}
