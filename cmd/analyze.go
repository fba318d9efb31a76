package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yeisme/dirstat/pkg/analyzer"
	"github.com/yeisme/dirstat/pkg/catalog"
	"github.com/yeisme/dirstat/pkg/export"
	"github.com/yeisme/dirstat/pkg/filter"
	"github.com/yeisme/dirstat/pkg/metrics"
	"github.com/yeisme/dirstat/pkg/style"
)

var (
	analyzeExclude        []string
	analyzeInclude        []string
	analyzeMaxDepth       int
	analyzeHidden         bool
	analyzeFollowSymlinks bool
	analyzeCatalogPath    string
	analyzeEncoding       string
	analyzeFormat         string
	analyzeOutput         string
	analyzeGroup          string
)

// analyzeCmd 执行一次目录分析
var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Analyze a directory tree and report grouped statistics",
	Long: `dirstat analyze walks the target directory (default "."), classifies every
eligible file and aggregates text metrics into language, category and
extension groups.

Examples:
  # Analyze the current directory
  dirstat analyze

  # Limit traversal depth and exclude generated code
  dirstat analyze ./src --max-depth 2 -e "*.gen.go" -e node_modules

  # Only count Go and Markdown files, including hidden ones
  dirstat analyze -i "*.go" -i "*.md" --hidden

  # Export to a file instead of rendering tables
  dirstat analyze --format json -o report.json
  dirstat analyze --format csv -o files.csv`,
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"a", "scan"},
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		cat := loadCatalog()
		cfg := buildFilterConfig(cmd)
		// 目录表附带的默认排除模式并入过滤配置，显式 --exclude 优先
		if !cmd.Flags().Changed("exclude") {
			cfg.Exclude = mergePatterns(cfg.Exclude, cat.DefaultExcludes())
		}

		runner := &analyzer.Runner{
			Catalog:   cat,
			Filter:    cfg,
			Extractor: buildExtractor(),
		}

		report, records, err := runner.Run(appCtx, root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if analyzeOutput != "" {
			f, err := os.Create(analyzeOutput)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		switch analyzeFormat {
		case "table":
			groups := []string{analyzeGroup}
			if analyzeGroup == "all" {
				groups = nil
			}
			return style.PrintReport(out, report, groups)
		case "json":
			return export.WriteJSON(out, report, records)
		case "csv":
			return export.WriteCSV(out, records)
		default:
			return fmt.Errorf("unknown format %q (want table, json or csv)", analyzeFormat)
		}
	},
}

// loadCatalog 加载扩展名目录表
// 显式路径 > 配置文件路径 > 内置默认表；加载失败回退默认表而不是中止
func loadCatalog() catalog.Catalog {
	path := analyzeCatalogPath
	if path == "" {
		path = appCtx.Config.Catalog.Path
	}
	if path == "" {
		return catalog.Default()
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("catalog load failed, using built-in default table")
		return catalog.Default()
	}
	log.Debug().Str("path", path).Int("extensions", c.Len()).Msg("catalog loaded")
	return c
}

// buildFilterConfig 合成过滤配置：命令行标志覆盖配置文件
func buildFilterConfig(cmd *cobra.Command) filter.Config {
	fc := appCtx.Config.Filter
	cfg := filter.Config{
		Exclude:        fc.Exclude,
		Include:        fc.Include,
		MaxDepth:       fc.MaxDepth,
		IncludeHidden:  fc.IncludeHidden,
		FollowSymlinks: fc.FollowSymlinks,
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = analyzeExclude
	}
	if cmd.Flags().Changed("include") {
		cfg.Include = analyzeInclude
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = analyzeMaxDepth
	}
	if cmd.Flags().Changed("hidden") {
		cfg.IncludeHidden = analyzeHidden
	}
	if cmd.Flags().Changed("follow-symlinks") {
		cfg.FollowSymlinks = analyzeFollowSymlinks
	}
	return cfg
}

// mergePatterns 合并两组模式并去重，保持首次出现的顺序
func mergePatterns(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, p := range append(append([]string{}, a...), b...) {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// buildExtractor 按配置构造指标提取器
func buildExtractor() *metrics.Extractor {
	mc := appCtx.Config.Metrics
	encoding := mc.Encoding
	if analyzeEncoding != "" {
		encoding = analyzeEncoding
	}
	return &metrics.Extractor{
		Encoding: encoding,
		Markers:  mc.CommentMarkers,
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringSliceVarP(&analyzeExclude, "exclude", "e", nil, "exclude patterns (glob against name, parent dir or path)")
	analyzeCmd.Flags().StringSliceVarP(&analyzeInclude, "include", "i", nil, "include patterns (empty means all)")
	analyzeCmd.Flags().IntVar(&analyzeMaxDepth, "max-depth", -1, "max traversal depth, -1 for unlimited")
	analyzeCmd.Flags().BoolVar(&analyzeHidden, "hidden", false, "include hidden files and directories")
	analyzeCmd.Flags().BoolVar(&analyzeFollowSymlinks, "follow-symlinks", false, "follow symlinked directories")
	analyzeCmd.Flags().StringVar(&analyzeCatalogPath, "catalog", "", "extension catalog file (yaml)")
	analyzeCmd.Flags().StringVar(&analyzeEncoding, "encoding", "", "file encoding (IANA name, default platform encoding)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "table", "output format: table, json or csv")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write output to file instead of stdout")
	analyzeCmd.Flags().StringVarP(&analyzeGroup, "group", "g", "all", "table grouping: language, category, extension or all")
}
