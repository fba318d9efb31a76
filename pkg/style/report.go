package style

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yeisme/dirstat/pkg/models"
)

// barWidth 分组表中比例条的固定宽度
const barWidth = 16

// PrintReport 以分组表格渲染定稿报告
// groups 指定要渲染的维度（language/category/extension），空表示全部
func PrintReport(w io.Writer, report *models.Report, groups []string) error {
	if len(groups) == 0 {
		groups = []string{"language", "category", "extension"}
	}

	if err := printSummary(w, report); err != nil {
		return err
	}

	for _, group := range groups {
		switch group {
		case "language":
			if err := printGroupTable(w, "By Language", report.PerLanguage, report, false); err != nil {
				return err
			}
		case "category":
			if err := printGroupTable(w, "By Category", report.PerCategory, report, false); err != nil {
				return err
			}
		case "extension":
			if err := printGroupTable(w, "By Extension", report.PerExtension, report, true); err != nil {
				return err
			}
		default:
			return fmt.Errorf("style: unknown group %q", group)
		}
	}

	return printErrorSummary(w, report)
}

// printSummary 打印运行级汇总
func printSummary(w io.Writer, report *models.Report) error {
	if err := PrintHeading(w, "Summary"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d files, %s, %d lines in %s\n\n",
		report.TargetDirectory,
		report.TotalFiles,
		humanize.Bytes(uint64(report.TotalSizeBytes)),
		report.TotalLineCount,
		report.EndTime.Sub(report.StartTime).Round(time.Millisecond),
	)
	return err
}

// printGroupTable 打印单个维度的分组统计表
// withLanguage 为扩展名分组附加语言列
func printGroupTable(w io.Writer, title string, groups map[string]*models.GroupTotals, report *models.Report, withLanguage bool) error {
	if err := PrintHeading(w, title); err != nil {
		return err
	}

	keys := sortedKeys(groups)
	headers := []string{"name", "files", "size", "lines", "share", ""}
	if withLanguage {
		headers = []string{"extension", "language", "files", "size", "lines", "share", ""}
	}

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		row := []string{
			key,
			strconv.Itoa(g.FileCount),
			humanize.Bytes(uint64(g.TotalSizeBytes)),
			strconv.Itoa(g.TotalLineCount),
			Percent(int64(g.FileCount), int64(report.TotalFiles)),
			Bar(int64(g.FileCount), int64(report.TotalFiles), barWidth),
		}
		if withLanguage {
			row = append([]string{key, g.Language}, row[1:]...)
		}
		rows = append(rows, row)
	}

	return PrintTable(w, headers, rows, 0)
}

// printErrorSummary 打印错误摘要（没有错误时不输出）
func printErrorSummary(w io.Writer, report *models.Report) error {
	if len(report.Errors) == 0 {
		return nil
	}
	if err := PrintHeading(w, "Errors"); err != nil {
		return err
	}
	kinds := make([]string, 0, len(report.Errors))
	for kind := range report.Errors {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", kind, report.Errors[models.ErrorKind(kind)]); err != nil {
			return err
		}
	}
	return nil
}

// sortedKeys 按文件数降序排序分组键，数量相同时按键名升序，保证输出稳定
func sortedKeys(groups map[string]*models.GroupTotals) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := groups[keys[i]], groups[keys[j]]
		if a.FileCount != b.FileCount {
			return a.FileCount > b.FileCount
		}
		return keys[i] < keys[j]
	})
	return keys
}
