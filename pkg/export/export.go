// Package export 将定稿报告导出为结构化 JSON 或逐文件 CSV
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/yeisme/dirstat/pkg/models"
)

// jsonDocument 结构化导出的顶层形状：运行元数据 + 聚合统计 + 逐文件摘要
type jsonDocument struct {
	Run   runMeta             `json:"run"`
	Stats aggregateStats      `json:"stats"`
	Files []models.FileRecord `json:"files"`
}

type runMeta struct {
	TargetDirectory string    `json:"target_directory"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMS      int64     `json:"duration_ms"`
}

type aggregateStats struct {
	TotalFiles     int                            `json:"total_files"`
	TotalSizeBytes int64                          `json:"total_size_bytes"`
	TotalLineCount int                            `json:"total_line_count"`
	Languages      map[string]*models.GroupTotals `json:"languages"`
	Categories     map[string]*models.GroupTotals `json:"categories"`
	Extensions     map[string]*models.GroupTotals `json:"extensions"`
	Errors         map[models.ErrorKind]int       `json:"errors,omitempty"`
}

// WriteJSON 以缩进 JSON 写出报告与逐文件列表
func WriteJSON(w io.Writer, report *models.Report, files []models.FileRecord) error {
	if files == nil {
		files = []models.FileRecord{}
	}
	doc := jsonDocument{
		Run: runMeta{
			TargetDirectory: report.TargetDirectory,
			StartTime:       report.StartTime,
			EndTime:         report.EndTime,
			DurationMS:      report.EndTime.Sub(report.StartTime).Milliseconds(),
		},
		Stats: aggregateStats{
			TotalFiles:     report.TotalFiles,
			TotalSizeBytes: report.TotalSizeBytes,
			TotalLineCount: report.TotalLineCount,
			Languages:      report.PerLanguage,
			Categories:     report.PerCategory,
			Extensions:     report.PerExtension,
			Errors:         report.Errors,
		},
		Files: files,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// csvHeader 平面导出的列集合，一行一个文件
var csvHeader = []string{
	"name", "path", "language", "category",
	"size_bytes", "line_count", "char_count", "word_count",
	"comment_line_count", "blank_line_count",
	"last_modified", "hidden", "read_only",
}

// WriteCSV 写出逐文件的平面表格
func WriteCSV(w io.Writer, files []models.FileRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for _, f := range files {
		row := []string{
			f.FileName,
			f.AbsolutePath,
			f.Language,
			f.Category,
			strconv.FormatInt(f.SizeBytes, 10),
			strconv.Itoa(f.LineCount),
			strconv.Itoa(f.CharCount),
			strconv.Itoa(f.WordCount),
			strconv.Itoa(f.CommentLineCount),
			strconv.Itoa(f.BlankLineCount),
			f.LastModified.Format(time.RFC3339),
			strconv.FormatBool(f.IsHidden),
			strconv.FormatBool(f.IsReadOnly),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
