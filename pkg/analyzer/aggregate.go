package analyzer

import (
	"errors"
	"time"

	"github.com/yeisme/dirstat/pkg/models"
)

// ErrFinalized 对已定稿的报告继续聚合是调用方的编程错误
var ErrFinalized = errors.New("analyzer: report already finalized")

// NewReport 创建全零的报告并盖上开始时间戳
func NewReport(targetDirectory string) *models.Report {
	return &models.Report{
		TargetDirectory: targetDirectory,
		StartTime:       time.Now(),
		PerLanguage:     make(map[string]*models.GroupTotals),
		PerCategory:     make(map[string]*models.GroupTotals),
		PerExtension:    make(map[string]*models.GroupTotals),
	}
}

// Update 将一条记录折叠进报告
// 纯折叠：相同记录序列产生相同报告，记录顺序不影响最终总量
func Update(r *models.Report, rec models.FileRecord) error {
	if r.Finalized() {
		return ErrFinalized
	}

	r.TotalFiles++
	r.TotalSizeBytes += rec.SizeBytes
	r.TotalLineCount += rec.LineCount

	updateGroup(r.PerLanguage, rec.Language, rec, "")
	updateGroup(r.PerCategory, rec.Category, rec, "")

	ext := rec.Extension
	if ext == "" {
		ext = "(none)" // 无扩展名文件聚到专用组
	}
	updateGroup(r.PerExtension, ext, rec, rec.Language)
	return nil
}

// Finalize 盖上结束时间戳并写入错误摘要，此后报告只读
func Finalize(r *models.Report, end time.Time, errorCounts map[models.ErrorKind]int) {
	if len(errorCounts) > 0 {
		r.Errors = make(map[models.ErrorKind]int, len(errorCounts))
		for kind, n := range errorCounts {
			r.Errors[kind] = n
		}
	}
	r.EndTime = end
}

// updateGroup 创建或更新单个分组的累计值
// language 仅对扩展名分组传入，用于展示
func updateGroup(groups map[string]*models.GroupTotals, key string, rec models.FileRecord, language string) {
	g, ok := groups[key]
	if !ok {
		g = &models.GroupTotals{Language: language}
		groups[key] = g
	}
	g.FileCount++
	g.TotalSizeBytes += rec.SizeBytes
	g.TotalLineCount += rec.LineCount
}
