// Package analyzer 将遍历、过滤、指标提取与聚合串成单线程流水线
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yeisme/dirstat/pkg/catalog"
	"github.com/yeisme/dirstat/pkg/filter"
	"github.com/yeisme/dirstat/pkg/metrics"
	"github.com/yeisme/dirstat/pkg/models"
	"github.com/yeisme/dirstat/pkg/utils/log"
	"github.com/yeisme/dirstat/pkg/walker"
)

// State 单次运行的流水线状态
type State int

const (
	// StateIdle 尚未开始
	StateIdle State = iota
	// StateWalking 目录遍历中
	StateWalking
	// StateFiltering 过滤与指标提取中
	StateFiltering
	// StateAggregating 聚合中
	StateAggregating
	// StateFinalized 已定稿，报告只读
	StateFinalized
)

// ErrNotDirectory 根路径存在但不是目录
var ErrNotDirectory = errors.New("not a directory")

// PathError 根目录缺失或不是目录，立即终止运行
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("analyzer: path %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// RunContext 运行级计数器，显式随流水线传递而不是放在全局状态里，
// 保证聚合器本身保持纯函数、运行结果可复现
type RunContext struct {
	StartedAt   time.Time
	ErrorCounts map[models.ErrorKind]int
}

// NewRunContext 创建新的运行上下文
func NewRunContext() *RunContext {
	return &RunContext{
		StartedAt:   time.Now(),
		ErrorCounts: make(map[models.ErrorKind]int),
	}
}

// Record 为某一错误种类计数加一
func (rc *RunContext) Record(kind models.ErrorKind) {
	rc.ErrorCounts[kind]++
}

// Runner 驱动一次完整的分析运行
// 规范化流水线是同步单线程的：每个文件依次经过过滤、提取、聚合
type Runner struct {
	Catalog   catalog.Catalog    // 扩展名分类表
	Filter    filter.Config      // 过滤与遍历配置
	Extractor *metrics.Extractor // 指标提取器，nil 时使用零值提取器

	state State
}

// State 返回当前流水线状态
func (r *Runner) State() State { return r.state }

// Run 对 root 执行一次完整分析
// 返回定稿的报告与全部文件记录（供导出使用）
// 状态机 Idle → Walking → Filtering → Aggregating → Finalized 不跳步，
// 零文件命中时报告同样以全零定稿
func (r *Runner) Run(ctx context.Context, root string) (*models.Report, []models.FileRecord, error) {
	r.state = StateIdle

	if err := r.Filter.Validate(); err != nil {
		return nil, nil, fmt.Errorf("analyzer: invalid filter config: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, &PathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, nil, &PathError{Path: root, Err: ErrNotDirectory}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	rc := NewRunContext()
	report := NewReport(abs)

	r.state = StateWalking
	paths, err := walker.Walk(ctx, abs, r.Filter, func(string, error) {
		rc.Record(models.ErrorKindDirectoryAccess)
	})
	if err != nil {
		return nil, nil, err
	}

	r.state = StateFiltering
	extractor := r.Extractor
	if extractor == nil {
		extractor = &metrics.Extractor{}
	}

	records := make([]models.FileRecord, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if filter.IsExcluded(path, r.Filter) {
			continue
		}
		rec, ok := r.buildRecord(ctx, extractor, path, rc)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	r.state = StateAggregating
	for _, rec := range records {
		if err := Update(report, rec); err != nil {
			return nil, nil, err
		}
	}

	Finalize(report, time.Now(), rc.ErrorCounts)
	r.state = StateFinalized

	log.Debug().
		Int("files", report.TotalFiles).
		Int64("bytes", report.TotalSizeBytes).
		Dur("elapsed", report.EndTime.Sub(rc.StartedAt)).
		Msg("analysis finished")
	return report, records, nil
}

// buildRecord 为单个文件构建不可变记录
//
// 内容读取失败的文件按决定保留：以零值指标计入报告并记一次 file_read；
// 连 os.Stat 都失败（文件在遍历后消失）时无法构成记录，计数后丢弃
func (r *Runner) buildRecord(ctx context.Context, extractor *metrics.Extractor, path string, rc *RunContext) (models.FileRecord, bool) {
	info, err := os.Stat(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("file vanished before stat")
		rc.Record(models.ErrorKindFileRead)
		return models.FileRecord{}, false
	}

	m, err := extractor.Extract(ctx, path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("file unreadable, keeping zero metrics")
		rc.Record(models.ErrorKindFileRead)
		m = metrics.Metrics{}
	}

	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(name))
	entry := r.Catalog.Classify(ext)

	return models.FileRecord{
		AbsolutePath: path,
		FileName:     name,
		Extension:    ext,
		Directory:    filepath.Dir(path),
		SizeBytes:    info.Size(),
		LastModified: info.ModTime(),
		IsHidden:     strings.HasPrefix(name, "."),
		IsReadOnly:   info.Mode().Perm()&0o200 == 0,
		Language:     entry.Language,
		Category:     entry.Category,

		LineCount:        m.LineCount,
		CharCount:        m.CharCount,
		WordCount:        m.WordCount,
		CommentLineCount: m.CommentLineCount,
		BlankLineCount:   m.BlankLineCount,
	}, true
}
