// Package models 定义 dirstat 的核心数据模型
package models

import "time"

// ErrorKind 运行期错误分类，用于错误摘要计数
type ErrorKind string

const (
	// ErrorKindConfig 配置错误（目录表或过滤配置非法），在遍历前终止运行
	ErrorKindConfig ErrorKind = "config"
	// ErrorKindPath 根目录不存在或不是目录，立即终止运行
	ErrorKindPath ErrorKind = "path"
	// ErrorKindDirectoryAccess 子目录无法读取，跳过该子树后继续
	ErrorKindDirectoryAccess ErrorKind = "directory_access"
	// ErrorKindFileRead 文件在任何编码下都无法读取，以零值指标计入
	ErrorKindFileRead ErrorKind = "file_read"
)

// FileRecord 单个文件的不可变快照：路径元数据 + 分类 + 文本指标
// 由分析流水线创建一次，之后不再修改
type FileRecord struct {
	AbsolutePath string    `json:"absolute_path" yaml:"absolute_path"` // 绝对路径
	FileName     string    `json:"file_name" yaml:"file_name"`         // 文件名（含扩展名）
	Extension    string    `json:"extension" yaml:"extension"`         // 规范化扩展名（小写、带点）
	Directory    string    `json:"directory" yaml:"directory"`         // 所在目录
	SizeBytes    int64     `json:"size_bytes" yaml:"size_bytes"`       // 文件大小
	LastModified time.Time `json:"last_modified" yaml:"last_modified"` // 最后修改时间
	IsHidden     bool      `json:"hidden" yaml:"hidden"`               // 是否隐藏文件（点前缀）
	IsReadOnly   bool      `json:"read_only" yaml:"read_only"`         // 是否只读

	Language string `json:"language" yaml:"language"` // 扩展名映射到的语言
	Category string `json:"category" yaml:"category"` // 扩展名映射到的类别

	LineCount        int `json:"line_count" yaml:"line_count"`                 // 行数
	CharCount        int `json:"char_count" yaml:"char_count"`                 // 字符数（按字素簇）
	WordCount        int `json:"word_count" yaml:"word_count"`                 // 单词数
	CommentLineCount int `json:"comment_line_count" yaml:"comment_line_count"` // 注释行数
	BlankLineCount   int `json:"blank_line_count" yaml:"blank_line_count"`     // 空白行数
}

// GroupTotals 按单一维度（语言/类别/扩展名）汇总的累计值
// 仅由聚合器修改，单次运行内单调不减
type GroupTotals struct {
	FileCount      int    `json:"file_count" yaml:"file_count"`             // 文件总数
	TotalSizeBytes int64  `json:"total_size_bytes" yaml:"total_size_bytes"` // 总大小
	TotalLineCount int    `json:"total_line_count" yaml:"total_line_count"` // 总行数
	Language       string `json:"language,omitempty" yaml:"language,omitempty"`
	// Language 仅在扩展名分组中填充，用于展示该扩展名所属的语言
}

// Report 一次分析运行的最终结果
// 运行开始时创建（全零），运行结束时定稿，此后只读
type Report struct {
	TargetDirectory string    `json:"target_directory" yaml:"target_directory"` // 分析的根目录
	StartTime       time.Time `json:"start_time" yaml:"start_time"`             // 运行开始时间
	EndTime         time.Time `json:"end_time" yaml:"end_time"`                 // 运行结束时间（定稿时写入）

	PerLanguage  map[string]*GroupTotals `json:"languages" yaml:"languages"`   // 按语言分组
	PerCategory  map[string]*GroupTotals `json:"categories" yaml:"categories"` // 按类别分组
	PerExtension map[string]*GroupTotals `json:"extensions" yaml:"extensions"` // 按扩展名分组

	TotalFiles     int   `json:"total_files" yaml:"total_files"`           // 文件总数
	TotalSizeBytes int64 `json:"total_size_bytes" yaml:"total_size_bytes"` // 总大小
	TotalLineCount int   `json:"total_line_count" yaml:"total_line_count"` // 总行数

	// Errors 错误摘要：错误种类 -> 出现次数，运行结束时由 RunContext 填入
	Errors map[ErrorKind]int `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Finalized 报告是否已定稿（定稿后禁止继续聚合）
func (r *Report) Finalized() bool {
	return !r.EndTime.IsZero()
}
