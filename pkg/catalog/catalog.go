// Package catalog 提供扩展名到语言/类别的静态映射表
// 映射表从外部 YAML 配置加载一次，加载失败时回退到内置默认表
package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yeisme/dirstat/pkg/utils/log"
)

// Entry 单个扩展名的分类信息
type Entry struct {
	Language    string `yaml:"language" json:"language"`       // 语言名称（必填）
	Category    string `yaml:"category" json:"category"`       // 类别名称（必填）
	Description string `yaml:"description" json:"description"` // 描述（可选）
}

// UnknownEntry 目录表中不存在的扩展名的兜底分类
var UnknownEntry = Entry{Language: "Unknown", Category: "Other"}

// Catalog 扩展名分类表，加载后不可变
// 键为规范化扩展名（小写、带前导点）
type Catalog struct {
	entries         map[string]Entry
	defaultExcludes []string
}

// ConfigError 目录表配置错误：结构非法或必填字段缺失
// 属于致命错误，调用方应在遍历开始前处理（通常回退到内置默认表）
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog: %s: %v", e.Msg, e.Err)
	}
	return "catalog: " + e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// catalogFile 外部 YAML 配置的文件结构：
// 扩展名 -> {language, category, description} 的映射，外加默认排除模式列表
type catalogFile struct {
	Extensions      map[string]Entry `yaml:"extensions"`
	DefaultExcludes []string         `yaml:"default_excludes"`
}

// Load 从 r 解析目录表
// 扩展名必须非空；约定以 '.' 开头，缺少前导点仅告警并自动补齐
// 结构非法或 language/category 缺失时返回 *ConfigError
func Load(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Catalog{}, &ConfigError{Msg: "read source", Err: err}
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, &ConfigError{Msg: "not a mapping of mappings", Err: err}
	}
	if len(f.Extensions) == 0 {
		return Catalog{}, &ConfigError{Msg: "no extensions defined"}
	}

	entries := make(map[string]Entry, len(f.Extensions))
	for ext, entry := range f.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			return Catalog{}, &ConfigError{Msg: "empty extension key"}
		}
		if strings.TrimSpace(entry.Language) == "" {
			return Catalog{}, &ConfigError{Msg: fmt.Sprintf("extension %q: missing language", ext)}
		}
		if strings.TrimSpace(entry.Category) == "" {
			return Catalog{}, &ConfigError{Msg: fmt.Sprintf("extension %q: missing category", ext)}
		}
		if !strings.HasPrefix(ext, ".") {
			log.Warn().Str("extension", ext).Msg("catalog entry missing leading dot, normalizing")
		}
		entries[normalizeExt(ext)] = entry
	}

	return Catalog{entries: entries, defaultExcludes: f.DefaultExcludes}, nil
}

// LoadFile 从路径加载目录表，文件不存在或内容非法时返回错误
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, &ConfigError{Msg: "open " + path, Err: err}
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Classify 大小写不敏感地查找扩展名的分类
// 不在表中的扩展名返回 UnknownEntry，永不失败
func (c Catalog) Classify(ext string) Entry {
	if len(c.entries) == 0 {
		return UnknownEntry
	}
	if entry, ok := c.entries[normalizeExt(ext)]; ok {
		return entry
	}
	return UnknownEntry
}

// Extensions 返回表中全部规范化扩展名（顺序不保证）
func (c Catalog) Extensions() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	return keys
}

// DefaultExcludes 返回目录表附带的默认排除模式列表
func (c Catalog) DefaultExcludes() []string {
	return c.defaultExcludes
}

// Len 表中条目数量
func (c Catalog) Len() int { return len(c.entries) }

// normalizeExt 规范化扩展名：小写并保证前导点
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ext
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
