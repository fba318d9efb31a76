// Package metrics 从单个文件的文本内容提取统计指标
package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/yeisme/dirstat/pkg/utils/log"
)

// DefaultMarkers 默认注释行前缀标记
// 无语言感知的启发式集合，大小写敏感
var DefaultMarkers = []string{"#", "//", "/*", "<!--", "--", ";", "REM "}

// Metrics 单个文件的文本指标
type Metrics struct {
	LineCount        int `json:"line_count" yaml:"line_count"`                 // 换行分隔的记录数，末行缺换行符也计数
	CharCount        int `json:"char_count" yaml:"char_count"`                 // 字素簇数量（用户感知字符）
	WordCount        int `json:"word_count" yaml:"word_count"`                 // 非空白非标点字符的最大连续段数量
	CommentLineCount int `json:"comment_line_count" yaml:"comment_line_count"` // 以注释标记开头的行数
	BlankLineCount   int `json:"blank_line_count" yaml:"blank_line_count"`     // 空行或纯空白行数
}

// Extractor 文本指标提取器
type Extractor struct {
	Encoding string   // 读取使用的编码（IANA 名称）；空表示平台默认（UTF-8）
	Markers  []string // 注释标记，空表示 DefaultMarkers
}

// Extract 读取并解码 path 的内容后计算指标
//
// 失败策略：配置编码下解码失败时，用平台默认编码重试一次（宽容解码，
// 非法序列以替换字符带过）；文件本身读不出来时返回全零指标和错误，
// 由调用方记入错误摘要，单个文件不中断整批运行
func (e *Extractor) Extract(ctx context.Context, path string) (Metrics, error) {
	if err := ctx.Err(); err != nil {
		return Metrics{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Metrics{}, err
	}

	text, err := e.decode(raw)
	if err != nil {
		log.Warn().Str("path", path).Str("encoding", e.Encoding).Err(err).
			Msg("decode failed, retrying with platform default encoding")
		text = string(raw)
	}

	return e.compute(text), nil
}

// decode 按配置编码严格解码原始字节
func (e *Extractor) decode(raw []byte) (string, error) {
	name := strings.TrimSpace(e.Encoding)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("content is not valid UTF-8")
		}
		return string(raw), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return "", fmt.Errorf("unknown encoding %q", name)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", name, err)
	}
	return string(decoded), nil
}

// compute 对解码后的文本计算全部指标
func (e *Extractor) compute(text string) Metrics {
	var m Metrics
	if len(text) == 0 {
		return m
	}

	m.CharCount = uniseg.GraphemeClusterCount(text)
	m.WordCount = countWords(text)

	markers := e.Markers
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	lines := splitLines(text)
	m.LineCount = len(lines)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			m.BlankLineCount++
			continue
		}
		for _, marker := range markers {
			if strings.HasPrefix(trimmed, marker) {
				m.CommentLineCount++
				break
			}
		}
	}
	return m
}

// splitLines 按换行符切分为记录
// 末尾换行符不产生空记录；行尾的 \r 被剥离
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// countWords 统计单词数：既非空白也非标点的字符的最大连续段
func countWords(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			inWord = false
			continue
		}
		if !inWord {
			words++
			inWord = true
		}
	}
	return words
}
