package style

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Bar 渲染 value/max 的比例条指示器，总显示宽度固定为 width 列
// max <= 0 时渲染空条
func Bar(value, max int64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if max > 0 {
		filled = int(float64(width) * float64(value) / float64(max))
		if filled > width {
			filled = width
		}
		if filled == 0 && value > 0 {
			filled = 1 // 非零值至少可见一格
		}
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return runewidth.Truncate(bar, width, "")
}

// Percent 格式化百分比列，零分母时返回占位
func Percent(value, total int64) string {
	if total <= 0 {
		return "  0.0%"
	}
	return fmt.Sprintf("%5.1f%%", float64(value)/float64(total)*100)
}
