// Package style 提供报告的样式化终端输出
package style

import "github.com/charmbracelet/lipgloss"

// 主题色定义，集中管理便于修改
const (
	// 主题强调色，用于表头等吸引注意力的元素
	ColorAccentPrimary = lipgloss.Color("#33A1FF")

	// 强调背景上的文本色，保证对比度
	ColorAccentText = lipgloss.Color("#FFFFFF")

	// 普通数据行文本色
	ColorText = lipgloss.Color("#E4E4E4")

	// 表格与容器边框色
	ColorBorder = lipgloss.Color("#444444")

	// 比例条填充色
	ColorBar = lipgloss.Color("#22C55E")

	// 次要信息（百分比、说明文字）
	ColorMuted = lipgloss.Color("#6B7280")

	// 错误摘要强调色
	ColorDanger = lipgloss.Color("#FF5555")
)
