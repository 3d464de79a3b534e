// Package style 提供多种样式化输出功能
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// 定义一套颜色，方便管理和修改
const (
	// 主题强调色/品牌色，用于吸引注意力的元素，如表头
	ColorAccentPrimary = lipgloss.Color("#33A1FF")

	// 主要文本颜色，用于普通的数据行内容
	ColorText = lipgloss.Color("#E4E4E4")

	// 边框颜色，用于表格或容器的轮廓
	ColorBorder = lipgloss.Color("#444444")

	// 次要信息，例如缺失的 token 或提示
	ColorMuted = lipgloss.Color("#9CA3AF")

	// 危险/失败
	ColorDanger = lipgloss.Color("#FF5555")

	// 警告，介于通过与失败之间
	ColorWarning = lipgloss.Color("#F59E0B")

	// 成功/通过 绿色
	ColorSuccess = lipgloss.Color("#22C55E")

	// JSON 高亮颜色
	ColorJSONKey    = lipgloss.Color("#55bcf4ff") // 键名
	ColorJSONNumber = lipgloss.Color("#d4ec19ff") // 数字
	ColorJSONBool   = lipgloss.Color("#dfab49ff") // 布尔
	ColorJSONNull   = lipgloss.Color("#6272A4")   // null
	ColorJSONPunct  = lipgloss.Color("#6B7280")   // 标点
)

// NewRenderer 创建绑定到 w 的渲染器；color 为 false 时强制输出纯文本
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	re := lipgloss.NewRenderer(w)
	if !color {
		re.SetColorProfile(termenv.Ascii)
	}
	return re
}

// StatusStyle 返回审计状态对应的样式，未知状态使用普通文本色
func StatusStyle(re *lipgloss.Renderer, status string) lipgloss.Style {
	s := re.NewStyle().Bold(true)
	switch status {
	case "PASS", "OK":
		return s.Foreground(ColorSuccess)
	case "WARN":
		return s.Foreground(ColorWarning)
	case "FAIL":
		return s.Foreground(ColorDanger)
	case "MISSING":
		return s.Foreground(ColorMuted)
	default:
		return re.NewStyle().Foreground(ColorText)
	}
}

// Swatch 渲染一个以 hex 颜色为背景的色块，纯文本模式下退化为空白
func Swatch(re *lipgloss.Renderer, hex string) string {
	if hex == "" {
		return "  "
	}
	return re.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
