package style

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	xterm "github.com/charmbracelet/x/term"
)

// CellStyler 在基础样式上为数据单元格追加样式，row 与 col 从 0 开始，不含表头
type CellStyler func(row, col int, base lipgloss.Style) lipgloss.Style

// PrintTable 用于标准化表格输出，支持自定义表头和内容
// width: 期望的表格宽度；当 width<=0 时自动探测终端宽度（失败则回退到80）。
func PrintTable(w io.Writer, headers []string, rows [][]string, width int) error {
	return PrintStyledTable(w, NewRenderer(w, true), headers, rows, width, nil)
}

// PrintStyledTable 与 PrintTable 相同，但使用给定的渲染器并允许逐单元格着色
func PrintStyledTable(w io.Writer, re *lipgloss.Renderer, headers []string, rows [][]string, width int, styler CellStyler) error {
	if width <= 0 {
		width = detectTerminalWidth(w)
		if width <= 0 {
			width = 80
		}
	}

	baseStyle := re.NewStyle().Padding(0, 1)
	headerStyle := baseStyle.Foreground(lipgloss.Color("252")).Bold(true)

	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(upper...).
		Width(width).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if styler != nil {
				return styler(row, col, baseStyle)
			}
			return baseStyle
		})

	_, err := fmt.Fprintln(w, tbl)
	return err
}

// TerminalWidth 返回 w 对应终端的宽度，无法探测时返回 0
func TerminalWidth(w io.Writer) int {
	return detectTerminalWidth(w)
}

// IsTerminal 判断 w 是否为交互式终端
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && xterm.IsTerminal(f.Fd())
}

// detectTerminalWidth 尝试从 writer 获取终端宽度，失败则返回 0
func detectTerminalWidth(w io.Writer) int {
	// 优先使用文件描述符
	if f, ok := w.(*os.File); ok {
		if cols, _, err := xterm.GetSize(f.Fd()); err == nil && cols > 0 {
			return cols
		}
	}
	// 尝试从环境变量读取（例如某些环境会设置 COLUMNS）
	if v := os.Getenv("COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
