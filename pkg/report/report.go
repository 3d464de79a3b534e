// Package report 将审计报告渲染为终端表格、结构化数据或 markdown
package report

import (
	"fmt"
	"io"

	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/contrast"
	"github.com/yeisme/wcagcheck/pkg/style"
)

// RenderOptions 渲染参数
type RenderOptions struct {
	Format configs.OutputFormat
	// Color 为 false 时不输出任何 ANSI 样式
	Color bool
	// Width 表格与 markdown 的宽度，<=0 时按终端探测
	Width int
}

// Render 按 opts.Format 将报告写入 w
func Render(w io.Writer, r *contrast.Report, opts RenderOptions) error {
	if r == nil {
		return fmt.Errorf("nil report")
	}
	switch opts.Format {
	case "", configs.FormatText:
		return renderText(w, r, opts)
	case configs.FormatMarkdown:
		md := Markdown(r)
		if opts.Color {
			return style.RenderMarkdown(w, md, opts.Width, "")
		}
		_, err := io.WriteString(w, md)
		return err
	default:
		return configs.OutputData(r, opts.Format, w, opts.Color)
	}
}

// themeTitle 主题的显示名称
func themeTitle(name string) string {
	switch name {
	case contrast.ThemeLight:
		return "Light"
	case contrast.ThemeDark:
		return "Dark"
	default:
		return name
	}
}

// formatRatio 格式化对比度，缺失时返回 "-"
func formatRatio(res contrast.AuditResult) string {
	if res.Status == contrast.StatusMissing {
		return "-"
	}
	return fmt.Sprintf("%.2f:1", res.Ratio)
}

// formatRGB 以源文件中的写法展示颜色，缺失时返回 "-"
func formatRGB(c *contrast.RGB) string {
	if c == nil {
		return "-"
	}
	return c.String()
}

// formatToken 以 CSS 变量形式展示 token 名
func formatToken(name string) string {
	if name == "" {
		return "-"
	}
	return "--" + name
}

// missingLine 描述一条 MISSING 结果及其候选 token
func missingLine(res contrast.AuditResult) string {
	names := make([]string, 0, len(res.Missing))
	for _, m := range res.Missing {
		names = append(names, formatToken(m))
	}
	line := fmt.Sprintf("%s: missing %v", res.Name, names)
	if len(res.Suggestions) > 0 {
		sugg := make([]string, 0, len(res.Suggestions))
		for _, s := range res.Suggestions {
			sugg = append(sugg, formatToken(s))
		}
		line += fmt.Sprintf(", did you mean %v?", sugg)
	}
	return line
}
