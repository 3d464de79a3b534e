package audit

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/contrast"
	"github.com/yeisme/wcagcheck/pkg/style"
)

// ErrNoTokens 源文件中没有解析到任何 token
var ErrNoTokens = errors.New("no color tokens found")

// TokenRow 主题中的一个 token 及其相对背景的对比度
type TokenRow struct {
	Theme      string          `json:"theme" yaml:"theme" toml:"theme"`
	Name       string          `json:"name" yaml:"name" toml:"name"`
	Value      contrast.RGB    `json:"value" yaml:"value" toml:"value"`
	Hex        string          `json:"hex" yaml:"hex" toml:"hex"`
	Background string          `json:"background" yaml:"background" toml:"background"`
	Ratio      float64         `json:"ratio,omitempty" yaml:"ratio,omitempty" toml:"ratio,omitempty"`
	Status     contrast.Status `json:"status" yaml:"status" toml:"status"`
}

// CollectTokens 解析两个主题的全部 token，并按扫描的三级规则与背景 token 比较
// 背景缺失的主题中所有 token 记为 MISSING
func CollectTokens(source string, opts contrast.Options) []TokenRow {
	def := contrast.DefaultOptions()
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.Selectors.Light == "" {
		opts.Selectors.Light = def.Selectors.Light
	}
	if opts.Selectors.Dark == "" {
		opts.Selectors.Dark = def.Selectors.Dark
	}

	var rows []TokenRow
	for _, th := range contrast.ParseThemes(source, opts.Selectors) {
		bg, okBG := th.Vars.Lookup(opts.Background)
		for _, name := range th.Vars.Names() {
			c := th.Vars[name]
			row := TokenRow{
				Theme:      th.Name,
				Name:       name,
				Value:      c,
				Hex:        c.Hex(),
				Background: opts.Background,
				Status:     contrast.StatusMissing,
			}
			if okBG {
				row.Ratio = contrast.RatioRGB(c, bg)
				row.Status = contrast.ClassifySweep(row.Ratio)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteTokens 输出 token 列表
func WriteTokens(w io.Writer, rows []TokenRow, format configs.OutputFormat, color bool) error {
	if format != configs.FormatText {
		return configs.OutputData(map[string][]TokenRow{"tokens": rows}, format, w, color)
	}
	if len(rows) == 0 {
		return ErrNoTokens
	}

	re := style.NewRenderer(w, color)
	headers := []string{"theme", "name", "value", "hex", "ratio", "status"}
	if color {
		headers = append([]string{""}, headers...)
	}
	statusCol := len(headers) - 1

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		ratio := "-"
		if r.Status != contrast.StatusMissing {
			ratio = fmt.Sprintf("%.2f:1", r.Ratio)
		}
		cells := []string{r.Theme, "--" + r.Name, r.Value.String(), r.Hex, ratio, string(r.Status)}
		if color {
			cells = append([]string{style.Swatch(re, r.Hex)}, cells...)
		}
		table = append(table, cells)
	}
	return style.PrintStyledTable(w, re, headers, table, 0, func(row, col int, base lipgloss.Style) lipgloss.Style {
		if col == statusCol {
			return style.StatusStyle(re, string(rows[row].Status)).Padding(0, 1)
		}
		return base
	})
}

// PickToken 使用 fuzzyfinder 在 token 中交互选择一项，预览窗口显示详情
func PickToken(rows []TokenRow) (TokenRow, error) {
	if len(rows) == 0 {
		return TokenRow{}, ErrNoTokens
	}
	idx, err := fuzzyfinder.Find(rows,
		func(i int) string {
			return fmt.Sprintf("%s  --%s", rows[i].Theme, rows[i].Name)
		},
		fuzzyfinder.WithPromptString("token> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return describeToken(rows[i])
		}),
	)
	if err != nil {
		return TokenRow{}, err
	}
	if idx < 0 || idx >= len(rows) {
		return TokenRow{}, fmt.Errorf("invalid selection")
	}
	return rows[idx], nil
}

// describeToken 单个 token 的多行描述
func describeToken(r TokenRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--%s (%s theme)\n", r.Name, r.Theme)
	fmt.Fprintf(&b, "value:      %s\n", r.Value)
	fmt.Fprintf(&b, "hex:        %s\n", r.Hex)
	fmt.Fprintf(&b, "luminance:  %.4f\n", contrast.RelativeLuminance(r.Value))
	if r.Status == contrast.StatusMissing {
		fmt.Fprintf(&b, "background: --%s is not defined\n", r.Background)
	} else {
		fmt.Fprintf(&b, "ratio:      %.2f:1 against --%s\n", r.Ratio, r.Background)
	}
	fmt.Fprintf(&b, "status:     %s\n", r.Status)
	return b.String()
}

// WriteTokenDetail 输出 PickToken 选中的 token
func WriteTokenDetail(w io.Writer, r TokenRow, format configs.OutputFormat, color bool) error {
	if format != configs.FormatText {
		return configs.OutputData(r, format, w, color)
	}
	re := style.NewRenderer(w, color)
	fmt.Fprintf(w, "%s %s", style.Swatch(re, r.Hex), describeToken(r))
	return nil
}
