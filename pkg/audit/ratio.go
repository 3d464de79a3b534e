package audit

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/contrast"
	"github.com/yeisme/wcagcheck/pkg/style"
)

// RatioResult 两个任意颜色之间的对比度及各级判定
type RatioResult struct {
	Foreground string          `json:"foreground" yaml:"foreground" toml:"foreground"`
	Background string          `json:"background" yaml:"background" toml:"background"`
	Ratio      float64         `json:"ratio" yaml:"ratio" toml:"ratio"`
	NormalText contrast.Status `json:"normal_text" yaml:"normal_text" toml:"normal_text"`
	LargeText  contrast.Status `json:"large_text" yaml:"large_text" toml:"large_text"`
	Sweep      contrast.Status `json:"sweep" yaml:"sweep" toml:"sweep"`
}

// ComputeRatio 解析两个颜色（#hex 或 "r g b"）并计算对比度
func ComputeRatio(fg, bg string) (RatioResult, error) {
	fgRGB, err := contrast.ParseColor(fg)
	if err != nil {
		return RatioResult{}, fmt.Errorf("foreground: %w", err)
	}
	bgRGB, err := contrast.ParseColor(bg)
	if err != nil {
		return RatioResult{}, fmt.Errorf("background: %w", err)
	}
	ratio := contrast.RatioRGB(fgRGB, bgRGB)
	return RatioResult{
		Foreground: fgRGB.Hex(),
		Background: bgRGB.Hex(),
		Ratio:      ratio,
		NormalText: contrast.ClassifyPair(ratio, contrast.MinRatioNormalText),
		LargeText:  contrast.ClassifyPair(ratio, contrast.MinRatioLargeText),
		Sweep:      contrast.ClassifySweep(ratio),
	}, nil
}

// WriteRatio 输出对比度结果；text 格式为一行结论加判定表
func WriteRatio(w io.Writer, res RatioResult, format configs.OutputFormat, color bool) error {
	if format != configs.FormatText {
		return configs.OutputData(res, format, w, color)
	}

	re := style.NewRenderer(w, color)
	sample := re.NewStyle().
		Foreground(lipgloss.Color(res.Foreground)).
		Background(lipgloss.Color(res.Background)).
		Render(" Aa ")
	fmt.Fprintf(w, "%s %s on %s: %.2f:1\n", sample, res.Foreground, res.Background, res.Ratio)

	rows := [][]string{
		{"normal text (AA)", fmt.Sprintf("%.1f", contrast.MinRatioNormalText), string(res.NormalText)},
		{"large text / UI (AA)", fmt.Sprintf("%.1f", contrast.MinRatioLargeText), string(res.LargeText)},
		{"token sweep", "3.0 / 4.5", string(res.Sweep)},
	}
	return style.PrintStyledTable(w, re, []string{"check", "min", "status"}, rows, 0,
		func(row, col int, base lipgloss.Style) lipgloss.Style {
			if col == 2 {
				return style.StatusStyle(re, rows[row][2]).Padding(0, 1)
			}
			return base
		})
}
