package report

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
	"github.com/yeisme/wcagcheck/pkg/contrast"
	"github.com/yeisme/wcagcheck/pkg/style"
)

func renderText(w io.Writer, r *contrast.Report, opts RenderOptions) error {
	re := style.NewRenderer(w, opts.Color)
	title := re.NewStyle().Bold(true).Foreground(style.ColorAccentPrimary)
	muted := re.NewStyle().Foreground(style.ColorMuted)

	if r.Source != "" {
		fmt.Fprintln(w, muted.Render("Source: "+r.Source))
	}

	for _, tr := range r.Themes {
		fmt.Fprintln(w)
		fmt.Fprintln(w, title.Render(fmt.Sprintf("%s theme (%s), %d tokens", themeTitle(tr.Theme), tr.Selector, tr.TokenCount)))
		if !tr.BlockFound {
			fmt.Fprintln(w, muted.Render("  no block found for selector "+tr.Selector))
		}

		if len(tr.Tokens) > 0 {
			fmt.Fprintf(w, "Token sweep against %s\n", formatToken(tr.Background))
			if err := printResults(w, re, tr.Tokens, false, opts); err != nil {
				return err
			}
		}
		if len(tr.Pairs) > 0 {
			fmt.Fprintln(w, "Semantic pairs")
			if err := printResults(w, re, tr.Pairs, true, opts); err != nil {
				return err
			}
		}

		missing := lo.Filter(slices.Concat(tr.Tokens, tr.Pairs), func(res contrast.AuditResult, _ int) bool {
			return res.Status == contrast.StatusMissing
		})
		if len(missing) > 0 {
			items := lo.Map(missing, func(res contrast.AuditResult, _ int) any { return missingLine(res) })
			if err := style.PrintList(w, re, items...); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(w)
	return printSummary(w, re, r)
}

// printResults 输出一组结果的表格；pairs 为 true 时额外显示最低对比度列
func printResults(w io.Writer, re *lipgloss.Renderer, results []contrast.AuditResult, pairs bool, opts RenderOptions) error {
	headers := []string{"name", "foreground", "fg rgb", "background", "bg rgb", "ratio"}
	if pairs {
		headers = append(headers, "min")
	}
	headers = append(headers, "status")
	if opts.Color {
		headers = append([]string{""}, headers...)
	}
	statusCol := len(headers) - 1

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		row := []string{
			res.Name,
			formatToken(res.Foreground), formatRGB(res.ForegroundRGB),
			formatToken(res.Background), formatRGB(res.BackgroundRGB),
			formatRatio(res),
		}
		if pairs {
			row = append(row, strconv.FormatFloat(res.Threshold, 'f', 1, 64))
		}
		row = append(row, string(res.Status))
		if opts.Color {
			row = append([]string{swatch(re, res)}, row...)
		}
		rows = append(rows, row)
	}

	return style.PrintStyledTable(w, re, headers, rows, opts.Width, func(row, col int, base lipgloss.Style) lipgloss.Style {
		if col == statusCol && row < len(results) {
			return style.StatusStyle(re, string(results[row].Status)).Padding(0, 1)
		}
		return base
	})
}

// swatch 前景色叠加在背景色上的预览
func swatch(re *lipgloss.Renderer, res contrast.AuditResult) string {
	if res.ForegroundRGB == nil || res.BackgroundRGB == nil {
		return style.Swatch(re, "")
	}
	return re.NewStyle().
		Foreground(lipgloss.Color(res.ForegroundRGB.Hex())).
		Background(lipgloss.Color(res.BackgroundRGB.Hex())).
		Render("Aa")
}

// printSummary 每个主题分别统计扫描与配对中的 FAIL/WARN/MISSING
func printSummary(w io.Writer, re *lipgloss.Renderer, r *contrast.Report) error {
	bold := re.NewStyle().Bold(true)
	fmt.Fprintln(w, bold.Render("Summary"))

	const labelWidth = 18
	line := func(label string, c contrast.Counts) {
		fmt.Fprintf(w, "  %s %s  %s  %s\n",
			runewidth.FillRight(label, labelWidth),
			style.StatusStyle(re, string(contrast.StatusFail)).Render(fmt.Sprintf("fail %d", c.Fail)),
			style.StatusStyle(re, string(contrast.StatusWarn)).Render(fmt.Sprintf("warn %d", c.Warn)),
			style.StatusStyle(re, string(contrast.StatusMissing)).Render(fmt.Sprintf("missing %d", c.Missing)),
		)
	}
	for _, tr := range r.Themes {
		line(themeTitle(tr.Theme)+" tokens", tr.TokenCounts)
		line(themeTitle(tr.Theme)+" pairs", tr.PairCounts)
	}
	line("Total", r.Totals)

	verdict := "PASS"
	if r.Failed() {
		verdict = "FAIL"
	}
	_, err := fmt.Fprintln(w, style.StatusStyle(re, verdict).Render(verdict))
	return err
}
