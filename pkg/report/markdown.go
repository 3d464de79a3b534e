package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yeisme/wcagcheck/pkg/contrast"
)

// Markdown 生成 GitHub 风格的 markdown 报告，可直接贴到 PR 评论中
func Markdown(r *contrast.Report) string {
	var b strings.Builder
	b.WriteString("# WCAG contrast audit\n\n")
	if r.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", r.Source)
	}

	for _, tr := range r.Themes {
		fmt.Fprintf(&b, "## %s theme (`%s`)\n\n", themeTitle(tr.Theme), tr.Selector)
		if !tr.BlockFound {
			fmt.Fprintf(&b, "> No block found for selector `%s`.\n\n", tr.Selector)
		}
		if len(tr.Tokens) > 0 {
			fmt.Fprintf(&b, "### Token sweep against `%s`\n\n", formatToken(tr.Background))
			writeTable(&b, tr.Tokens, false)
		}
		if len(tr.Pairs) > 0 {
			b.WriteString("### Semantic pairs\n\n")
			writeTable(&b, tr.Pairs, true)
		}
		for _, res := range slices.Concat(tr.Tokens, tr.Pairs) {
			if res.Status == contrast.StatusMissing {
				fmt.Fprintf(&b, "- %s\n", missingLine(res))
			}
		}
		if tr.TokenCounts.Missing+tr.PairCounts.Missing > 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Theme | Scope | Fail | Warn | Missing |\n|---|---|---:|---:|---:|\n")
	for _, tr := range r.Themes {
		writeCounts(&b, themeTitle(tr.Theme), "tokens", tr.TokenCounts)
		writeCounts(&b, themeTitle(tr.Theme), "pairs", tr.PairCounts)
	}
	writeCounts(&b, "**Total**", "", r.Totals)

	verdict := "PASS"
	if r.Failed() {
		verdict = "FAIL"
	}
	fmt.Fprintf(&b, "\n**Result: %s**\n", verdict)
	return b.String()
}

func writeTable(b *strings.Builder, results []contrast.AuditResult, pairs bool) {
	if pairs {
		b.WriteString("| Name | Foreground | Background | Ratio | Min | Status |\n|---|---|---|---:|---:|---|\n")
	} else {
		b.WriteString("| Name | Foreground | Background | Ratio | Status |\n|---|---|---|---:|---|\n")
	}
	for _, res := range results {
		fmt.Fprintf(b, "| %s | %s | %s | %s |", res.Name, mdToken(res.Foreground, res.ForegroundRGB), mdToken(res.Background, res.BackgroundRGB), formatRatio(res))
		if pairs {
			fmt.Fprintf(b, " %.1f |", res.Threshold)
		}
		fmt.Fprintf(b, " %s |\n", mdStatus(res.Status))
	}
	b.WriteString("\n")
}

func writeCounts(b *strings.Builder, theme, scope string, c contrast.Counts) {
	fmt.Fprintf(b, "| %s | %s | %d | %d | %d |\n", theme, scope, c.Fail, c.Warn, c.Missing)
}

func mdToken(name string, rgb *contrast.RGB) string {
	if rgb == nil {
		return "`" + formatToken(name) + "`"
	}
	return fmt.Sprintf("`%s` %s", formatToken(name), rgb.Hex())
}

func mdStatus(s contrast.Status) string {
	switch s {
	case contrast.StatusFail:
		return "**FAIL**"
	default:
		return string(s)
	}
}
