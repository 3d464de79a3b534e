package configs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/yeisme/wcagcheck/pkg/contrast"
)

// maxRatio WCAG 对比度的理论上限
const maxRatio = 21.0

// Validate 检查已加载配置中的语义问题，返回人类可读的问题列表，无问题时返回 nil
func Validate(cfg *Config) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if !slices.Contains([]string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}, strings.ToLower(cfg.Log.Level)) {
		add("log.level: unknown level %q", cfg.Log.Level)
	}
	if !slices.Contains([]string{"console", "file", "both"}, strings.ToLower(cfg.Log.Mode)) {
		add("log.mode: must be console, file or both, got %q", cfg.Log.Mode)
	}
	if cfg.App.Hotload.Debounce < 0 {
		add("app.hotload.debounce: must not be negative")
	}

	a := cfg.Audit
	if strings.TrimSpace(a.Source) == "" {
		add("audit.source: must not be empty")
	}
	if a.Format != "" {
		if _, err := ParseOutputFormat(a.Format); err != nil {
			add("audit.format: %v", err)
		}
	}
	if lo.Contains(a.SweepPrefixes, "") {
		add("audit.sweep_prefixes: empty prefix would sweep every token")
	}

	for i, p := range a.Pairs {
		where := fmt.Sprintf("audit.pairs[%d]", i)
		if p.Name == "" {
			add("%s: name is required", where)
		}
		if p.Foreground == "" || p.Background == "" {
			add("%s (%s): foreground and background are required", where, p.Name)
		}
		// 0 表示未设置，按 AA 普通文本阈值判定
		if p.MinRatio != 0 && (p.MinRatio < 1 || p.MinRatio > maxRatio) {
			add("%s (%s): min_ratio %.2f is outside 1..21", where, p.Name, p.MinRatio)
		}
	}
	names := lo.Map(a.Pairs, func(p contrast.ContrastPair, _ int) string { return p.Name })
	for _, dup := range lo.FindDuplicates(lo.Compact(names)) {
		add("audit.pairs: duplicate pair name %q", dup)
	}
	return problems
}
