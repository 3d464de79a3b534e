package contrast

import (
	"strings"

	"github.com/samber/lo"
)

// Status 单条审计结果的分级
type Status string

const (
	// StatusPass 语义配对达到最低对比度
	StatusPass Status = "PASS"
	// StatusOK token 扫描中对比度 >= 4.5
	StatusOK Status = "OK"
	// StatusWarn token 扫描中 3 <= 对比度 < 4.5
	StatusWarn Status = "WARN"
	// StatusFail 未达到阈值
	StatusFail Status = "FAIL"
	// StatusMissing 至少一个 token 不存在，与 FAIL 分开统计
	StatusMissing Status = "MISSING"
)

const (
	// MinRatioNormalText WCAG AA 普通文本最低对比度
	MinRatioNormalText = 4.5
	// MinRatioLargeText WCAG AA 大号文本及非文本元素最低对比度
	MinRatioLargeText = 3.0

	// DefaultBackground token 扫描使用的背景 token
	DefaultBackground = "color-background"
	// DefaultTextSuffix 深色主题下优先使用的文本变体后缀
	DefaultTextSuffix = "-text"
)

// ContrastPair 一组语义化的前景/背景 token 配对
// MinRatio 未设置（<=0）时按 MinRatioNormalText 判定
type ContrastPair struct {
	Name       string  `mapstructure:"name" json:"name" yaml:"name" toml:"name"`
	Foreground string  `mapstructure:"foreground" json:"foreground" yaml:"foreground" toml:"foreground"`
	Background string  `mapstructure:"background" json:"background" yaml:"background" toml:"background"`
	MinRatio   float64 `mapstructure:"min_ratio" json:"min_ratio" yaml:"min_ratio" toml:"min_ratio"`
}

// Threshold 返回配对实际使用的最低对比度
func (p ContrastPair) Threshold() float64 {
	if p.MinRatio <= 0 {
		return MinRatioNormalText
	}
	return p.MinRatio
}

// DefaultPairs 内置的语义配对
func DefaultPairs() []ContrastPair {
	return []ContrastPair{
		{Name: "Body text", Foreground: "color-foreground", Background: "color-background", MinRatio: MinRatioNormalText},
		{Name: "Muted text", Foreground: "color-muted-foreground", Background: "color-background", MinRatio: MinRatioNormalText},
		{Name: "Card text", Foreground: "color-card-foreground", Background: "color-card", MinRatio: MinRatioNormalText},
		{Name: "Primary on background", Foreground: "color-primary", Background: "color-background", MinRatio: MinRatioNormalText},
		{Name: "Primary button text", Foreground: "color-primary-foreground", Background: "color-primary", MinRatio: MinRatioNormalText},
		{Name: "Secondary button text", Foreground: "color-secondary-foreground", Background: "color-secondary", MinRatio: MinRatioNormalText},
		{Name: "Destructive on background", Foreground: "color-destructive", Background: "color-background", MinRatio: MinRatioNormalText},
		{Name: "Success on background", Foreground: "color-success", Background: "color-background", MinRatio: MinRatioLargeText},
		{Name: "Warning on background", Foreground: "color-warning", Background: "color-background", MinRatio: MinRatioLargeText},
		{Name: "Border on background", Foreground: "color-border", Background: "color-background", MinRatio: MinRatioLargeText},
		{Name: "Focus ring", Foreground: "color-ring", Background: "color-background", MinRatio: MinRatioLargeText},
	}
}

// DefaultSweepPrefixes 参与三级扫描的 token 前缀（图表色与疼痛等级色）
func DefaultSweepPrefixes() []string {
	return []string{"chart-", "pain-"}
}

// AuditResult 单个配对或 token 的审计结果
type AuditResult struct {
	Name          string   `json:"name" yaml:"name" toml:"name"`
	Foreground    string   `json:"foreground" yaml:"foreground" toml:"foreground"`
	Background    string   `json:"background" yaml:"background" toml:"background"`
	ForegroundRGB *RGB     `json:"foreground_rgb,omitempty" yaml:"foreground_rgb,omitempty" toml:"foreground_rgb,omitempty"`
	BackgroundRGB *RGB     `json:"background_rgb,omitempty" yaml:"background_rgb,omitempty" toml:"background_rgb,omitempty"`
	Ratio         float64  `json:"ratio" yaml:"ratio" toml:"ratio"`
	Threshold     float64  `json:"threshold" yaml:"threshold" toml:"threshold"`
	Status        Status   `json:"status" yaml:"status" toml:"status"`
	Missing       []string `json:"missing,omitempty" yaml:"missing,omitempty" toml:"missing,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty" toml:"suggestions,omitempty"`
}

// ResolveForegroundToken 解析前景 token 名称
//
// 深色主题下若存在 `<fg><suffix>`（默认 `-text`），优先使用该文本变体；
// 其余情况原样返回 fg。
func ResolveForegroundToken(theme, fg string, vars ThemeVariableSet, suffix string) string {
	if suffix == "" {
		suffix = DefaultTextSuffix
	}
	if theme != ThemeDark {
		return fg
	}
	if variant := strings.TrimPrefix(fg, "--") + suffix; vars.Has(variant) {
		return variant
	}
	return fg
}

// ClassifyPair 语义配对的两级判定
func ClassifyPair(ratio, minRatio float64) Status {
	if ratio >= minRatio {
		return StatusPass
	}
	return StatusFail
}

// ClassifySweep token 扫描的三级判定
func ClassifySweep(ratio float64) Status {
	switch {
	case ratio < MinRatioLargeText:
		return StatusFail
	case ratio < MinRatioNormalText:
		return StatusWarn
	default:
		return StatusOK
	}
}

// AuditPairs 对给定主题逐个审计语义配对
//
// 前景 token 先经 ResolveForegroundToken 解析；任一 token 缺失时记为 MISSING
// 并列出缺失的名称与近似候选，不会被丢弃，也不计入 FAIL。
func AuditPairs(theme string, vars ThemeVariableSet, pairs []ContrastPair, suffix string) []AuditResult {
	results := make([]AuditResult, 0, len(pairs))
	for _, p := range pairs {
		fgName := ResolveForegroundToken(theme, p.Foreground, vars, suffix)
		r := AuditResult{
			Name:       p.Name,
			Foreground: fgName,
			Background: p.Background,
			Threshold:  p.Threshold(),
		}
		fg, okFG := vars.Lookup(fgName)
		bg, okBG := vars.Lookup(p.Background)
		if !okFG || !okBG {
			r.Status = StatusMissing
			r.Missing = missingNames(fgName, okFG, p.Background, okBG)
			r.Suggestions = Suggest(vars, r.Missing...)
			results = append(results, r)
			continue
		}
		r.ForegroundRGB, r.BackgroundRGB = &fg, &bg
		r.Ratio = RatioRGB(fg, bg)
		r.Status = ClassifyPair(r.Ratio, r.Threshold)
		results = append(results, r)
	}
	return results
}

// SweepTokens 将名称以 prefixes 之一开头的 token 与背景 token 逐一比较并三级分级
// 背景缺失时，所有被扫描的 token 记为 MISSING
func SweepTokens(vars ThemeVariableSet, background string, prefixes []string) []AuditResult {
	names := lo.Filter(vars.Names(), func(name string, _ int) bool {
		return name != background && lo.SomeBy(prefixes, func(p string) bool {
			return strings.HasPrefix(name, p)
		})
	})

	bg, okBG := vars.Lookup(background)
	results := make([]AuditResult, 0, len(names))
	for _, name := range names {
		fg := vars[name]
		r := AuditResult{
			Name:          name,
			Foreground:    name,
			Background:    background,
			ForegroundRGB: &fg,
			Threshold:     MinRatioNormalText,
		}
		if !okBG {
			r.Status = StatusMissing
			r.Missing = []string{background}
			r.Suggestions = Suggest(vars, background)
			results = append(results, r)
			continue
		}
		bgCopy := bg
		r.BackgroundRGB = &bgCopy
		r.Ratio = RatioRGB(fg, bg)
		r.Status = ClassifySweep(r.Ratio)
		results = append(results, r)
	}
	return results
}

func missingNames(fg string, okFG bool, bg string, okBG bool) []string {
	var out []string
	if !okFG {
		out = append(out, fg)
	}
	if !okBG && (okFG || bg != fg) {
		out = append(out, bg)
	}
	return out
}
