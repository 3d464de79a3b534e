package contrast

import (
	"sort"
	"strings"
)

const (
	// ThemeLight 浅色主题
	ThemeLight = "light"
	// ThemeDark 深色主题
	ThemeDark = "dark"

	// DefaultLightSelector 浅色主题（默认块）的选择器
	DefaultLightSelector = ":root"
	// DefaultDarkSelector 深色主题覆盖块的选择器
	DefaultDarkSelector = `.dark, [data-theme="dark"]`
)

// ThemeVariableSet 单个主题下 token 名称到颜色的映射，名称不带前导 `--`
type ThemeVariableSet map[string]RGB

// Lookup 查找 token，允许传入带 `--` 前缀的名称
func (s ThemeVariableSet) Lookup(name string) (RGB, bool) {
	c, ok := s[strings.TrimPrefix(name, "--")]
	return c, ok
}

// Has 判断 token 是否存在
func (s ThemeVariableSet) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Names 返回按自然序排列的 token 名称
func (s ThemeVariableSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })
	return names
}

// Layer 将 override 叠加到 base 之上并返回新的集合，键冲突时 override 优先
func Layer(base, override ThemeVariableSet) ThemeVariableSet {
	out := make(ThemeVariableSet, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// Selectors 主题块的选择器约定
//
// Light 为默认块，Dark 为叠加在默认块之上的覆盖块
type Selectors struct {
	Light string `mapstructure:"light" json:"light" yaml:"light" toml:"light"`
	Dark  string `mapstructure:"dark" json:"dark" yaml:"dark" toml:"dark"`
}

// DefaultSelectors 返回默认选择器约定：`:root` 为浅色默认，`.dark, [data-theme="dark"]` 为深色覆盖
func DefaultSelectors() Selectors {
	return Selectors{Light: DefaultLightSelector, Dark: DefaultDarkSelector}
}

// Theme 一个已解析的主题
type Theme struct {
	Name       string
	Selector   string
	BlockFound bool
	Vars       ThemeVariableSet
}

// ParseThemes 从源文本中构建浅色与深色两个主题
//
// 深色主题 = 默认块 + 深色覆盖块。任一块缺失都不是错误，对应的 BlockFound 为 false。
// 深色覆盖块缺失时深色主题为空集合而不是默认块的副本，后续查找自然落入 MISSING，
// 浅色主题中的 FAIL 也不会被重复统计。
func ParseThemes(source string, sel Selectors) []Theme {
	lightBlock, lightFound := FindBlock(source, sel.Light)
	darkBlock, darkFound := FindBlock(source, sel.Dark)

	base := ExtractVariables(lightBlock)
	dark := make(ThemeVariableSet)
	if darkFound {
		dark = Layer(base, ExtractVariables(darkBlock))
	}

	return []Theme{
		{Name: ThemeLight, Selector: sel.Light, BlockFound: lightFound, Vars: base},
		{Name: ThemeDark, Selector: sel.Dark, BlockFound: darkFound, Vars: dark},
	}
}

// naturalLess 按自然序比较，使 chart-series-2 排在 chart-series-10 之前
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		da, db := isDigit(a[0]), isDigit(b[0])
		switch {
		case da && db:
			na, ra := splitDigits(a)
			nb, rb := splitDigits(b)
			ta, tb := strings.TrimLeft(na, "0"), strings.TrimLeft(nb, "0")
			if len(ta) != len(tb) {
				return len(ta) < len(tb)
			}
			if ta != tb {
				return ta < tb
			}
			a, b = ra, rb
		case a[0] != b[0]:
			return a[0] < b[0]
		default:
			a, b = a[1:], b[1:]
		}
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func splitDigits(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}
