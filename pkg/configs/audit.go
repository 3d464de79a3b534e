package configs

import (
	"github.com/spf13/viper"
	"github.com/yeisme/wcagcheck/pkg/contrast"
)

// AuditConfig 对比度审计配置
type AuditConfig struct {
	Source        string                  `mapstructure:"source" jsonschema:"description=Path of the stylesheet holding the color tokens"`
	LightSelector string                  `mapstructure:"light_selector" jsonschema:"description=Selector of the default (light) token block"`
	DarkSelector  string                  `mapstructure:"dark_selector" jsonschema:"description=Selector of the dark override block layered on the default block"`
	Background    string                  `mapstructure:"background" jsonschema:"description=Background token the sweep compares against"`
	TextSuffix    string                  `mapstructure:"text_suffix" jsonschema:"description=Suffix of the dark-theme text variant preferred for foregrounds"`
	SweepPrefixes []string                `mapstructure:"sweep_prefixes" jsonschema:"description=Token name prefixes included in the three-tier sweep"`
	Pairs         []contrast.ContrastPair `mapstructure:"pairs" jsonschema:"description=Semantic foreground/background pairs with their minimum ratio"`
	Format        string                  `mapstructure:"format" jsonschema:"enum=text,enum=json,enum=yaml,enum=toml,enum=markdown"`
}

// Options 转换为审计参数
func (a AuditConfig) Options() contrast.Options {
	return contrast.Options{
		Selectors: contrast.Selectors{
			Light: a.LightSelector,
			Dark:  a.DarkSelector,
		},
		Background:    a.Background,
		TextSuffix:    a.TextSuffix,
		SweepPrefixes: a.SweepPrefixes,
		Pairs:         a.Pairs,
	}
}

func setAuditConfigDefaults(v *viper.Viper) {
	def := contrast.DefaultOptions()

	v.SetDefault("audit.source", "src/index.css")
	v.SetDefault("audit.light_selector", def.Selectors.Light)
	v.SetDefault("audit.dark_selector", def.Selectors.Dark)
	v.SetDefault("audit.background", def.Background)
	v.SetDefault("audit.text_suffix", def.TextSuffix)
	v.SetDefault("audit.sweep_prefixes", def.SweepPrefixes)
	v.SetDefault("audit.format", string(FormatText))

	// 以 map 形式写入默认值，便于 config init 序列化为 yaml/json/toml
	pairs := make([]map[string]any, 0, len(def.Pairs))
	for _, p := range def.Pairs {
		pairs = append(pairs, map[string]any{
			"name":       p.Name,
			"foreground": p.Foreground,
			"background": p.Background,
			"min_ratio":  p.MinRatio,
		})
	}
	v.SetDefault("audit.pairs", pairs)
}
