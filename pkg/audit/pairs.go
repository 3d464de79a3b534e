package audit

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/contrast"
	"github.com/yeisme/wcagcheck/pkg/style"
)

// PairsListing 已配置的语义配对与扫描前缀
type PairsListing struct {
	Background    string                  `json:"background" yaml:"background" toml:"background"`
	SweepPrefixes []string                `json:"sweep_prefixes" yaml:"sweep_prefixes" toml:"sweep_prefixes"`
	Pairs         []contrast.ContrastPair `json:"pairs" yaml:"pairs" toml:"pairs"`
}

// WritePairs 输出配对列表
func WritePairs(w io.Writer, listing PairsListing, format configs.OutputFormat, color bool) error {
	if format != configs.FormatText {
		return configs.OutputData(listing, format, w, color)
	}

	re := style.NewRenderer(w, color)
	rows := lo.Map(listing.Pairs, func(p contrast.ContrastPair, _ int) []string {
		return []string{p.Name, "--" + p.Foreground, "--" + p.Background, fmt.Sprintf("%.1f", p.Threshold())}
	})
	if err := style.PrintStyledTable(w, re, []string{"name", "foreground", "background", "min"}, rows, 0, nil); err != nil {
		return err
	}

	fmt.Fprintf(w, "Token sweep against --%s (<3.0 FAIL, <4.5 WARN, else OK):\n", listing.Background)
	items := lo.Map(listing.SweepPrefixes, func(p string, _ int) any { return "--" + p + "*" })
	return style.PrintList(w, re, items...)
}
