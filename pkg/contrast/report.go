package contrast

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// ExitCodeFailed 存在 FAIL 时进程的退出码
const ExitCodeFailed = 2

// Options 一次审计的参数
type Options struct {
	Selectors     Selectors
	Background    string
	TextSuffix    string
	SweepPrefixes []string
	Pairs         []ContrastPair
}

// DefaultOptions 返回内置默认参数
func DefaultOptions() Options {
	return Options{
		Selectors:     DefaultSelectors(),
		Background:    DefaultBackground,
		TextSuffix:    DefaultTextSuffix,
		SweepPrefixes: DefaultSweepPrefixes(),
		Pairs:         DefaultPairs(),
	}
}

// Counts 按分级统计的数量
type Counts struct {
	Pass    int `json:"pass" yaml:"pass" toml:"pass"`
	OK      int `json:"ok" yaml:"ok" toml:"ok"`
	Warn    int `json:"warn" yaml:"warn" toml:"warn"`
	Fail    int `json:"fail" yaml:"fail" toml:"fail"`
	Missing int `json:"missing" yaml:"missing" toml:"missing"`
}

// Add 累加另一个统计
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Pass:    c.Pass + o.Pass,
		OK:      c.OK + o.OK,
		Warn:    c.Warn + o.Warn,
		Fail:    c.Fail + o.Fail,
		Missing: c.Missing + o.Missing,
	}
}

// Tally 统计一组结果
func Tally(results []AuditResult) Counts {
	count := func(s Status) int {
		return lo.CountBy(results, func(r AuditResult) bool { return r.Status == s })
	}
	return Counts{
		Pass:    count(StatusPass),
		OK:      count(StatusOK),
		Warn:    count(StatusWarn),
		Fail:    count(StatusFail),
		Missing: count(StatusMissing),
	}
}

// ThemeReport 单个主题的审计结果
type ThemeReport struct {
	Theme       string        `json:"theme" yaml:"theme" toml:"theme"`
	Selector    string        `json:"selector" yaml:"selector" toml:"selector"`
	BlockFound  bool          `json:"block_found" yaml:"block_found" toml:"block_found"`
	TokenCount  int           `json:"token_count" yaml:"token_count" toml:"token_count"`
	Background  string        `json:"background" yaml:"background" toml:"background"`
	Tokens      []AuditResult `json:"tokens" yaml:"tokens" toml:"tokens"`
	Pairs       []AuditResult `json:"pairs" yaml:"pairs" toml:"pairs"`
	TokenCounts Counts        `json:"token_counts" yaml:"token_counts" toml:"token_counts"`
	PairCounts  Counts        `json:"pair_counts" yaml:"pair_counts" toml:"pair_counts"`
}

// Report 完整的审计报告
type Report struct {
	Source      string        `json:"source" yaml:"source" toml:"source"`
	Themes      []ThemeReport `json:"themes" yaml:"themes" toml:"themes"`
	Totals      Counts        `json:"totals" yaml:"totals" toml:"totals"`
	Diagnostics []string      `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty" toml:"diagnostics,omitempty"`
}

// Failed 当且仅当任一主题、任一扫描中存在 FAIL 时返回 true
// WARN 与 MISSING 不会导致失败
func (r *Report) Failed() bool {
	return r.Totals.Fail > 0
}

// ExitCode 返回进程退出码：无 FAIL 为 0，否则为 ExitCodeFailed
func (r *Report) ExitCode() int {
	if r.Failed() {
		return ExitCodeFailed
	}
	return 0
}

// Audit 对源文本执行完整审计：两个主题 x（token 扫描 + 语义配对）
func Audit(source string, opts Options) *Report {
	opts = withDefaults(opts)
	rep := &Report{}

	for _, th := range ParseThemes(source, opts.Selectors) {
		tr := ThemeReport{
			Theme:      th.Name,
			Selector:   th.Selector,
			BlockFound: th.BlockFound,
			TokenCount: len(th.Vars),
			Background: opts.Background,
			Tokens:     SweepTokens(th.Vars, opts.Background, opts.SweepPrefixes),
			Pairs:      AuditPairs(th.Name, th.Vars, opts.Pairs, opts.TextSuffix),
		}
		tr.TokenCounts = Tally(tr.Tokens)
		tr.PairCounts = Tally(tr.Pairs)
		rep.Totals = rep.Totals.Add(tr.TokenCounts).Add(tr.PairCounts)

		if !th.BlockFound {
			rep.Diagnostics = append(rep.Diagnostics,
				fmt.Sprintf("%s theme: no block found for selector %q", th.Name, th.Selector))
		}
		for _, res := range slices.Concat(tr.Tokens, tr.Pairs) {
			if res.Status == StatusMissing {
				rep.Diagnostics = append(rep.Diagnostics,
					fmt.Sprintf("%s theme: %s: missing variable(s) %v", th.Name, res.Name, res.Missing))
			}
		}
		rep.Themes = append(rep.Themes, tr)
	}
	return rep
}

// AuditFile 读取 path 并执行审计；读取失败是唯一会返回错误的情况
func AuditFile(fs afero.Fs, path string, opts Options) (*Report, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token source %s: %w", path, err)
	}
	rep := Audit(string(data), opts)
	rep.Source = path
	return rep, nil
}

// withDefaults 为未设置的字段填充默认值
func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Selectors.Light == "" {
		opts.Selectors.Light = def.Selectors.Light
	}
	if opts.Selectors.Dark == "" {
		opts.Selectors.Dark = def.Selectors.Dark
	}
	if opts.Background == "" {
		opts.Background = def.Background
	}
	if opts.TextSuffix == "" {
		opts.TextSuffix = def.TextSuffix
	}
	if opts.SweepPrefixes == nil {
		opts.SweepPrefixes = def.SweepPrefixes
	}
	if opts.Pairs == nil {
		opts.Pairs = def.Pairs
	}
	return opts
}
