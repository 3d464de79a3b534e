// Package audit 实现各个子命令的执行逻辑，cmd 包只负责解析标志
package audit

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/afero"
	"github.com/yeisme/wcagcheck/pkg/contrast"
	"github.com/yeisme/wcagcheck/pkg/report"
	"github.com/yeisme/wcagcheck/pkg/utils/log"
)

// RunOptions 一次审计的输入与输出参数
type RunOptions struct {
	Source string
	Audit  contrast.Options
	Render report.RenderOptions
}

// Run 读取 Source 并审计，报告写入 w
// 读取失败或渲染失败时返回错误；报告中的 FAIL 不是错误，由调用方依据 ExitCode 处理
func Run(fs afero.Fs, w io.Writer, opts RunOptions) (*contrast.Report, error) {
	rep, err := contrast.AuditFile(fs, opts.Source, opts.Audit)
	if err != nil {
		return nil, err
	}
	logDiagnostics(rep)

	if err := report.Render(w, rep, opts.Render); err != nil {
		return rep, fmt.Errorf("failed to render report: %w", err)
	}
	log.Info().
		Str("source", rep.Source).
		Int("fail", rep.Totals.Fail).
		Int("warn", rep.Totals.Warn).
		Int("missing", rep.Totals.Missing).
		Msg("audit finished")
	return rep, nil
}

// logDiagnostics 缺失主题块记为 warn，缺失 token 记为 debug
func logDiagnostics(rep *contrast.Report) {
	for _, tr := range rep.Themes {
		if !tr.BlockFound {
			log.Warn().Str("theme", tr.Theme).Str("selector", tr.Selector).Msg("no block found for selector")
		}
		for _, res := range slices.Concat(tr.Tokens, tr.Pairs) {
			if res.Status == contrast.StatusMissing {
				log.Debug().
					Str("theme", tr.Theme).
					Str("name", res.Name).
					Strs("missing", res.Missing).
					Strs("suggestions", res.Suggestions).
					Msg("token missing")
			}
		}
	}
}
