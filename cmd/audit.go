package cmd

import (
	stdcontext "context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yeisme/wcagcheck/pkg/audit"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/report"
	"github.com/yeisme/wcagcheck/pkg/utils/fsop"
	"github.com/yeisme/wcagcheck/pkg/utils/hotload"
)

var auditCmd = &cobra.Command{
	Use:   "audit [file]",
	Short: "Audit the contrast of color tokens in a stylesheet",
	Long: `Audit parses the light and dark theme blocks of the token source, sweeps chart/pain tokens
against the background token and checks every semantic foreground/background pair.

The file argument overrides audit.source from the configuration (default src/index.css).
The configuration is validated first; problems abort the audit with exit status 1.
Watch mode is only entered with --watch, so CI runs always terminate.

Exit status:
  0  no FAIL in any theme (WARN and MISSING do not fail the audit)
  1  the token source could not be read or the configuration is invalid
  2  at least one FAIL

Examples:
  wcagcheck audit
  wcagcheck audit app/styles/tokens.css
  wcagcheck audit --markdown > contrast.md
  wcagcheck audit --dark-selector '.theme-dark' --json
  wcagcheck audit --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if problems := configs.Validate(wcagCtx.Config); len(problems) > 0 {
			for _, p := range problems {
				log.Error().Msg(p)
			}
			return fmt.Errorf("invalid configuration, %d problem(s): %s", len(problems), strings.Join(problems, "; "))
		}
		cfg := wcagCtx.Config.Audit

		source := cfg.Source
		if len(args) > 0 {
			source = args[0]
		}

		opts := cfg.Options()
		if v, _ := cmd.Flags().GetString("light-selector"); v != "" {
			opts.Selectors.Light = v
		}
		if v, _ := cmd.Flags().GetString("dark-selector"); v != "" {
			opts.Selectors.Dark = v
		}
		if v, _ := cmd.Flags().GetString("background"); v != "" {
			opts.Background = v
		}

		fallback := configs.FormatText
		if cfg.Format != "" {
			f, err := configs.ParseOutputFormat(cfg.Format)
			if err != nil {
				return fmt.Errorf("audit.format: %w", err)
			}
			fallback = f
		}
		format, color, err := outputSettings(cmd, fallback)
		if err != nil {
			return err
		}

		runOpts := audit.RunOptions{
			Source: source,
			Audit:  opts,
			Render: report.RenderOptions{Format: format, Color: color},
		}

		watch, _ := cmd.Flags().GetBool("watch")
		if watch {
			return watchAudit(cmd, runOpts)
		}

		rep, err := audit.Run(fsop.API().Fs, cmd.OutOrStdout(), runOpts)
		if err != nil {
			return err
		}
		if code := rep.ExitCode(); code != 0 {
			return &exitError{code: code}
		}
		return nil
	},
}

// watchAudit 先执行一次审计，之后在源文件变更时重新执行，直到收到 SIGINT/SIGTERM
// 监听模式下审计结果不影响退出码
func watchAudit(cmd *cobra.Command, runOpts audit.RunOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	runOnce := func(stdcontext.Context) {
		if _, err := audit.Run(fsop.API().Fs, out, runOpts); err != nil {
			log.Error().Err(err).Msg("audit failed")
		}
	}

	runOnce(ctx)
	return hotload.Watch(ctx, runOpts.Source, wcagCtx.Config.App.Hotload, runOnce)
}

func init() {
	rootCmd.AddCommand(auditCmd)

	addFormatFlags(auditCmd, true)
	auditCmd.Flags().String("light-selector", "", "selector of the default (light) token block")
	auditCmd.Flags().String("dark-selector", "", "selector of the dark override block")
	auditCmd.Flags().String("background", "", "background token used by the sweep")
	auditCmd.Flags().BoolP("watch", "w", false, "re-run the audit whenever the token source changes")
}
