// Package cmd provides command-line interface commands for wcagcheck
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/yeisme/wcagcheck/pkg/context"
	"github.com/yeisme/wcagcheck/pkg/style"
	log2 "github.com/yeisme/wcagcheck/pkg/utils/log"
	"github.com/yeisme/wcagcheck/pkg/utils/version"
)

var (
	wcagCtx *context.WcagContext
	log     log2.Logger

	// Global flags
	globalFlags = context.GlobalFlags{}

	cpuProfileFile *os.File
	traceFile      *os.File
)

// exitError 携带非零退出码，不打印额外信息
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wcagcheck",
	Short: "wcagcheck audits WCAG contrast ratios of CSS color tokens",
	Long: `wcagcheck reads the light (:root) and dark theme blocks of a stylesheet, resolves the
"r g b" color tokens declared there and checks them against WCAG 2.x contrast thresholds.

It exits with status 2 when any pair or swept token fails, which makes it usable as a CI gate.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if globalFlags.VersionEnable {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return
		}
		if len(args) == 0 {
			_ = cmd.Help()
		}
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := startProfiling(); err != nil {
			return err
		}
		ctx, err := context.InitContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}

		wcagCtx = ctx
		log = ctx.Logger

		log.Info().Msgf("Execute Command: %s %s", "wcagcheck", strings.Join(os.Args[1:], " "))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if os.Getenv("NO_COLOR") == "" && style.IsTerminal(os.Stdout) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	err := rootCmd.Execute()
	stopProfiling()
	if err == nil {
		return
	}

	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	log2.Error().Err(err).Msg("command failed")
	os.Exit(1)
}

// startProfiling 按全局标志启动 CPU profile 与 trace
func startProfiling() error {
	if globalFlags.CPUProfile != "" && cpuProfileFile == nil {
		f, err := os.Create(globalFlags.CPUProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		cpuProfileFile = f
	}
	if globalFlags.Trace != "" && traceFile == nil {
		f, err := os.Create(globalFlags.Trace)
		if err != nil {
			return fmt.Errorf("could not create trace file: %w", err)
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start trace: %w", err)
		}
		traceFile = f
	}
	return nil
}

func stopProfiling() {
	if cpuProfileFile != nil {
		pprof.StopCPUProfile()
		_ = cpuProfileFile.Close()
		cpuProfileFile = nil
	}
	if traceFile != nil {
		trace.Stop()
		_ = traceFile.Close()
		traceFile = nil
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVar(&globalFlags.CPUProfile, "cpu-profile", "", "write cpu profile to `file`")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Trace, "trace", "", "write execution trace to `file`")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
