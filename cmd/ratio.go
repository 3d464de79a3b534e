package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeisme/wcagcheck/pkg/audit"
	"github.com/yeisme/wcagcheck/pkg/configs"
)

var ratioCmd = &cobra.Command{
	Use:   "ratio <foreground> <background>",
	Short: "Compute the contrast ratio of two colors",
	Long: `Compute the WCAG contrast ratio of two ad-hoc colors and show the verdict for normal
text (4.5), large text / UI components (3.0) and the token sweep tiers.

Colors are given as #rgb, #rrggbb or "r g b" / "r,g,b".

Examples:
  wcagcheck ratio '#1e40af' '#ffffff'
  wcagcheck ratio "147 197 253" "2 6 23" --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := audit.ComputeRatio(args[0], args[1])
		if err != nil {
			return err
		}
		format, color, err := outputSettings(cmd, configs.FormatText)
		if err != nil {
			return err
		}
		return audit.WriteRatio(cmd.OutOrStdout(), res, format, color)
	},
}

func init() {
	rootCmd.AddCommand(ratioCmd)
	addFormatFlags(ratioCmd, false)
}
