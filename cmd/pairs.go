package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeisme/wcagcheck/pkg/audit"
	"github.com/yeisme/wcagcheck/pkg/configs"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List the configured semantic pairs and sweep prefixes",
	Long: `List the semantic foreground/background pairs checked by audit, with their minimum
ratio, and the token prefixes included in the sweep.

Pairs come from audit.pairs in the configuration and default to the built-in set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := wcagCtx.Config.Audit.Options()
		format, color, err := outputSettings(cmd, configs.FormatText)
		if err != nil {
			return err
		}
		return audit.WritePairs(cmd.OutOrStdout(), audit.PairsListing{
			Background:    opts.Background,
			SweepPrefixes: opts.SweepPrefixes,
			Pairs:         opts.Pairs,
		}, format, color)
	},
}

func init() {
	rootCmd.AddCommand(pairsCmd)
	addFormatFlags(pairsCmd, false)
}
