package cmd

import (
	"errors"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"github.com/yeisme/wcagcheck/pkg/audit"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/utils/fsop"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "List the color tokens of each theme",
	Long: `List every color token parsed from the light and dark blocks, with its ratio against
the background token. The dark theme includes tokens inherited from :root.

Examples:
  wcagcheck tokens
  wcagcheck tokens src/index.css --yaml
  wcagcheck tokens --pick`,
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := wcagCtx.Config.Audit
		source := cfg.Source
		if len(args) > 0 {
			source = args[0]
		}

		data, err := fsop.API().ReadFile(source)
		if err != nil {
			return err
		}
		rows := audit.CollectTokens(string(data), cfg.Options())

		format, color, err := outputSettings(cmd, configs.FormatText)
		if err != nil {
			return err
		}

		if pick, _ := cmd.Flags().GetBool("pick"); pick {
			row, err := audit.PickToken(rows)
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			if err != nil {
				return err
			}
			return audit.WriteTokenDetail(cmd.OutOrStdout(), row, format, color)
		}
		return audit.WriteTokens(cmd.OutOrStdout(), rows, format, color)
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	addFormatFlags(tokensCmd, false)
	tokensCmd.Flags().BoolP("pick", "p", false, "select a token interactively and show its details")
}
