package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeisme/wcagcheck/pkg/audit"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/utils/fsop"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [dir]",
	Short: "Find stylesheets that declare color tokens",
	Long: `Search dir (default: current directory) for .css/.scss/.pcss files that contain a :root
block with custom properties. node_modules, build output and .gitignore'd paths are skipped.

Use the result as the file argument of audit or as audit.source in the configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		sources, err := audit.Discover(fsop.API().Fs, root)
		if err != nil {
			return err
		}
		format, color, err := outputSettings(cmd, configs.FormatText)
		if err != nil {
			return err
		}
		return audit.WriteSources(cmd.OutOrStdout(), sources, format, color)
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	addFormatFlags(discoverCmd, false)
}
