package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/wcagcheck/pkg/configs"
)

var (
	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage wcagcheck configuration",
		Long:    `wcagcheck config allows you to view, validate and create the wcagcheck configuration.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate wcagcheck configuration",
		Long: `wcagcheck config validate loads the configuration file and environment variables and
checks the audit section: the output format, every pair and the sweep prefixes.`,
		Aliases: []string{"check", "verify"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fileUsed := wcagCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fileUsed = "(defaults, no config file found)"
			}

			problems := configs.Validate(wcagCtx.Config)
			for _, p := range problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("config %s has %d problem(s)", fileUsed, len(problems))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config OK: %s\n", fileUsed)
			return nil
		},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List wcagcheck configuration",
		Long: `wcagcheck config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - audit: Token source, selectors and pairs

Examples:
  wcagcheck config list                    # Show all configuration (viper raw data)
  wcagcheck config list --all              # Show all configuration with defaults
  wcagcheck config list audit --yaml       # Show only audit settings in YAML
  wcagcheck config list app --all --json   # Show app config with defaults in JSON`,
		Args:    cobra.MaximumNArgs(1),
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format, color, err := outputSettings(cmd, configs.FormatYAML)
			if err != nil {
				return err
			}

			// 检查是否显示完整配置（包含默认值）
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(wcagCtx.Viper, section, showAll)
			if err != nil {
				return err
			}
			return configs.OutputData(data, format, cmd.OutOrStdout(), color)
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize wcagcheck configuration",
		Long: `wcagcheck config init creates a new configuration file with default settings.

Examples:
  wcagcheck config init                          # Create .wcagcheck.yaml in current directory
  wcagcheck config init --path configs/wcagcheck # Specify custom path, extension added from --format
  wcagcheck config init --format toml            # Create TOML format config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}
			if path == "" {
				path = ".wcagcheck"
			}

			written, err := configs.CreateDefaultConfig(path, format)
			if err != nil {
				return err
			}
			log.Info().Str("path", written).Msg("config file created")
			fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", written)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	// 添加 config list 标志
	addFormatFlags(configListCmd, false)
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	// 添加 config init 标志
	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
