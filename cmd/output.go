package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/style"
)

// addFormatFlags 为命令注册统一的输出格式标志
func addFormatFlags(cmd *cobra.Command, markdown bool) {
	cmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("yaml", false, "Output in YAML format")
	cmd.Flags().Bool("toml", false, "Output in TOML format")
	if markdown {
		cmd.Flags().Bool("markdown", false, "Output a markdown report")
	}
	cmd.Flags().Bool("no-color", false, "Disable color output")
}

// outputSettings 解析输出格式，并在输出为终端且未禁用颜色时启用样式
func outputSettings(cmd *cobra.Command, fallback configs.OutputFormat) (configs.OutputFormat, bool, error) {
	format, err := configs.GetOutputFormatFromFlags(cmd, fallback)
	if err != nil {
		return "", false, err
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	return format, !noColor && style.IsTerminal(cmd.OutOrStdout()), nil
}
