package configs

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/wcagcheck/pkg/contrast"
	"github.com/yeisme/wcagcheck/pkg/utils/fsop"
)

func useMemFs(t *testing.T) {
	t.Helper()
	fsop.SetMemMapFs()
	t.Cleanup(fsop.SetOsFs)
}

func TestLoadConfig_Defaults(t *testing.T) {
	useMemFs(t)

	cfg, err := LoadConfig(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, "src/index.css", cfg.Audit.Source)
	assert.Equal(t, contrast.DefaultLightSelector, cfg.Audit.LightSelector)
	assert.Equal(t, contrast.DefaultDarkSelector, cfg.Audit.DarkSelector)
	assert.Equal(t, contrast.DefaultSweepPrefixes(), cfg.Audit.SweepPrefixes)
	assert.Equal(t, contrast.DefaultPairs(), cfg.Audit.Pairs)
	assert.Equal(t, "wcagcheck", cfg.App.Name)
	assert.Equal(t, 300, cfg.App.Hotload.Debounce)
	assert.Equal(t, "console", cfg.Log.Mode)
}

func TestLoadConfig_FromFile(t *testing.T) {
	useMemFs(t)
	content := `
audit:
  source: styles/tokens.css
  dark_selector: ".theme-dark"
  pairs:
    - name: Link
      foreground: color-link
      background: color-background
      min_ratio: 3
log:
  level: debug
`
	require.NoError(t, fsop.API().WriteFile("/cfg/wcagcheck.yaml", []byte(content), 0o644))

	cfg, err := LoadConfig(NewViper(), "/cfg/wcagcheck.yaml")
	require.NoError(t, err)

	assert.Equal(t, "styles/tokens.css", cfg.Audit.Source)
	assert.Equal(t, []contrast.ContrastPair{
		{Name: "Link", Foreground: "color-link", Background: "color-background", MinRatio: 3},
	}, cfg.Audit.Pairs)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts := cfg.Audit.Options()
	assert.Equal(t, contrast.DefaultLightSelector, opts.Selectors.Light)
	assert.Equal(t, ".theme-dark", opts.Selectors.Dark)
	assert.Equal(t, contrast.DefaultBackground, opts.Background)
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	useMemFs(t)
	_, err := LoadConfig(NewViper(), "/nope/wcagcheck.yaml")
	assert.Error(t, err)
}

func TestCreateDefaultConfig_RoundTrip(t *testing.T) {
	for _, format := range []OutputFormat{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			useMemFs(t)

			path, err := CreateDefaultConfig("/out/wcagcheck", format)
			require.NoError(t, err)
			assert.Equal(t, "/out/wcagcheck."+string(format), path)

			cfg, err := LoadConfig(NewViper(), path)
			require.NoError(t, err)
			assert.Equal(t, contrast.DefaultPairs(), cfg.Audit.Pairs)

			_, err = CreateDefaultConfig(path, format)
			assert.Error(t, err, "existing file must not be overwritten")
		})
	}
}

func TestCreateDefaultConfig_RejectsText(t *testing.T) {
	useMemFs(t)
	_, err := CreateDefaultConfig("/out/x.yaml", FormatText)
	assert.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	cases := map[string]OutputFormat{
		"yml":      FormatYAML,
		"JSON":     FormatJSON,
		"toml":     FormatTOML,
		"md":       FormatMarkdown,
		"table":    FormatText,
		"markdown": FormatMarkdown,
	}
	for in, want := range cases {
		got, err := ParseOutputFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseOutputFormat("xml")
	assert.Error(t, err)
}

func TestGetOutputFormatFromFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().String("format", "", "")
		cmd.Flags().Bool("json", false, "")
		cmd.Flags().Bool("yaml", false, "")
		return cmd
	}

	cmd := newCmd()
	got, err := GetOutputFormatFromFlags(cmd, FormatText)
	require.NoError(t, err)
	assert.Equal(t, FormatText, got)

	cmd = newCmd()
	require.NoError(t, cmd.Flags().Set("json", "true"))
	got, err = GetOutputFormatFromFlags(cmd, FormatText)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	cmd = newCmd()
	require.NoError(t, cmd.Flags().Set("format", "bogus"))
	_, err = GetOutputFormatFromFlags(cmd, FormatText)
	assert.Error(t, err)
}

func TestOutputData(t *testing.T) {
	data := map[string]any{"name": "wcagcheck", "ratio": 4.5}

	var buf bytes.Buffer
	require.NoError(t, OutputData(data, FormatJSON, &buf, false))
	assert.JSONEq(t, `{"name":"wcagcheck","ratio":4.5}`, buf.String())

	buf.Reset()
	require.NoError(t, OutputData(data, FormatYAML, &buf, false))
	assert.Contains(t, buf.String(), "name: wcagcheck")

	buf.Reset()
	require.NoError(t, OutputData(data, FormatTOML, &buf, false))
	assert.Regexp(t, `name = ['"]wcagcheck['"]`, buf.String())

	assert.Error(t, OutputData(data, FormatMarkdown, &buf, false))
}

func TestValidate(t *testing.T) {
	useMemFs(t)
	cfg, err := LoadConfig(NewViper(), "")
	require.NoError(t, err)
	assert.Empty(t, Validate(cfg), "defaults are valid")

	cfg.Log.Mode = "syslog"
	cfg.Audit.Format = "xml"
	cfg.Audit.SweepPrefixes = []string{"chart-", ""}
	cfg.Audit.Pairs = []contrast.ContrastPair{
		{Name: "Body", Foreground: "fg", Background: "bg", MinRatio: 4.5},
		{Name: "Body", Foreground: "", Background: "bg", MinRatio: 30},
		{Name: "Omitted ratio", Foreground: "fg", Background: "bg"},
		{Name: "Negative ratio", Foreground: "fg", Background: "bg", MinRatio: -1},
	}
	problems := Validate(cfg)
	assert.Len(t, problems, 7)
	assert.Contains(t, problems, `audit.pairs: duplicate pair name "Body"`)
	assert.Contains(t, problems, "audit.pairs[3] (Negative ratio): min_ratio -1.00 is outside 1..21")
}
