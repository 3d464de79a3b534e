package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/contrast"
)

const tokensCSS = `
:root {
  --color-background: 255 255 255;
  --color-foreground: 15 23 42;
  --color-muted-foregrnd: 100 116 139;
  --chart-1: 255 255 0;
  --chart-2: 0 0 0;
}
.dark, [data-theme="dark"] {
  --color-background: 2 6 23;
  --color-foreground: 248 250 252;
}
`

func sampleReport(t *testing.T) *contrast.Report {
	t.Helper()
	r := contrast.Audit(tokensCSS, contrast.DefaultOptions())
	r.Source = "src/index.css"
	require.True(t, r.Failed())
	return r
}

func TestRender_TextPlain(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleReport(t), RenderOptions{Format: configs.FormatText, Width: 120})
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "plain output must not carry ANSI sequences")
	assert.Contains(t, out, "Source: src/index.css")
	assert.Contains(t, out, "Light theme (:root)")
	assert.Contains(t, out, "Dark theme (.dark, [data-theme=\"dark\"])")
	assert.Contains(t, out, "Token sweep against --color-background")
	assert.Contains(t, out, "Semantic pairs")
	assert.Contains(t, out, "chart-1")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "Muted text: missing [--color-muted-foreground]")
	assert.Contains(t, out, "did you mean [--color-muted-foregrnd]?")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Total")
}

func TestRender_TextShowsRGBValues(t *testing.T) {
	rep := contrast.Audit(":root{--color-background:255 255 255;--chart-series-1:255 255 0;}", contrast.Options{
		Pairs: []contrast.ContrastPair{
			{Name: "Body", Foreground: "color-foreground", Background: "color-background", MinRatio: 4.5},
		},
	})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, RenderOptions{Format: configs.FormatText, Width: 160}))

	out := buf.String()
	assert.Contains(t, out, "FG RGB")
	assert.Contains(t, out, "BG RGB")
	assert.Contains(t, out, "255 255 0")
	assert.Contains(t, out, "255 255 255")
	assert.Contains(t, out, "1.07:1")
}

func TestFormatRGB(t *testing.T) {
	assert.Equal(t, "-", formatRGB(nil))
	assert.Equal(t, "255 255 0", formatRGB(&contrast.RGB{R: 255, G: 255, B: 0}))
}

func TestRender_EmptyFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), RenderOptions{Width: 120}))
	assert.Contains(t, buf.String(), "Summary")
}

func TestRender_JSON(t *testing.T) {
	rep := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, RenderOptions{Format: configs.FormatJSON}))

	var got contrast.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rep.Totals, got.Totals)
	require.Len(t, got.Themes, 2)
	assert.Equal(t, contrast.ThemeLight, got.Themes[0].Theme)
	assert.Equal(t, contrast.ThemeDark, got.Themes[1].Theme)
}

func TestRender_YAMLAndTOML(t *testing.T) {
	rep := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, RenderOptions{Format: configs.FormatYAML}))
	assert.Contains(t, buf.String(), "themes:")
	assert.Contains(t, buf.String(), "status: FAIL")

	buf.Reset()
	require.NoError(t, Render(&buf, rep, RenderOptions{Format: configs.FormatTOML}))
	assert.Contains(t, buf.String(), "[[themes]]")
}

func TestRender_MarkdownRaw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(t), RenderOptions{Format: configs.FormatMarkdown}))

	out := buf.String()
	assert.Contains(t, out, "# WCAG contrast audit")
	assert.Contains(t, out, "## Light theme (`:root`)")
	assert.Contains(t, out, "| Name | Foreground | Background | Ratio | Min | Status |")
	assert.Contains(t, out, "| chart-1 | `--chart-1` #ffff00 | `--color-background` #ffffff | 1.07:1 | **FAIL** |")
	assert.Contains(t, out, "**Result: FAIL**")
}

func TestMarkdown_PassingReport(t *testing.T) {
	rep := contrast.Audit(`:root { --color-background: 255 255 255; --chart-1: 0 0 0; }`, contrast.Options{
		Pairs: []contrast.ContrastPair{},
	})
	out := Markdown(rep)
	assert.Contains(t, out, "**Result: PASS**")
	assert.Contains(t, out, "> No block found for selector")
}

func TestRender_NilReport(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, nil, RenderOptions{}))
}
