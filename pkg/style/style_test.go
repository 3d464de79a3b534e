package style

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorizeJSON_PlainRendererKeepsText(t *testing.T) {
	var buf bytes.Buffer
	re := NewRenderer(&buf, false)
	src := "{\n  \"name\": \"a \\\"b\\\"\",\n  \"ratio\": -4.5e1,\n  \"ok\": true,\n  \"no\": false,\n  \"x\": null,\n  \"list\": [1, 2]\n}"
	assert.Equal(t, src, ColorizeJSON(re, src))
}

func TestPrintJSON_BufferIsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]any{"status": "PASS", "ratio": 21.0}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "PASS", got["status"])
}

func TestPrintStyledTable(t *testing.T) {
	var buf bytes.Buffer
	re := NewRenderer(&buf, false)
	err := PrintStyledTable(&buf, re, []string{"name", "status"}, [][]string{{"Body text", "PASS"}}, 60, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Body text")
	assert.Contains(t, out, "PASS")
}

func TestSwatchPlain(t *testing.T) {
	var buf bytes.Buffer
	re := NewRenderer(&buf, false)
	assert.Equal(t, "  ", Swatch(re, "#ffffff"))
	assert.Equal(t, "  ", Swatch(re, ""))
}
