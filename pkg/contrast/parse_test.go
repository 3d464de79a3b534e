package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBlock(t *testing.T) {
	cases := []struct {
		name     string
		source   string
		selector string
		want     string
	}{
		{
			name:     "simple",
			source:   ":root { --a: 1 2 3; }",
			selector: ":root",
			want:     " --a: 1 2 3; ",
		},
		{
			name:     "nested braces",
			source:   ":root { --a: 1 2 3; @media (x) { --b: 4 5 6; } }",
			selector: ":root",
			want:     " --a: 1 2 3; @media (x) { --b: 4 5 6; } ",
		},
		{
			name:     "selector not followed by block is skipped",
			source:   ":root:not(.dark) { --a: 9 9 9; }\n:root {--a: 1 2 3;}",
			selector: ":root",
			want:     "--a: 1 2 3;",
		},
		{
			name:     "dark selector",
			source:   ":root{--a:1 2 3;}\n.dark, [data-theme=\"dark\"] {\n  --a: 4 5 6;\n}",
			selector: DefaultDarkSelector,
			want:     "\n  --a: 4 5 6;\n",
		},
		{
			name:     "braces in comments and strings ignored",
			source:   ":root { /* } */ --a: 1 2 3; --font: \"}\"; }",
			selector: ":root",
			want:     " /* } */ --a: 1 2 3; --font: \"}\"; ",
		},
		{
			name:     "selector inside comment is ignored",
			source:   "/* legacy :root { --color-background: 0 0 0; } */\n:root { --color-background: 255 255 255; }",
			selector: ":root",
			want:     " --color-background: 255 255 255; ",
		},
		{
			name:     "selector inside string is ignored",
			source:   "a::before { content: \":root { --a: 0 0 0; }\"; }\n:root { --a: 1 2 3; }",
			selector: ":root",
			want:     " --a: 1 2 3; ",
		},
		{
			name:     "unterminated comment",
			source:   ":root-like /* :root { --a: 1 2 3; }",
			selector: ":root",
			want:     "",
		},
		{
			name:     "missing selector",
			source:   ":root { --a: 1 2 3; }",
			selector: ".dark",
			want:     "",
		},
		{
			name:     "unbalanced block",
			source:   ":root { --a: 1 2 3;",
			selector: ":root",
			want:     "",
		},
		{
			name:     "empty selector",
			source:   ":root { --a: 1 2 3; }",
			selector: "",
			want:     "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractBlock(tc.source, tc.selector))
		})
	}
}

func TestExtractVariables(t *testing.T) {
	block := `
		/* surface */
		--color-background: 255 255 255;
		--color-foreground: 10, 20, 30;
		--chart-series-1: 255 255 0 !important;
		--radius: 0.5rem;
		--too-few: 1 2;
		--too-many: 1 2 3 4;
		--out-of-range: 256 0 0;
		--not-numeric: a b c;
		color: red;
		--color-background: 250 250 250;
	`
	vars := ExtractVariables(block)

	assert.Equal(t, ThemeVariableSet{
		"color-background": {250, 250, 250},
		"color-foreground": {10, 20, 30},
		"chart-series-1":   {255, 255, 0},
	}, vars)
}

func TestFindBlock_EmptyBlockIsFound(t *testing.T) {
	block, found := FindBlock(":root { --a: 1 2 3; }\n.dark {}", ".dark")
	assert.True(t, found)
	assert.Empty(t, block)

	_, found = FindBlock(":root { --a: 1 2 3; }", ".dark")
	assert.False(t, found)
}

func TestExtractVariables_NestedBlockWithoutTrailingSemicolon(t *testing.T) {
	block := ExtractBlock(":root { --a: 1 2 3; @media (x) { --b: 4 5 6 } --c: 7 8 9 }", ":root")
	assert.Equal(t, ThemeVariableSet{
		"a": {1, 2, 3},
		"b": {4, 5, 6},
		"c": {7, 8, 9},
	}, ExtractVariables(block))
}

func TestExtractVariables_Empty(t *testing.T) {
	assert.Empty(t, ExtractVariables(""))
}
