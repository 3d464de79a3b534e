package gitignore

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitIgnoreLines(t *testing.T) {
	gi := ParseGitIgnoreLines([]string{
		"# This is a comment",
		"",
		"*.log",
		"node_modules/",
		"/build",
		"temp*",
		"!important.log",
	})
	assert.Equal(t, []string{"*.log", "node_modules/", "/build", "temp*", "!important.log"}, gi.GetPatterns())
}

func TestIsIgnored(t *testing.T) {
	gi := ParseGitIgnoreLines([]string{
		"*.log",
		"node_modules/",
		"/build",
		"temp*",
		"*.tmp",
		"dist/styles",
		"!keep.log",
	})

	cases := []struct {
		path string
		want bool
	}{
		{"test.log", true},
		{"keep.log", false},
		{"app.js", false},
		{"node_modules", true},
		{"node_modules/package", true},
		{"src/node_modules", true},
		{"build", true},
		{"build/out.css", true},
		{"src/build", false},
		{"temp123", true},
		{"file.tmp", true},
		{"src/file.tmp", true},
		{"dist/styles/index.css", true},
		{"src/dist/styles", false},
		{"", false},
		{".", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, gi.IsIgnored(tc.path), tc.path)
	}
}

func TestLoadGitIgnoreFromDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/repo/.gitignore", []byte("# c\n*.log\nnode_modules/\n"), 0o644))

	gi, err := LoadGitIgnoreFromDir(fsys, "/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log", "node_modules/"}, gi.GetPatterns())
	assert.True(t, gi.IsIgnored("test.log"))
	assert.True(t, gi.IsIgnored("node_modules"))
	assert.False(t, gi.IsIgnored("test.js"))
}

func TestFilterIgnoredPaths(t *testing.T) {
	gi := ParseGitIgnoreLines([]string{"*.log", "node_modules/", "temp*"})
	got := gi.FilterIgnoredPaths([]string{
		"src/app.js",
		"test.log",
		"node_modules/package.json",
		"temp_file.txt",
		"README.md",
	})
	assert.Equal(t, []string{"src/app.js", "README.md"}, got)
}

func TestNonExistentGitIgnore(t *testing.T) {
	gi, err := LoadGitIgnore(afero.NewMemMapFs(), "/non/existent/.gitignore")
	require.NoError(t, err)
	assert.Empty(t, gi.GetPatterns())
	assert.False(t, gi.IsIgnored("test.log"))
}
