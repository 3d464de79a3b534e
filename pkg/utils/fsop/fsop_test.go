package fsop

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/wcagcheck/pkg/utils/gitignore"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestFindTokenSources(t *testing.T) {
	fsys := afero.NewMemMapFs()
	root := "/repo"
	tokens := ":root { --color-background: 255 255 255; }"

	writeFile(t, fsys, filepath.Join(root, "src/index.css"), tokens)
	writeFile(t, fsys, filepath.Join(root, "src/theme/tokens.scss"), tokens)
	writeFile(t, fsys, filepath.Join(root, "src/plain.css"), "body { color: red; }")
	writeFile(t, fsys, filepath.Join(root, "src/app.ts"), tokens)
	writeFile(t, fsys, filepath.Join(root, "node_modules/lib/index.css"), tokens)
	writeFile(t, fsys, filepath.Join(root, "generated/out.css"), tokens)

	gi := gitignore.ParseGitIgnoreLines([]string{"generated/"})
	got, err := FindTokenSources(fsys, root, gi)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "src/index.css"),
		filepath.Join(root, "src/theme/tokens.scss"),
	}, got)
}

func TestFindTokenSources_NoGitIgnore(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/repo/generated/out.css", ":root { --a: 1 2 3; }")

	got, err := FindTokenSources(fsys, "/repo", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/repo", "generated/out.css")}, got)
}

func TestFindTokenSources_MissingRoot(t *testing.T) {
	_, err := FindTokenSources(afero.NewMemMapFs(), "/nope", nil)
	assert.Error(t, err)
}

func TestBackendSwitch(t *testing.T) {
	SetMemMapFs()
	t.Cleanup(SetOsFs)

	require.NoError(t, API().WriteFile("/tmp/x.css", []byte("x"), 0o644))
	ok, err := API().Exists("/tmp/x.css")
	require.NoError(t, err)
	assert.True(t, ok)
}
