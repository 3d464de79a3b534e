package hotload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/utils/gitignore"
)

func TestFilterRelevant(t *testing.T) {
	f := newFilter([]string{"*.bak"}, gitignore.ParseGitIgnoreLines([]string{"generated.css"}))

	assert.True(t, f.relevant("src", "src/index.css", "src/index.css"))
	assert.True(t, f.relevant("src", "src/index.css", "src/./index.css"))
	assert.False(t, f.relevant("src", "src/index.css", "src/other.css"))
	assert.False(t, f.relevant("src", "src/index.css.swp", "src/index.css.swp"))
	assert.False(t, f.relevant("src", "src/index.bak", "src/index.bak"))
	assert.False(t, f.relevant("src", "src/generated.css", "src/generated.css"))
}

func TestTrackerObserve(t *testing.T) {
	fs := afero.NewMemMapFs()
	const path = "/p/index.css"
	require.NoError(t, afero.WriteFile(fs, path, []byte(":root { --a: 1 2 3; }"), 0o644))

	tr := newTracker(fs, path)
	assert.False(t, tr.observe(), "unchanged content")

	require.NoError(t, afero.WriteFile(fs, path, []byte(""), 0o644))
	assert.False(t, tr.observe(), "truncation is absorbed")

	require.NoError(t, afero.WriteFile(fs, path, []byte(":root { --a: 1 2 3; }"), 0o644))
	assert.False(t, tr.observe(), "same content after truncation is not a change")

	require.NoError(t, afero.WriteFile(fs, path, []byte(":root { --a: 4 5 6; }"), 0o644))
	assert.True(t, tr.observe())

	require.NoError(t, fs.Remove(path))
	assert.False(t, tr.observe(), "removal waits for the file to reappear")

	require.NoError(t, afero.WriteFile(fs, path, []byte(":root { --a: 7 8 9; }"), 0o644))
	assert.True(t, tr.observe())
}

func TestWatch_DebouncedHookAndCancel(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "index.css")
	require.NoError(t, os.WriteFile(target, []byte(":root { --a: 1 2 3; }"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, target, configs.HotloadConfig{Debounce: 50}, func(context.Context) {
			fired <- struct{}{}
		})
	}()

	// 等待 watcher 注册目录后再写入
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(target, []byte(":root { --a: 4 5 6; }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.css"), []byte("x"), 0o644))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("hook was not called after the token source changed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
