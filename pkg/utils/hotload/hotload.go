// Package hotload 监听 token 源文件的变更并在防抖后重新触发钩子
package hotload

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/utils/fsop"
	"github.com/yeisme/wcagcheck/pkg/utils/gitignore"
	"github.com/yeisme/wcagcheck/pkg/utils/log"
)

// DefaultDebounce 未配置防抖时长时使用的默认值
const DefaultDebounce = 300 * time.Millisecond

// Func 变更后执行的钩子
type Func func(ctx context.Context)

// Watch 监听 target 所在目录，只有 target 本身的实际内容变更才会在防抖后触发 hook
// 阻塞直到 ctx 取消，取消时返回 nil
func Watch(ctx context.Context, target string, config configs.HotloadConfig, hook Func) error {
	target = filepath.Clean(target)
	dir := filepath.Dir(target)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("创建 watcher 失败: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("关闭 watcher 失败")
		}
	}()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("将目录 '%s' 添加到 watcher 失败: %w", dir, err)
	}

	debounce := time.Duration(config.Debounce) * time.Millisecond
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	wc := &watchContext{
		dir:      dir,
		target:   target,
		filter:   newFilter(config.IgnorePatterns, loadGitIgnore(dir, config.GitIgnore)),
		tracker:  newTracker(fsop.API().Fs, target),
		debounce: debounce,
	}

	log.Info().Str("file", target).Dur("debounce", debounce).Msg("watching token source, press Ctrl+C to stop")
	err = runEventLoop(ctx, watcher, wc, hook)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadGitIgnore 在启用时加载目录下的 .gitignore，失败时返回空规则集
func loadGitIgnore(dir string, enabled bool) *gitignore.GitIgnore {
	if !enabled {
		return &gitignore.GitIgnore{}
	}
	gi, err := gitignore.LoadGitIgnoreFromDir(fsop.API().Fs, dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("failed to load .gitignore")
		return &gitignore.GitIgnore{}
	}
	if n := len(gi.GetPatterns()); n > 0 {
		log.Debug().Int("patterns", n).Msg("loaded .gitignore patterns")
	}
	return gi
}
