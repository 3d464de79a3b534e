package hotload

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yeisme/wcagcheck/pkg/utils/log"
)

// watchContext 事件循环的运行时状态，只在事件循环所在的 goroutine 中访问
type watchContext struct {
	dir      string
	target   string
	filter   *filter
	tracker  *tracker
	debounce time.Duration
}

// runEventLoop 处理 fsnotify 事件，过滤后检测真实变更，并在防抖到期时执行钩子
// 钩子与事件处理在同一个 goroutine 中串行执行
func runEventLoop(ctx context.Context, watcher *fsnotify.Watcher, wc *watchContext, hook Func) error {
	timer := time.NewTimer(wc.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !handleEvent(wc, event) {
				continue
			}
			// 启动或重置防抖定时器
			timer.Reset(wc.debounce)

		case <-timer.C:
			log.Info().Str("file", wc.target).Msg("token source changed, re-running audit")
			hook(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}

// handleEvent 判断事件是否对应目标文件的一次真实内容变更
func handleEvent(wc *watchContext, event fsnotify.Event) bool {
	if !wc.filter.relevant(wc.dir, wc.target, event.Name) {
		return false
	}
	log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("event")
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return false
	}
	return wc.tracker.observe()
}
