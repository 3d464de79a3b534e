package hotload

import (
	"crypto/md5"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"github.com/yeisme/wcagcheck/pkg/utils/gitignore"
	"github.com/yeisme/wcagcheck/pkg/utils/log"
)

// commonIgnorePatterns 编辑器临时文件等始终忽略的模式
var commonIgnorePatterns = []string{"*.tmp", "*.swp", "*.swx", "*~", "~*", ".#*", "4913"}

// filter 判断事件路径是否需要处理
type filter struct {
	patterns []string
	gi       *gitignore.GitIgnore
}

func newFilter(patterns []string, gi *gitignore.GitIgnore) *filter {
	return &filter{patterns: slices.Concat(patterns, commonIgnorePatterns), gi: gi}
}

// relevant 只放行 target 本身，并再经过忽略模式与 .gitignore 检查
func (f *filter) relevant(dir, target, name string) bool {
	name = filepath.Clean(name)
	if name != target {
		return false
	}
	base := filepath.Base(name)
	for _, p := range f.patterns {
		if ok, _ := filepath.Match(p, base); ok {
			log.Debug().Str("file", name).Str("pattern", p).Msg("ignored by pattern")
			return false
		}
	}
	if f.gi != nil {
		if rel, err := filepath.Rel(dir, name); err == nil && f.gi.IsIgnored(rel) {
			log.Debug().Str("file", name).Msg("ignored by .gitignore")
			return false
		}
	}
	return true
}

// fileState 文件的存在性、大小与内容摘要
type fileState struct {
	exists bool
	size   int64
	hash   string
}

// tracker 记录目标文件最近一次有内容的状态，用于区分真实变更与编辑器保存时的中间状态
type tracker struct {
	fs      afero.Fs
	path    string
	settled fileState
}

func newTracker(fs afero.Fs, path string) *tracker {
	t := &tracker{fs: fs, path: path}
	t.settled = t.snapshot()
	return t
}

func (t *tracker) snapshot() fileState {
	data, err := afero.ReadFile(t.fs, t.path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, size: int64(len(data)), hash: fmt.Sprintf("%x", md5.Sum(data))}
}

// observe 重新读取目标文件并返回内容是否相对上次上报发生了变化
//
// 许多编辑器保存时先截断为 0 字节再写入内容，或先删除再重建文件；
// 截断与删除只作为中间状态，等内容出现后再与之前的内容比较。
func (t *tracker) observe() bool {
	cur := t.snapshot()
	switch {
	case !cur.exists:
		log.Debug().Str("file", t.path).Msg("file removed, waiting for it to reappear")
		return false
	case cur.size == 0:
		log.Debug().Str("file", t.path).Msg("detected editor save truncation, waiting for content")
		return false
	case cur.hash == t.settled.hash:
		return false
	default:
		t.settled = cur
		return true
	}
}
