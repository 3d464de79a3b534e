// Package fsop provides file system operations backed by afero.
//
// 所有读写都经由 API() 返回的后端，测试中可切换为内存文件系统。
package fsop

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/yeisme/wcagcheck/pkg/utils/gitignore"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero backend.
func API() afero.Afero {
	return backend
}

// SetOsFs 切换回操作系统文件系统
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs 切换为内存文件系统，用于单元测试
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// skipDirs 查找 token 源文件时始终跳过的目录
var skipDirs = []string{".git", "node_modules", "dist", "build", ".next", "coverage"}

// tokenMarkers 判定一个样式文件是否为 token 源文件的特征片段
var tokenMarkers = [][]byte{[]byte(":root"), []byte("--")}

// FindTokenSources 在 root 下递归查找包含颜色 token 定义的样式文件
//
// 仅考虑 .css/.scss/.pcss 文件，文件内容需同时包含 `:root` 与 `--`。
// gi 非空时按 .gitignore 规则跳过被忽略的目录与文件。
func FindTokenSources(fsys afero.Fs, root string, gi *gitignore.GitIgnore) ([]string, error) {
	var found []string
	walkErr := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if info.IsDir() {
			if path == root {
				return nil
			}
			if isSkippedDir(info.Name()) || (gi != nil && gi.IsIgnored(rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if gi != nil && gi.IsIgnored(rel) {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".css", ".scss", ".pcss":
		default:
			return nil
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if containsAll(data, tokenMarkers) {
			found = append(found, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return found, nil
}

func isSkippedDir(name string) bool {
	for _, d := range skipDirs {
		if name == d {
			return true
		}
	}
	return false
}

func containsAll(data []byte, markers [][]byte) bool {
	for _, m := range markers {
		if !bytes.Contains(data, m) {
			return false
		}
	}
	return true
}
