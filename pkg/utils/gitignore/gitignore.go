// Package gitignore provides utilities for parsing and matching .gitignore patterns.
package gitignore

import (
	"bufio"
	"bytes"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// rule 一条已解析的忽略规则
type rule struct {
	raw      string
	pattern  string
	negate   bool // 以 ! 开头，重新包含
	anchored bool // 以 / 开头或中间含 /，相对根目录匹配
}

// GitIgnore represents a collection of gitignore patterns
type GitIgnore struct {
	rules []rule
}

// LoadGitIgnore 从 fsys 中加载 .gitignore 文件，文件不存在时返回空规则集
func LoadGitIgnore(fsys afero.Fs, gitignorePath string) (*GitIgnore, error) {
	data, err := afero.ReadFile(fsys, gitignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &GitIgnore{}, nil
		}
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseGitIgnoreLines(lines), nil
}

// LoadGitIgnoreFromDir loads the .gitignore file from the specified directory
func LoadGitIgnoreFromDir(fsys afero.Fs, dirPath string) (*GitIgnore, error) {
	return LoadGitIgnore(fsys, filepath.Join(dirPath, ".gitignore"))
}

// ParseGitIgnoreLines parses gitignore patterns from a slice of strings
func ParseGitIgnoreLines(lines []string) *GitIgnore {
	gi := &GitIgnore{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r := rule{raw: line}
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		line = strings.TrimSuffix(line, "/")
		if strings.HasPrefix(line, "/") {
			r.anchored = true
			line = strings.TrimPrefix(line, "/")
		} else if strings.Contains(line, "/") {
			r.anchored = true
		}
		r.pattern = line
		gi.rules = append(gi.rules, r)
	}
	return gi
}

// GetPatterns returns all loaded patterns as written
func (gi *GitIgnore) GetPatterns() []string {
	out := make([]string, 0, len(gi.rules))
	for _, r := range gi.rules {
		out = append(out, r.raw)
	}
	return out
}

// IsIgnored 判断相对路径是否被忽略；后出现的规则优先，! 规则可重新包含
func (gi *GitIgnore) IsIgnored(p string) bool {
	p = strings.Trim(filepath.ToSlash(p), "/")
	if p == "" || p == "." {
		return false
	}
	ignored := false
	for _, r := range gi.rules {
		if r.match(p) {
			ignored = !r.negate
		}
	}
	return ignored
}

// match 判断规则是否命中路径本身或它的任一父目录
func (r rule) match(p string) bool {
	// 仅凭路径无法区分叶子是否为目录，以 / 结尾的规则对叶子同样生效
	parts := strings.Split(p, "/")
	for i := range parts {
		if r.matchOne(strings.Join(parts[:i+1], "/"), parts[i]) {
			return true
		}
	}
	return false
}

func (r rule) matchOne(full, base string) bool {
	if r.anchored {
		ok, _ := path.Match(r.pattern, full)
		return ok
	}
	ok, _ := path.Match(r.pattern, base)
	return ok
}

// FilterIgnoredPaths filters out ignored paths from a list of paths
func (gi *GitIgnore) FilterIgnoredPaths(paths []string) []string {
	var result []string
	for _, p := range paths {
		if !gi.IsIgnored(p) {
			result = append(result, p)
		}
	}
	return result
}
