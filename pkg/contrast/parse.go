package contrast

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// declPattern 匹配 `--name: r g b`，通道之间可用空白或逗号分隔
	declPattern = regexp.MustCompile(`--([A-Za-z0-9_-]+)\s*:\s*(\d{1,3})(?:\s*,\s*|\s+)(\d{1,3})(?:\s*,\s*|\s+)(\d{1,3})\s*(?:!important)?$`)

	commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// ExtractBlock 返回 selector 之后第一个花括号块内的文本（不含外层括号）
//
// selector 与 `{` 之间只允许出现空白；块的结束位置通过括号配平确定，
// 因此嵌套的 @media 等块不会导致提前截断。找不到或括号不配平时返回空串。
func ExtractBlock(source, selector string) string {
	block, _ := FindBlock(source, selector)
	return block
}

// FindBlock 与 ExtractBlock 相同，另外报告块是否存在，用于区分空块 `{}` 与缺失的块
//
// 注释与引号字符串中出现的 selector 不会被当作块的开头。
func FindBlock(source, selector string) (string, bool) {
	if selector == "" {
		return "", false
	}
	for i := 0; i < len(source); {
		switch {
		case strings.HasPrefix(source[i:], "/*"):
			end := strings.Index(source[i+2:], "*/")
			if end < 0 {
				return "", false
			}
			i += end + 4
			continue
		case strings.HasPrefix(source[i:], selector):
			open := skipSpace(source, i+len(selector))
			if open < len(source) && source[open] == '{' {
				if end := matchBrace(source, open); end >= 0 {
					return source[open+1 : end], true
				}
				return "", false
			}
		case source[i] == '"' || source[i] == '\'':
			i = skipString(source, i)
			continue
		}
		i++
	}
	return "", false
}

// skipString 跳过从 i 开始的引号字符串，返回结束引号之后的位置
func skipString(s string, i int) int {
	quote := s[i]
	for i++; i < len(s) && s[i] != quote; i++ {
		if s[i] == '\\' {
			i++
		}
	}
	return i + 1
}

// skipSpace 返回 i 之后第一个非空白字符的位置
func skipSpace(s string, i int) int {
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}
	return i
}

// matchBrace 从 open 位置的 `{` 开始扫描，返回与之配对的 `}` 的位置
// 注释与引号字符串中的括号不参与计数
func matchBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '/':
			if i+1 < len(s) && s[i+1] == '*' {
				end := strings.Index(s[i+2:], "*/")
				if end < 0 {
					return -1
				}
				i += end + 3
			}
		case '"', '\'':
			i = skipString(s, i) - 1
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ExtractVariables 从块文本中解析颜色 token
//
// 以分号与花括号切分语句，逐条匹配 `--name: r g b`。无法匹配、通道数量不对或
// 通道值超出 255 的语句会被静默跳过。同名 token 以后出现者为准。
func ExtractVariables(block string) ThemeVariableSet {
	vars := make(ThemeVariableSet)
	block = commentPattern.ReplaceAllString(block, "")
	stmts := strings.FieldsFunc(block, func(r rune) bool {
		return r == ';' || r == '{' || r == '}'
	})
	for _, stmt := range stmts {
		m := declPattern.FindStringSubmatch(strings.TrimSpace(stmt))
		if m == nil {
			continue
		}
		c, ok := channels(m[2], m[3], m[4])
		if !ok {
			continue
		}
		vars[m[1]] = c
	}
	return vars
}

func channels(r, g, b string) (RGB, bool) {
	var out [3]uint8
	for i, s := range []string{r, g, b} {
		v, err := strconv.Atoi(s)
		if err != nil || v > 255 {
			return RGB{}, false
		}
		out[i] = uint8(v)
	}
	return RGB{out[0], out[1], out[2]}, true
}
