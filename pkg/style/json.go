package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将任意值缩进编码后带高亮输出到 writer
// 颜色能力由 writer 决定，重定向到文件或管道时自动退化为纯文本
func PrintJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, ColorizeJSON(NewRenderer(w, true), string(b)))
	return err
}

// ColorizeJSON 对已经缩进好的 JSON 文本进行轻量高亮，缩进与空白保持原样
func ColorizeJSON(re *lipgloss.Renderer, s string) string {
	key := re.NewStyle().Foreground(ColorJSONKey).Bold(true)
	str := re.NewStyle().Foreground(ColorText)
	num := re.NewStyle().Foreground(ColorJSONNumber)
	boolean := re.NewStyle().Foreground(ColorJSONBool)
	null := re.NewStyle().Foreground(ColorJSONNull)
	punct := re.NewStyle().Foreground(ColorJSONPunct)

	var b strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == '"':
			end := stringEnd(s, i)
			token := s[i:end]
			if nextNonSpace(s, end) == ':' {
				b.WriteString(key.Render(token))
			} else {
				b.WriteString(str.Render(token))
			}
			i = end
		case strings.IndexByte("{}[],:", ch) >= 0:
			b.WriteString(punct.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			j := i + 1
			for j < len(s) && strings.IndexByte("0123456789.eE+-", s[j]) >= 0 {
				j++
			}
			b.WriteString(num.Render(s[i:j]))
			i = j
		case strings.HasPrefix(s[i:], "true"), strings.HasPrefix(s[i:], "false"):
			j := i + 4
			if s[i] == 'f' {
				j++
			}
			b.WriteString(boolean.Render(s[i:j]))
			i = j
		case strings.HasPrefix(s[i:], "null"):
			b.WriteString(null.Render("null"))
			i += 4
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// stringEnd 返回从 start 处引号开始的字符串 token 的结束位置（不含）
func stringEnd(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}

func nextNonSpace(s string, i int) byte {
	for ; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\n' && s[i] != '\t' && s[i] != '\r' {
			return s[i]
		}
	}
	return 0
}
