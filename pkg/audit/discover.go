package audit

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/yeisme/wcagcheck/pkg/configs"
	"github.com/yeisme/wcagcheck/pkg/style"
	"github.com/yeisme/wcagcheck/pkg/utils/fsop"
	"github.com/yeisme/wcagcheck/pkg/utils/gitignore"
)

// Discover 在 root 下查找可能的 token 源文件，遵循 root 下的 .gitignore
func Discover(fs afero.Fs, root string) ([]string, error) {
	gi, err := gitignore.LoadGitIgnoreFromDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to load .gitignore: %w", err)
	}
	sources, err := fsop.FindTokenSources(fs, root, gi)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", root, err)
	}
	return sources, nil
}

// WriteSources 输出查找到的文件
func WriteSources(w io.Writer, sources []string, format configs.OutputFormat, color bool) error {
	if format != configs.FormatText {
		return configs.OutputData(map[string][]string{"sources": sources}, format, w, color)
	}
	if len(sources) == 0 {
		_, err := fmt.Fprintln(w, "no token sources found")
		return err
	}
	return style.PrintList(w, style.NewRenderer(w, color), lo.ToAnySlice(sources)...)
}
