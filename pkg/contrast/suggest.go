package contrast

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// maxSuggestions 每个缺失 token 最多给出的候选数
const maxSuggestions = 3

// Suggest 为缺失的 token 名称在主题中查找近似候选
// 候选按编辑距离升序排列并去重，用于报告中的 "did you mean" 提示
func Suggest(vars ThemeVariableSet, missing ...string) []string {
	if len(vars) == 0 {
		return nil
	}
	names := vars.Names()

	var out []string
	for _, m := range missing {
		m = strings.TrimPrefix(m, "--")
		type candidate struct {
			name string
			dist int
		}
		var cands []candidate
		limit := max(2, len(m)/4)
		for _, name := range names {
			d := fuzzy.LevenshteinDistance(m, name)
			if d <= limit || fuzzy.MatchFold(m, name) {
				cands = append(cands, candidate{name: name, dist: d})
			}
		}
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
		for i := 0; i < len(cands) && i < maxSuggestions; i++ {
			out = append(out, cands[i].name)
		}
	}
	return lo.Uniq(out)
}
