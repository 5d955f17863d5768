package ranking

import (
	"sort"
	"strings"

	"github.com/datacore/crew_stats/internal/domain"
)

// SkillSetCounts counts the skill combinations of 4 and 5 star crew with
// exactly three skills, keyed like "CMD.DIP.SEC". Lowest counts first.
func SkillSetCounts(crew []*domain.CrewMember) []domain.SkillSetCount {
	counts := make(map[string]int)
	var order []string
	for _, c := range crew {
		if c.MaxRarity != 4 && c.MaxRarity != 5 {
			continue
		}
		if len(c.BaseSkills) != 3 {
			continue
		}
		codes := make([]string, 0, 3)
		for name := range c.BaseSkills {
			if sk, ok := domain.SkillByName(name); ok {
				codes = append(codes, sk.Code())
			} else {
				codes = append(codes, name)
			}
		}
		sort.Strings(codes)
		combo := strings.Join(codes, ".")
		if _, ok := counts[combo]; !ok {
			order = append(order, combo)
		}
		counts[combo]++
	}

	out := make([]domain.SkillSetCount, 0, len(order))
	for _, combo := range order {
		out = append(out, domain.SkillSetCount{Name: combo, Value: counts[combo]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}
