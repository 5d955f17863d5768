package demand

import (
	"sort"

	"github.com/datacore/crew_stats/internal/domain"
)

// TraitTally counts how many crew members carry each trait, named and
// hidden combined.
type TraitTally struct {
	counts map[string]int
	order  []string
}

func NewTraitTally() *TraitTally {
	return &TraitTally{counts: make(map[string]int)}
}

// Add counts each distinct trait of c once.
func (t *TraitTally) Add(c *domain.CrewMember) {
	seen := make(map[string]struct{}, len(c.TraitsNamed)+len(c.TraitsHidden))
	for _, traits := range [][]string{c.TraitsNamed, c.TraitsHidden} {
		for _, trait := range traits {
			if _, dup := seen[trait]; dup {
				continue
			}
			seen[trait] = struct{}{}
			if _, ok := t.counts[trait]; !ok {
				t.order = append(t.order, trait)
			}
			t.counts[trait]++
		}
	}
}

// Counts returns traits sorted by count, highest first; ties keep
// first-seen order.
func (t *TraitTally) Counts() []domain.TraitCount {
	out := make([]domain.TraitCount, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, domain.TraitCount{Name: name, Count: t.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
