package output

import (
	"sort"

	"github.com/datacore/crew_stats/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortCrewByName returns a copy of crew ordered by display name, ignoring
// case and diacritics. Equal names fall back to symbol.
func SortCrewByName(crew []*domain.CrewMember) []*domain.CrewMember {
	out := append([]*domain.CrewMember(nil), crew...)
	col := collate.New(language.English, collate.Loose)
	sort.SliceStable(out, func(i, j int) bool {
		if c := col.CompareString(out[i].Name, out[j].Name); c != 0 {
			return c < 0
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}
