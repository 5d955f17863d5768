package demand

import (
	"sort"
	"strings"

	"github.com/datacore/crew_stats/internal/domain"
)

const transmissionSuffix = " Transmission"

// Aggregator merges per-crew demand lists into roster-wide totals. It is not
// safe for concurrent use; callers that resolve crew in parallel must
// serialize Add.
type Aggregator struct {
	list *List
}

func NewAggregator() *Aggregator {
	return &Aggregator{list: NewList()}
}

// Add merges one crew member's demands. Entries are copied, so the per-crew
// list is never modified.
func (a *Aggregator) Add(demands []*domain.Demand) {
	for _, d := range demands {
		a.list.add(d.Symbol, d.Count, d.Equipment, d.FactionOnly)
	}
}

// Demands returns the merged demands sorted by count, highest first. Ties
// keep first-seen order.
func (a *Aggregator) Demands() []*domain.Demand {
	out := make([]*domain.Demand, len(a.list.items))
	copy(out, a.list.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Summaries is Demands without the equipment references.
func (a *Aggregator) Summaries() []domain.DemandSummary {
	demands := a.Demands()
	out := make([]domain.DemandSummary, 0, len(demands))
	for _, d := range demands {
		out = append(out, domain.DemandSummary{Count: d.Count, FactionOnly: d.FactionOnly, Symbol: d.Symbol})
	}
	return out
}

type factionBucket struct {
	name      string
	count     int
	exclusive int
}

// PerFaction splits faction-only demand by source. Every source of a
// faction-only item receives its full count; items with a single source
// also count as exclusive to it. The result is sorted by exclusive count,
// lowest first.
func (a *Aggregator) PerFaction() []domain.FactionDemand {
	buckets := make(map[string]*factionBucket)
	var order []*factionBucket

	for _, d := range a.Demands() {
		if !d.FactionOnly || d.Equipment == nil {
			continue
		}
		sources := d.Equipment.ItemSources
		for _, src := range sources {
			b, ok := buckets[src.Name]
			if !ok {
				b = &factionBucket{name: src.Name}
				buckets[src.Name] = b
				order = append(order, b)
			}
			b.count += d.Count
			if len(sources) == 1 {
				b.exclusive += d.Count
			}
		}
	}

	out := make([]domain.FactionDemand, 0, len(order))
	for _, b := range order {
		out = append(out, domain.FactionDemand{
			Name:      strings.TrimSuffix(b.name, transmissionSuffix),
			Count:     b.count,
			Exclusive: b.exclusive,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Exclusive < out[j].Exclusive
	})
	return out
}
