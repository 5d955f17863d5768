// Package demand expands crew equipment needs into base component demands,
// estimates their chroniton cost and aggregates them across the roster.
package demand

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/datacore/crew_stats/internal/catalog"
	"github.com/datacore/crew_stats/internal/domain"
)

// ErrUnknownEquipment means an equipment symbol is missing from the catalog.
// The catalog is expected to be complete, so callers abort the run.
var ErrUnknownEquipment = errors.New("unknown equipment")

// List is an ordered demand list with at most one entry per symbol.
type List struct {
	index map[string]*domain.Demand
	items []*domain.Demand
}

func NewList() *List {
	return &List{index: make(map[string]*domain.Demand)}
}

// Has reports whether symbol has been seen.
func (l *List) Has(symbol string) bool {
	_, ok := l.index[symbol]
	return ok
}

// add bumps an existing demand or appends a new one. factionOnly is only
// recorded for new entries.
func (l *List) add(symbol string, count int, item *domain.EquipmentItem, factionOnly bool) {
	if d, ok := l.index[symbol]; ok {
		d.Count += count
		return
	}
	d := &domain.Demand{Symbol: symbol, Count: count, Equipment: item, FactionOnly: factionOnly}
	l.index[symbol] = d
	l.items = append(l.items, d)
}

// Items returns the demands in first-seen order.
func (l *List) Items() []*domain.Demand {
	return l.items
}

type Resolver struct {
	catalog   *catalog.Catalog
	estimator Estimator
	log       *slog.Logger
}

func NewResolver(cat *catalog.Catalog, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		catalog:   cat,
		estimator: NewEstimator(logger),
		log:       logger,
	}
}

func (r *Resolver) lookup(symbol string) (*domain.EquipmentItem, error) {
	it, ok := r.catalog.Lookup(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEquipment, symbol)
	}
	return it, nil
}

// ResolveSlot adds the demands of one equipment slot to list and returns the
// slot's craft cost. A slot item without a recipe is itself one unit of
// demand and costs nothing to craft. A craftable slot item contributes its
// recipe components (one level only; components with their own recipe are
// not expanded) and its flat recipe craft cost.
func (r *Resolver) ResolveSlot(slot domain.EquipmentSlot, list *List) (float64, error) {
	item, err := r.lookup(slot.Symbol)
	if err != nil {
		return 0, err
	}

	if item.Recipe == nil {
		list.add(item.Symbol, 1, item, item.FactionOnly)
		return 0, nil
	}

	for _, entry := range item.Recipe.List {
		component, err := r.lookup(entry.Symbol)
		if err != nil {
			return 0, fmt.Errorf("recipe of %s: %w", item.Symbol, err)
		}
		if !list.Has(entry.Symbol) && len(component.ItemSources) == 0 && component.Recipe == nil {
			r.log.Warn("equipment has neither recipe nor sources",
				"symbol", component.Symbol,
				"name", component.Name,
				"used_by", item.Symbol,
			)
		}
		list.add(entry.Symbol, entry.Count, component, entry.FactionOnly)
	}

	return item.Recipe.CraftCost, nil
}

// CrewDemands resolves every equipment slot of c into one deduplicated demand
// list and derives the crew totals from it.
func (r *Resolver) CrewDemands(c *domain.CrewMember) (domain.CrewDemands, error) {
	list := NewList()
	craftCost := 0.0
	for _, slot := range c.EquipmentSlots {
		cost, err := r.ResolveSlot(slot, list)
		if err != nil {
			return domain.CrewDemands{}, fmt.Errorf("crew %s: %w", c.Symbol, err)
		}
		craftCost += cost
	}

	demands := list.Items()
	factionOnly := 0
	chron := 0.0
	for _, d := range demands {
		if d.FactionOnly {
			factionOnly += d.Count
		}
		// One estimate per distinct item, not scaled by Count.
		chron += r.estimator.Estimate(d.Equipment)
	}

	return domain.CrewDemands{
		CraftCost:        craftCost,
		Demands:          demands,
		FactionOnlyTotal: factionOnly,
		TotalChronCost:   int(math.Floor(chron)),
	}, nil
}

// Apply stores the crew totals on c.
func Apply(c *domain.CrewMember, d domain.CrewDemands) {
	c.TotalChronCost = d.TotalChronCost
	c.FactionOnlyTotal = d.FactionOnlyTotal
	c.CraftCost = d.CraftCost
}
