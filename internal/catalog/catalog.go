// Package catalog provides read-only lookup of equipment items by symbol.
package catalog

import (
	"fmt"

	"github.com/datacore/crew_stats/internal/domain"
)

// Catalog maps item symbols to items. It is built once and never mutated,
// so it can be shared freely.
type Catalog struct {
	bySymbol map[string]*domain.EquipmentItem
}

// New indexes items by symbol. Duplicate symbols are rejected.
func New(items []domain.EquipmentItem) (*Catalog, error) {
	m := make(map[string]*domain.EquipmentItem, len(items))
	for i := range items {
		it := &items[i]
		if it.Symbol == "" {
			return nil, fmt.Errorf("catalog: item at index %d has empty symbol", i)
		}
		if _, dup := m[it.Symbol]; dup {
			return nil, fmt.Errorf("catalog: duplicate item symbol %q", it.Symbol)
		}
		m[it.Symbol] = it
	}
	return &Catalog{bySymbol: m}, nil
}

func (c *Catalog) Lookup(symbol string) (*domain.EquipmentItem, bool) {
	it, ok := c.bySymbol[symbol]
	return it, ok
}

func (c *Catalog) Len() int {
	return len(c.bySymbol)
}
