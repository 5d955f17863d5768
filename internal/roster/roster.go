// Package roster loads crew.json and items.json and writes the derived crew
// fields back without dropping any field the calculations do not model.
package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/datacore/crew_stats/internal/domain"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Crew pairs the parsed crew member with its original JSON object.
type Crew struct {
	domain.CrewMember
	Raw []byte
}

func LoadItems(path string) ([]domain.EquipmentItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items (%s): %w", path, err)
	}
	var items []domain.EquipmentItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse items (%s): %w", path, err)
	}
	return items, nil
}

func LoadCrew(path string) ([]*Crew, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read crew (%s): %w", path, err)
	}
	return ParseCrew(b)
}

// ParseCrew parses a JSON array of crew objects.
func ParseCrew(b []byte) ([]*Crew, error) {
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("parse crew: invalid JSON")
	}
	root := gjson.ParseBytes(b)
	if !root.IsArray() {
		return nil, fmt.Errorf("parse crew: expected a JSON array")
	}

	elems := root.Array()
	out := make([]*Crew, 0, len(elems))
	for i, el := range elems {
		if !el.IsObject() {
			return nil, fmt.Errorf("parse crew[%d]: expected an object", i)
		}
		raw := []byte(el.Raw)
		c := &Crew{Raw: raw}
		if err := json.Unmarshal(raw, &c.CrewMember); err != nil {
			return nil, fmt.Errorf("parse crew[%d]: %w", i, err)
		}
		if c.Symbol == "" {
			return nil, fmt.Errorf("parse crew[%d]: missing symbol", i)
		}
		out = append(out, c)
	}
	return out, nil
}

// Members returns the parsed crew members in roster order. The pointers
// alias the Crew values, so calculations write straight through.
func Members(crew []*Crew) []*domain.CrewMember {
	out := make([]*domain.CrewMember, 0, len(crew))
	for _, c := range crew {
		out = append(out, &c.CrewMember)
	}
	return out
}

// Enriched returns the original crew object with totalChronCost,
// factionOnlyTotal, craftCost and ranks set from the parsed member.
func (c *Crew) Enriched() ([]byte, error) {
	out := append([]byte(nil), c.Raw...)
	var err error
	if out, err = sjson.SetBytes(out, "totalChronCost", c.TotalChronCost); err != nil {
		return nil, fmt.Errorf("crew %s: set totalChronCost: %w", c.Symbol, err)
	}
	if out, err = sjson.SetBytes(out, "factionOnlyTotal", c.FactionOnlyTotal); err != nil {
		return nil, fmt.Errorf("crew %s: set factionOnlyTotal: %w", c.Symbol, err)
	}
	if out, err = sjson.SetBytes(out, "craftCost", c.CraftCost); err != nil {
		return nil, fmt.Errorf("crew %s: set craftCost: %w", c.Symbol, err)
	}

	ranks := c.Ranks
	if ranks == nil {
		ranks = map[domain.RankKey]int{}
	}
	rb, err := json.Marshal(ranks)
	if err != nil {
		return nil, fmt.Errorf("crew %s: marshal ranks: %w", c.Symbol, err)
	}
	if out, err = sjson.SetRawBytes(out, "ranks", rb); err != nil {
		return nil, fmt.Errorf("crew %s: set ranks: %w", c.Symbol, err)
	}
	return out, nil
}

// Field returns a raw top-level field of the original object, or nil when
// the field is absent.
func (c *Crew) Field(name string) json.RawMessage {
	r := gjson.GetBytes(c.Raw, gjson.Escape(name))
	if !r.Exists() {
		return nil
	}
	return json.RawMessage(r.Raw)
}
