package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/datacore/crew_stats/internal/domain"

	"github.com/tidwall/gjson"
)

const crewJSON = `[
  {"symbol":"kirk","name":"James T. Kirk","max_rarity":5,"archetype_id":42,
   "base_skills":{"command_skill":{"core":1000,"range_min":900,"range_max":1100}},
   "equipment_slots":[{"symbol":"helmet","level":1}],
   "traits_named":["Human"],"collections":["Captains"],"action":{"bonus_amount":5}},
  {"symbol":"spock","name":"Spock","ranks":{"voyRank":2}}
]`

func TestParseCrew(t *testing.T) {
	crew, err := ParseCrew([]byte(crewJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(crew) != 2 {
		t.Fatalf("expected 2 crew, got %d", len(crew))
	}
	k := crew[0]
	if k.Symbol != "kirk" || k.MaxRarity != 5 || len(k.EquipmentSlots) != 1 {
		t.Fatalf("unexpected kirk: %#v", k.CrewMember)
	}
	st, ok := k.StatsFor(domain.Command)
	if !ok || st.Core != 1000 || st.RangeAvg() != 1000 {
		t.Fatalf("unexpected command skill: %#v (ok=%v)", st, ok)
	}
	if crew[1].Ranks[domain.VoyageRankKey] != 2 {
		t.Fatalf("expected existing ranks to parse, got %v", crew[1].Ranks)
	}
}

func TestParseCrew_Errors(t *testing.T) {
	for _, in := range []string{`{"symbol":"kirk"}`, `[1,2]`, `[{"name":"nobody"}]`, `[{`} {
		if _, err := ParseCrew([]byte(in)); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}

func TestEnriched_PreservesUnknownFields(t *testing.T) {
	crew, err := ParseCrew([]byte(crewJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k := crew[0]
	k.TotalChronCost = 580
	k.FactionOnlyTotal = 2
	k.CraftCost = 512.5
	k.Ranks = map[domain.RankKey]int{domain.VoyageRankKey: 1, domain.BaseRankKey(domain.Command): 3}

	b, err := k.Enriched()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gjson.GetBytes(b, "archetype_id").Int(); got != 42 {
		t.Fatalf("archetype_id lost: %s", b)
	}
	if got := gjson.GetBytes(b, "action.bonus_amount").Int(); got != 5 {
		t.Fatalf("action lost: %s", b)
	}
	if got := gjson.GetBytes(b, "totalChronCost").Int(); got != 580 {
		t.Fatalf("expected totalChronCost 580, got %d", got)
	}
	if got := gjson.GetBytes(b, "craftCost").Float(); got != 512.5 {
		t.Fatalf("expected craftCost 512.5, got %v", got)
	}
	if got := gjson.GetBytes(b, "ranks.B_CMD").Int(); got != 3 {
		t.Fatalf("expected ranks.B_CMD 3, got %s", b)
	}
	// The original object is untouched.
	if gjson.GetBytes(k.Raw, "totalChronCost").Exists() {
		t.Fatalf("Raw was modified: %s", k.Raw)
	}

	// Ranks from a previous run are replaced, not merged.
	s := crew[1]
	s.Ranks = nil
	b, err = s.Enriched()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gjson.GetBytes(b, "ranks").Raw; got != "{}" {
		t.Fatalf("expected empty ranks, got %s", got)
	}
}

func TestField(t *testing.T) {
	crew, err := ParseCrew([]byte(crewJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(crew[0].Field("collections")); got != `["Captains"]` {
		t.Fatalf("unexpected collections: %s", got)
	}
	if got := crew[1].Field("collections"); got != nil {
		t.Fatalf("expected nil for absent field, got %s", got)
	}
}

func TestLoadItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.json")
	in := `[{"symbol":"kit","name":"Kit","recipe":{"craftCost":25,"list":[{"symbol":"wire","count":2,"factionOnly":false}]},"item_sources":[]},
{"symbol":"wire","item_sources":[{"type":2,"name":"Battle","cost":6,"chance_grade":4}],"factionOnly":false}]`
	if err := os.WriteFile(path, []byte(in), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	items, err := LoadItems(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Recipe == nil || items[0].Recipe.CraftCost != 25 || items[0].Recipe.List[0].Count != 2 {
		t.Fatalf("unexpected recipe: %#v", items[0].Recipe)
	}
	src := items[1].ItemSources[0]
	if src.Cost == nil || *src.Cost != 6 || src.ChanceGrade == nil || *src.ChanceGrade != 4 || src.AvgCost != nil {
		t.Fatalf("unexpected source: %#v", src)
	}

	if _, err := LoadItems(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
