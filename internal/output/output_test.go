package output

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datacore/crew_stats/internal/domain"
	"github.com/datacore/crew_stats/internal/roster"

	"github.com/xuri/excelize/v2"
)

func testCrew(t *testing.T) []*roster.Crew {
	t.Helper()
	crew, err := roster.ParseCrew([]byte(`[
		{"symbol":"zhora","name":"Zhora","max_rarity":4,"imageUrlPortrait":"zhora.png",
		 "base_skills":{"science_skill":{"core":800,"range_min":100,"range_max":200}},"traits_named":["Hologram"],
		 "traits_hidden":["female","nonhuman"]},
		{"symbol":"emh","name":"Émile","series":"voy","max_rarity":5,"collections":["Doctors"],
		 "base_skills":{"medicine_skill":{"core":1200,"range_min":300,"range_max":500}},"traits_named":["Doctor","Hologram"],
		 "skill_data":[
		   {"rarity":1,"base_skills":{"medicine_skill":{"core":300,"range_min":50,"range_max":90}}},
		   {"rarity":4,"base_skills":{"medicine_skill":{"core":900,"range_min":200,"range_max":400}}}],
		 "traits_hidden":["nonhuman"]},
		{"symbol":"archer","name":"archer","series":"ent","max_rarity":3,
		 "base_skills":{"command_skill":{"core":0,"range_min":10,"range_max":20}}}
	]`))
	if err != nil {
		t.Fatalf("parse crew: %v", err)
	}
	crew[0].TotalChronCost = 100
	crew[1].Ranks = map[domain.RankKey]int{domain.VoyageRankKey: 1, domain.GauntletRankKey: 2}
	return crew
}

func TestSortCrewByName(t *testing.T) {
	crew := roster.Members(testCrew(t))
	got := SortCrewByName(crew)
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	if strings.Join(names, ",") != "archer,Émile,Zhora" {
		t.Fatalf("unexpected order: %v", names)
	}
	if crew[0].Symbol != "zhora" {
		t.Fatalf("input slice was reordered")
	}
}

func TestWriteMiscStats_EmptyListsAreArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "misc_stats.json")
	if err := WriteMiscStats(path, domain.MiscStats{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := `{"alldemands":[],"perFaction":[],"perTrait":[],"skillSets":[]}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}

	stats, err := ReadMiscStats(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if stats.AllDemands == nil || len(stats.AllDemands) != 0 {
		t.Fatalf("unexpected stats: %#v", stats)
	}
}

func TestWriteCrew_RoundTrip(t *testing.T) {
	crew := testCrew(t)
	path := filepath.Join(t.TempDir(), "crew.json")
	if err := WriteCrew(path, crew); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := roster.LoadCrew(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(again) != 3 || again[0].TotalChronCost != 100 || again[1].Ranks[domain.GauntletRankKey] != 2 {
		t.Fatalf("unexpected reload: %#v", again)
	}
	if string(again[0].Field("imageUrlPortrait")) != `"zhora.png"` {
		t.Fatalf("unknown field lost: %s", again[0].Raw)
	}
}

func TestBuildBotCrew(t *testing.T) {
	crew := testCrew(t)
	metas := map[string]domain.CrewMeta{
		"zhora": {BigBookTier: 4, Events: 3, Markdown: "Computer voice."},
		"emh":   {InPortal: true},
	}
	bots := BuildBotCrew(crew, metas, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if len(bots) != 2 {
		t.Fatalf("expected crew without metadata to be dropped, got %d bots", len(bots))
	}
	if bots[0].Symbol != "zhora" || bots[0].BigBookTier != 4 || bots[0].MarkdownContent != "Computer voice." {
		t.Fatalf("unexpected first bot: %#v", bots[0])
	}
	if !bots[1].InPortal || string(bots[1].Collections) != `["Doctors"]` {
		t.Fatalf("unexpected second bot: %#v", bots[1])
	}

	path := filepath.Join(t.TempDir(), "botcrew.json")
	if err := WriteBotCrew(path, bots); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded []map[string]json.RawMessage
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded[1]["ranks"]) != `{"gauntletRank":2,"voyRank":1}` {
		t.Fatalf("unexpected ranks: %s", decoded[1]["ranks"])
	}
	if _, ok := decoded[1]["imageUrlPortrait"]; ok {
		t.Fatalf("absent passthrough field should be omitted")
	}
	if string(decoded[0]["ranks"]) != `{}` {
		t.Fatalf("expected empty ranks object, got %s", decoded[0]["ranks"])
	}
}

func TestExportWorkbook(t *testing.T) {
	crew := testCrew(t)
	path := filepath.Join(t.TempDir(), "crew.xlsx")
	in := WorkbookInput{
		Crew: roster.Members(crew),
		Stats: domain.MiscStats{
			AllDemands: []domain.DemandSummary{{Symbol: "wire", Count: 4}, {Symbol: "badge", Count: 2, FactionOnly: true}},
			PerFaction: []domain.FactionDemand{{Name: "Federation", Count: 2, Exclusive: 2}},
			PerTrait:   []domain.TraitCount{{Name: "Hologram", Count: 2}},
		},
		Meta: map[string]domain.CrewMeta{
			"zhora": {BigBookTier: 25},
			"emh":   {BigBookTier: 2},
		},
		TierLimit: 20,
	}
	if err := ExportWorkbook(path, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = f.Close() }()

	want := []string{SheetCrew, SheetDemands, SheetFactions, SheetTraits, SheetSkillSets}
	if got := f.GetSheetList(); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}

	rows, err := f.GetRows(SheetCrew)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 2 header rows and 3 crew rows, got %d", len(rows))
	}
	lead := len(crewLead)
	if rows[0][0] != "Name" || rows[0][lead] != domain.Skills[0].Code() || rows[1][lead] != "#1" || rows[1][lead+5] != "Min" {
		t.Fatalf("unexpected headers: %v / %v", rows[0], rows[1])
	}
	// archer, Émile, Zhora
	if rows[2][0] != "archer" || rows[3][0] != "Émile" || rows[4][0] != "Zhora" {
		t.Fatalf("unexpected crew order: %v", rows[2:])
	}
	if rows[3][4] != "2" {
		t.Fatalf("expected tier 2 for Émile, got %q", rows[3][4])
	}
	if rows[4][4] != "" {
		t.Fatalf("tier at or above the limit should be blank, got %q", rows[4][4])
	}
	if rows[2][3] != "Enterprise" || rows[3][3] != "Voyager" || rows[4][3] != "Movies" {
		t.Fatalf("unexpected series: %q %q %q", rows[2][3], rows[3][3], rows[4][3])
	}

	skillCol := func(sk domain.Skill, metric int) int {
		for i, s := range domain.Skills {
			if s == sk {
				return lead + i*len(skillMetrics) + metric
			}
		}
		t.Fatalf("unknown skill %v", sk)
		return -1
	}
	med := func(metric int) string { return rows[3][skillCol(domain.Medicine, metric)] }
	if med(0) != "300" || med(1) != "" || med(2) != "" || med(3) != "900" || med(4) != "1200" {
		t.Fatalf("unexpected medicine by rarity for Émile: %v", rows[3][skillCol(domain.Medicine, 0):skillCol(domain.Medicine, 5)])
	}
	if med(5) != "300" || med(6) != "500" {
		t.Fatalf("expected the max rarity range for Émile, got %q..%q", med(5), med(6))
	}
	if got := rows[4][skillCol(domain.Science, 3)]; got != "800" {
		t.Fatalf("expected Zhora's science at rarity 4, got %q", got)
	}
	for m := range skillMetrics {
		if got := rows[2][skillCol(domain.Command, m)]; got != "" {
			t.Fatalf("a zero core leaves the skill group empty, got %q at %d", got, m)
		}
	}

	tail := lead + len(domain.Skills)*len(skillMetrics)
	if rows[3][tail+3] != "1" {
		t.Fatalf("expected voyRank 1 for Émile, got %v", rows[3])
	}
	if rows[3][tail+5] != "Doctor,Hologram" {
		t.Fatalf("unexpected traits: %q", rows[3][tail+5])
	}
	alienFemale := func(row []string) string { return row[tail+6] + "/" + row[tail+7] }
	if alienFemale(rows[2]) != "FALSE/FALSE" || alienFemale(rows[3]) != "TRUE/FALSE" || alienFemale(rows[4]) != "TRUE/TRUE" {
		t.Fatalf("unexpected alien/female: %s %s %s", alienFemale(rows[2]), alienFemale(rows[3]), alienFemale(rows[4]))
	}

	demands, err := f.GetRows(SheetDemands)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(demands) != 3 || demands[1][0] != "wire" || demands[2][2] != "TRUE" {
		t.Fatalf("unexpected demands sheet: %v", demands)
	}

	var buf bytes.Buffer
	PrintSummary(&buf, RunSummary{Crew: 1234, Items: 56, Stats: in.Stats, Written: []string{path}})
	if !strings.Contains(buf.String(), "1,234 crew") || !strings.Contains(buf.String(), "6 units") {
		t.Fatalf("unexpected summary: %s", buf.String())
	}
}
