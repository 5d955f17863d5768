package output

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/datacore/crew_stats/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	SheetCrew      = "Crew"
	SheetDemands   = "Demands"
	SheetFactions  = "Factions"
	SheetTraits    = "Traits"
	SheetSkillSets = "Skill Sets"
)

// crewLead are the Crew sheet columns before the per-skill groups.
var crewLead = []string{"Name", "Rarity", "Short name", "Series", "Tier"}

// skillMetrics are the columns under each skill: the core value at rarity
// 1 through 5, then the proficiency range at max rarity.
var skillMetrics = []string{"#1", "#2", "#3", "#4", "#5", "Min", "Max"}

// crewTail are the Crew sheet columns after the per-skill groups.
var crewTail = []string{"Craft cost", "Chronitons", "Faction only", "Voyage rank", "Gauntlet rank", "Traits", "Alien", "Female"}

var seriesNames = map[string]string{
	"tos": "The Original Series",
	"tas": "The Animated Series",
	"tng": "The Next Generation",
	"ent": "Enterprise",
	"voy": "Voyager",
	"ds9": "Deep Space Nine",
	"dsc": "Discovery",
	"pic": "Picard",
}

// seriesName expands a series code. Crew without one come from the movies;
// unknown codes are shown as is.
func seriesName(code string) string {
	if code == "" {
		return "Movies"
	}
	if name, ok := seriesNames[code]; ok {
		return name
	}
	return code
}

// skillCells fills one skill group. A crew without the skill, or with a zero
// core, gets an empty group.
func skillCells(c *domain.CrewMember, sk domain.Skill) []any {
	cells := make([]any, len(skillMetrics))
	st, ok := c.StatsFor(sk)
	if !ok || st.Core == 0 {
		return cells
	}
	if c.MaxRarity >= 1 && c.MaxRarity <= 5 {
		cells[c.MaxRarity-1] = st.Core
	}
	cells[5], cells[6] = st.RangeMin, st.RangeMax
	for _, sd := range c.SkillData {
		if sd.Rarity < 1 || sd.Rarity > 5 {
			continue
		}
		if v, ok := sd.BaseSkills[sk.Name()]; ok {
			cells[sd.Rarity-1] = v.Core
		}
	}
	return cells
}

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", colName(col), row)
}

// WorkbookInput is everything the workbook is built from.
type WorkbookInput struct {
	Crew  []*domain.CrewMember
	Stats domain.MiscStats
	Meta  map[string]domain.CrewMeta
	// TierLimit hides big book tiers at or above it; 0 shows every tier.
	TierLimit int
}

// ExportWorkbook writes a plain workbook with one sheet per table.
func ExportWorkbook(path string, in WorkbookInput) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", SheetCrew); err != nil {
		return err
	}
	if err := writeCrewSheet(f, headerStyleID, in); err != nil {
		return fmt.Errorf("crew sheet: %w", err)
	}

	demands := make([][]any, 0, len(in.Stats.AllDemands))
	for _, d := range in.Stats.AllDemands {
		demands = append(demands, []any{d.Symbol, d.Count, d.FactionOnly})
	}
	if err := writeTable(f, headerStyleID, SheetDemands, []string{"Symbol", "Count", "Faction only"}, demands); err != nil {
		return err
	}

	factions := make([][]any, 0, len(in.Stats.PerFaction))
	for _, d := range in.Stats.PerFaction {
		factions = append(factions, []any{d.Name, d.Count, d.Exclusive})
	}
	if err := writeTable(f, headerStyleID, SheetFactions, []string{"Faction", "Count", "Exclusive"}, factions); err != nil {
		return err
	}

	traits := make([][]any, 0, len(in.Stats.PerTrait))
	for _, t := range in.Stats.PerTrait {
		traits = append(traits, []any{t.Name, t.Count})
	}
	if err := writeTable(f, headerStyleID, SheetTraits, []string{"Trait", "Crew"}, traits); err != nil {
		return err
	}

	sets := make([][]any, 0, len(in.Stats.SkillSets))
	for _, s := range in.Stats.SkillSets {
		sets = append(sets, []any{s.Name, s.Value})
	}
	if err := writeTable(f, headerStyleID, SheetSkillSets, []string{"Skills", "Crew"}, sets); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeTable(f *excelize.File, headerStyleID int, sheet string, header []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("%s sheet: %w", sheet, err)
	}
	for i, h := range header {
		if err := f.SetCellValue(sheet, cell(i+1, 1), h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", cell(len(header), 1), headerStyleID); err != nil {
		return err
	}
	for r, row := range rows {
		for c, v := range row {
			if err := f.SetCellValue(sheet, cell(c+1, r+2), v); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeCrewSheet uses two header rows: row 1 names the skill over its
// merged metric columns, row 2 names the metrics.
func writeCrewSheet(f *excelize.File, headerStyleID int, in WorkbookInput) error {
	sheet := SheetCrew

	col := 1
	for _, h := range crewLead {
		if err := f.SetCellValue(sheet, cell(col, 1), h); err != nil {
			return err
		}
		_ = f.MergeCell(sheet, cell(col, 1), cell(col, 2))
		col++
	}
	for _, sk := range domain.Skills {
		start := col
		if err := f.SetCellValue(sheet, cell(start, 1), sk.Code()); err != nil {
			return err
		}
		_ = f.MergeCell(sheet, cell(start, 1), cell(start+len(skillMetrics)-1, 1))
		for i, m := range skillMetrics {
			if err := f.SetCellValue(sheet, cell(start+i, 2), m); err != nil {
				return err
			}
		}
		col += len(skillMetrics)
	}
	for _, h := range crewTail {
		if err := f.SetCellValue(sheet, cell(col, 1), h); err != nil {
			return err
		}
		_ = f.MergeCell(sheet, cell(col, 1), cell(col, 2))
		col++
	}
	lastCol := col - 1
	if err := f.SetCellStyle(sheet, "A1", cell(lastCol, 2), headerStyleID); err != nil {
		return err
	}

	for i, c := range SortCrewByName(in.Crew) {
		row := i + 3
		values := []any{c.Name, c.MaxRarity, c.ShortName, seriesName(c.Series), tierCell(in.Meta, c.Symbol, in.TierLimit)}
		for _, sk := range domain.Skills {
			values = append(values, skillCells(c, sk)...)
		}
		values = append(values,
			c.CraftCost,
			c.TotalChronCost,
			c.FactionOnlyTotal,
			rankCell(c, domain.VoyageRankKey),
			rankCell(c, domain.GauntletRankKey),
			strings.Join(c.TraitsNamed, ","),
			slices.Contains(c.TraitsHidden, "nonhuman"),
			slices.Contains(c.TraitsHidden, "female"),
		)
		for j, v := range values {
			if v == nil {
				continue
			}
			if err := f.SetCellValue(sheet, cell(j+1, row), v); err != nil {
				return err
			}
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      2,
		TopLeftCell: "B3",
		ActivePane:  "bottomRight",
	})
}

func tierCell(meta map[string]domain.CrewMeta, symbol string, limit int) any {
	m, ok := meta[symbol]
	if !ok || m.BigBookTier <= 0 {
		return nil
	}
	if limit > 0 && m.BigBookTier >= limit {
		return nil
	}
	return m.BigBookTier
}

func rankCell(c *domain.CrewMember, key domain.RankKey) any {
	r, ok := c.Ranks[key]
	if !ok {
		return nil
	}
	return r
}
