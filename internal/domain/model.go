package domain

// Source types that come from missions and therefore cost chronitons.
// Every other type (faction stores and the like) is free of chroniton cost.
const (
	SourceTypeAwayMission = 0
	SourceTypeShipBattle  = 2
)

// EquipmentItem is catalog reference data; it is never mutated after load.
type EquipmentItem struct {
	Symbol      string   `json:"symbol"`
	Name        string   `json:"name,omitempty"`
	Recipe      *Recipe  `json:"recipe,omitempty"`
	ItemSources []Source `json:"item_sources"`
	FactionOnly bool     `json:"factionOnly"`
}

type Recipe struct {
	CraftCost float64       `json:"craftCost"`
	List      []RecipeEntry `json:"list"`
}

type RecipeEntry struct {
	Symbol      string `json:"symbol"`
	Count       int    `json:"count"`
	FactionOnly bool   `json:"factionOnly"`
}

// Source describes one way to obtain an item. Optional numbers are pointers
// so that a missing value is distinguishable from zero.
type Source struct {
	Type        int      `json:"type"`
	Name        string   `json:"name"`
	Cost        *float64 `json:"cost,omitempty"`
	ChanceGrade *float64 `json:"chance_grade,omitempty"`
	AvgCost     *float64 `json:"avg_cost,omitempty"`
}

type EquipmentSlot struct {
	Symbol string `json:"symbol"`
	Level  int    `json:"level"`
}

type SkillStats struct {
	Core     float64 `json:"core"`
	RangeMin float64 `json:"range_min"`
	RangeMax float64 `json:"range_max"`
}

// RangeAvg is the midpoint of the proficiency range.
func (s SkillStats) RangeAvg() float64 {
	return (s.RangeMin + s.RangeMax) / 2
}

type SkillData struct {
	Rarity     int                   `json:"rarity"`
	BaseSkills map[string]SkillStats `json:"base_skills"`
}

// CrewMember holds the fields the calculations read plus the derived fields
// they write. Every other crew.json field is carried through as raw JSON by
// the roster package.
type CrewMember struct {
	Symbol         string                `json:"symbol"`
	Name           string                `json:"name"`
	ShortName      string                `json:"short_name"`
	Series         string                `json:"series"`
	MaxRarity      int                   `json:"max_rarity"`
	EquipmentSlots []EquipmentSlot       `json:"equipment_slots"`
	BaseSkills     map[string]SkillStats `json:"base_skills"`
	SkillData      []SkillData           `json:"skill_data"`
	TraitsNamed    []string              `json:"traits_named"`
	TraitsHidden   []string              `json:"traits_hidden"`

	TotalChronCost   int             `json:"totalChronCost"`
	FactionOnlyTotal int             `json:"factionOnlyTotal"`
	CraftCost        float64         `json:"craftCost"`
	Ranks            map[RankKey]int `json:"ranks"`
}

// Demand is a need for Count units of one base component.
type Demand struct {
	Symbol      string
	Count       int
	Equipment   *EquipmentItem
	FactionOnly bool
}

// CrewDemands is the per-crew result of demand resolution.
type CrewDemands struct {
	CraftCost        float64
	Demands          []*Demand
	FactionOnlyTotal int
	TotalChronCost   int
}

type DemandSummary struct {
	Count       int    `json:"count"`
	FactionOnly bool   `json:"factionOnly"`
	Symbol      string `json:"symbol"`
}

type FactionDemand struct {
	Name      string `json:"name"`
	Count     int    `json:"count"`
	Exclusive int    `json:"exclusive"`
}

type TraitCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SkillSetCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// MiscStats is the roster-wide summary written to misc_stats.json.
type MiscStats struct {
	AllDemands []DemandSummary `json:"alldemands"`
	PerFaction []FactionDemand `json:"perFaction"`
	PerTrait   []TraitCount    `json:"perTrait"`
	SkillSets  []SkillSetCount `json:"skillSets"`
}

// CrewMeta is supplementary per-crew metadata; it only decorates outputs.
type CrewMeta struct {
	BigBookTier int    `yaml:"bigbook_tier"`
	Events      int    `yaml:"events"`
	InPortal    bool   `yaml:"in_portal"`
	Markdown    string `yaml:"-"`
}
