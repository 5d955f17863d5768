package output

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/datacore/crew_stats/internal/domain"
	"github.com/datacore/crew_stats/internal/roster"
)

// BotCrew is the per-crew record consumed by the chat bot. Fields the
// calculations never model are copied from the crew JSON untouched.
type BotCrew struct {
	ArchetypeID      json.RawMessage        `json:"archetype_id,omitempty"`
	Symbol           string                 `json:"symbol"`
	Name             string                 `json:"name"`
	ShortName        string                 `json:"short_name"`
	MaxRarity        int                    `json:"max_rarity"`
	TraitsNamed      []string               `json:"traits_named"`
	TraitsHidden     []string               `json:"traits_hidden"`
	ImageURLPortrait json.RawMessage        `json:"imageUrlPortrait,omitempty"`
	Collections      json.RawMessage        `json:"collections,omitempty"`
	TotalChronCost   int                    `json:"totalChronCost"`
	FactionOnlyTotal int                    `json:"factionOnlyTotal"`
	CraftCost        float64                `json:"craftCost"`
	BigBookTier      int                    `json:"bigbook_tier,omitempty"`
	Events           int                    `json:"events"`
	Ranks            map[domain.RankKey]int `json:"ranks"`
	BaseSkills       json.RawMessage        `json:"base_skills,omitempty"`
	SkillData        json.RawMessage        `json:"skill_data,omitempty"`
	InPortal         bool                   `json:"in_portal"`
	MarkdownContent  string                 `json:"markdownContent"`
	Action           json.RawMessage        `json:"action,omitempty"`
	ShipBattle       json.RawMessage        `json:"ship_battle,omitempty"`
}

// BuildBotCrew joins crew with their metadata. Crew without metadata are
// logged and left out.
func BuildBotCrew(crew []*roster.Crew, metas map[string]domain.CrewMeta, logger *slog.Logger) []BotCrew {
	if logger == nil {
		logger = slog.Default()
	}
	out := make([]BotCrew, 0, len(crew))
	for _, c := range crew {
		m, ok := metas[c.Symbol]
		if !ok {
			logger.Warn("crew left out of bot export: no metadata", "symbol", c.Symbol, "name", c.Name)
			continue
		}
		ranks := c.Ranks
		if ranks == nil {
			ranks = map[domain.RankKey]int{}
		}
		out = append(out, BotCrew{
			ArchetypeID:      c.Field("archetype_id"),
			Symbol:           c.Symbol,
			Name:             c.Name,
			ShortName:        c.ShortName,
			MaxRarity:        c.MaxRarity,
			TraitsNamed:      c.TraitsNamed,
			TraitsHidden:     c.TraitsHidden,
			ImageURLPortrait: c.Field("imageUrlPortrait"),
			Collections:      c.Field("collections"),
			TotalChronCost:   c.TotalChronCost,
			FactionOnlyTotal: c.FactionOnlyTotal,
			CraftCost:        c.CraftCost,
			BigBookTier:      m.BigBookTier,
			Events:           m.Events,
			Ranks:            ranks,
			BaseSkills:       c.Field("base_skills"),
			SkillData:        c.Field("skill_data"),
			InPortal:         m.InPortal,
			MarkdownContent:  m.Markdown,
			Action:           c.Field("action"),
			ShipBattle:       c.Field("ship_battle"),
		})
	}
	return out
}

func WriteBotCrew(path string, bots []BotCrew) error {
	if bots == nil {
		bots = []BotCrew{}
	}
	b, err := encode(bots)
	if err != nil {
		return fmt.Errorf("encode bot crew: %w", err)
	}
	return writeFile(path, b)
}
