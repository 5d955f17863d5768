package ranking

import (
	"log/slog"
	"sort"

	"github.com/datacore/crew_stats/internal/domain"
)

type scored struct {
	crew  *domain.CrewMember
	score float64
}

// Rank scores every crew member and stores key -> 1-based position for those
// scoring above zero. Equal scores keep roster order, so ranks are always a
// dense 1..K sequence. Crew scoring zero or less get no entry for key.
func Rank(crew []*domain.CrewMember, key domain.RankKey, score ScoreFunc) int {
	entries := make([]scored, 0, len(crew))
	for _, c := range crew {
		entries = append(entries, scored{crew: c, score: score(c)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	ranked := 0
	for i, e := range entries {
		if e.score <= 0 {
			continue
		}
		if e.crew.Ranks == nil {
			e.crew.Ranks = make(map[domain.RankKey]int)
		}
		e.crew.Ranks[key] = i + 1
		ranked++
	}
	return ranked
}

// Engine runs every ranking over a roster.
type Engine struct {
	log *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{log: logger}
}

// RankAll resets each crew member's ranks and runs all rank keys in order.
func (e *Engine) RankAll(crew []*domain.CrewMember) {
	for _, c := range crew {
		c.Ranks = make(map[domain.RankKey]int)
	}
	for _, k := range domain.AllRankKeys() {
		n := Rank(crew, k, ScoreFor(k))
		e.log.Debug("ranked", "key", k.String(), "ranked", n, "roster", len(crew))
	}
}
