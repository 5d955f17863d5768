// Package ranking scores crew members and assigns dense descending ranks.
package ranking

import (
	"math"

	"github.com/datacore/crew_stats/internal/domain"
)

const (
	CoreBonus         = 1.15
	RangeBonus        = 1.13
	TertiaryWeight    = 0.25
	FactionOnlyWeight = 30
)

// ScoreFunc scores one crew member. Only scores above zero earn a rank.
type ScoreFunc func(c *domain.CrewMember) float64

func voyageSkillScore(s domain.SkillStats) float64 {
	return s.Core*CoreBonus + s.RangeAvg()*RangeBonus
}

func gauntletSkillScore(s domain.SkillStats) float64 {
	return s.RangeAvg() * RangeBonus
}

func sumSkills(c *domain.CrewMember, score func(domain.SkillStats) float64) float64 {
	total := 0.0
	for _, sk := range domain.Skills {
		if st, ok := c.StatsFor(sk); ok {
			total += score(st)
		}
	}
	return total
}

func VoyageScore(c *domain.CrewMember) float64 {
	return math.Ceil(sumSkills(c, voyageSkillScore))
}

func GauntletScore(c *domain.CrewMember) float64 {
	return math.Ceil(sumSkills(c, gauntletSkillScore))
}

// ChronCostScore ranks the most expensive crew first.
func ChronCostScore(c *domain.CrewMember) float64 {
	return float64(c.TotalChronCost + c.FactionOnlyTotal*FactionOnlyWeight)
}

func BaseScore(sk domain.Skill) ScoreFunc {
	return func(c *domain.CrewMember) float64 {
		st, ok := c.StatsFor(sk)
		if !ok {
			return 0
		}
		return math.Ceil(st.Core * CoreBonus)
	}
}

func AverageScore(sk domain.Skill) ScoreFunc {
	return func(c *domain.CrewMember) float64 {
		st, ok := c.StatsFor(sk)
		if !ok {
			return 0
		}
		return math.Ceil(voyageSkillScore(st))
	}
}

// pairScores splits the crew's per-skill scores into the two named skills
// and everything else.
func pairScores(c *domain.CrewMember, a, b domain.Skill, score func(domain.SkillStats) float64) (primary, tertiary float64) {
	for _, sk := range domain.Skills {
		st, ok := c.StatsFor(sk)
		if !ok {
			continue
		}
		if sk == a || sk == b {
			primary += score(st)
		} else {
			tertiary += score(st)
		}
	}
	return primary, tertiary
}

// VoyagePairScore counts the two named skills in full and every other skill
// at TertiaryWeight.
func VoyagePairScore(a, b domain.Skill) ScoreFunc {
	return func(c *domain.CrewMember) float64 {
		primary, tertiary := pairScores(c, a, b, voyageSkillScore)
		return math.Ceil(primary + tertiary*TertiaryWeight)
	}
}

// GauntletPairScore only counts the two named skills. Unlike voyages,
// gauntlet pairs give no weight to the remaining skills.
func GauntletPairScore(a, b domain.Skill) ScoreFunc {
	return func(c *domain.CrewMember) float64 {
		primary, _ := pairScores(c, a, b, gauntletSkillScore)
		return math.Ceil(primary)
	}
}

// ScoreFor returns the scoring function behind a rank key.
func ScoreFor(k domain.RankKey) ScoreFunc {
	switch k.Kind {
	case domain.RankVoyage:
		return VoyageScore
	case domain.RankGauntlet:
		return GauntletScore
	case domain.RankChronCost:
		return ChronCostScore
	case domain.RankBase:
		return BaseScore(k.A)
	case domain.RankAverage:
		return AverageScore(k.A)
	case domain.RankVoyagePair:
		return VoyagePairScore(k.A, k.B)
	case domain.RankGauntletPair:
		return GauntletPairScore(k.A, k.B)
	default:
		return func(*domain.CrewMember) float64 { return 0 }
	}
}
