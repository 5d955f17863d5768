package domain

import (
	"fmt"
	"strings"
)

type RankKind int

const (
	RankVoyage RankKind = iota
	RankGauntlet
	RankChronCost
	RankBase
	RankAverage
	RankVoyagePair
	RankGauntletPair
)

// RankKey identifies one ranking. A and B are only meaningful for the
// per-skill kinds (A) and pair kinds (A and B, with A < B).
type RankKey struct {
	Kind RankKind
	A, B Skill
}

var (
	VoyageRankKey    = RankKey{Kind: RankVoyage}
	GauntletRankKey  = RankKey{Kind: RankGauntlet}
	ChronCostRankKey = RankKey{Kind: RankChronCost}
)

func BaseRankKey(s Skill) RankKey {
	return RankKey{Kind: RankBase, A: s}
}

func AverageRankKey(s Skill) RankKey {
	return RankKey{Kind: RankAverage, A: s}
}

// PairRankKey builds a pair key with the two skills in canonical order, so
// (SCI, CMD) and (CMD, SCI) name the same ranking.
func PairRankKey(kind RankKind, a, b Skill) RankKey {
	if b < a {
		a, b = b, a
	}
	return RankKey{Kind: kind, A: a, B: b}
}

// AllRankKeys returns every ranking in the order they are computed:
// aggregates, then B_ and A_ per skill, then every V_ and G_ pair.
func AllRankKeys() []RankKey {
	keys := []RankKey{VoyageRankKey, GauntletRankKey, ChronCostRankKey}
	for _, s := range Skills {
		keys = append(keys, BaseRankKey(s), AverageRankKey(s))
	}
	for i := 0; i < len(Skills)-1; i++ {
		for j := i + 1; j < len(Skills); j++ {
			keys = append(keys,
				PairRankKey(RankVoyagePair, Skills[i], Skills[j]),
				PairRankKey(RankGauntletPair, Skills[i], Skills[j]),
			)
		}
	}
	return keys
}

func (k RankKey) String() string {
	switch k.Kind {
	case RankVoyage:
		return "voyRank"
	case RankGauntlet:
		return "gauntletRank"
	case RankChronCost:
		return "chronCostRank"
	case RankBase:
		return "B_" + k.A.Code()
	case RankAverage:
		return "A_" + k.A.Code()
	case RankVoyagePair:
		return "V_" + k.A.Code() + "_" + k.B.Code()
	case RankGauntletPair:
		return "G_" + k.A.Code() + "_" + k.B.Code()
	default:
		return fmt.Sprintf("rank(%d)", int(k.Kind))
	}
}

// ParseRankKey is the inverse of RankKey.String.
func ParseRankKey(s string) (RankKey, error) {
	switch s {
	case "voyRank":
		return VoyageRankKey, nil
	case "gauntletRank":
		return GauntletRankKey, nil
	case "chronCostRank":
		return ChronCostRankKey, nil
	}

	parts := strings.Split(s, "_")
	switch {
	case len(parts) == 2 && (parts[0] == "B" || parts[0] == "A"):
		sk, ok := SkillByCode(parts[1])
		if !ok {
			return RankKey{}, fmt.Errorf("rank key %q: unknown skill %q", s, parts[1])
		}
		if parts[0] == "B" {
			return BaseRankKey(sk), nil
		}
		return AverageRankKey(sk), nil
	case len(parts) == 3 && (parts[0] == "V" || parts[0] == "G"):
		a, ok := SkillByCode(parts[1])
		if !ok {
			return RankKey{}, fmt.Errorf("rank key %q: unknown skill %q", s, parts[1])
		}
		b, ok := SkillByCode(parts[2])
		if !ok {
			return RankKey{}, fmt.Errorf("rank key %q: unknown skill %q", s, parts[2])
		}
		if a == b {
			return RankKey{}, fmt.Errorf("rank key %q: pair needs two different skills", s)
		}
		kind := RankVoyagePair
		if parts[0] == "G" {
			kind = RankGauntletPair
		}
		return PairRankKey(kind, a, b), nil
	}
	return RankKey{}, fmt.Errorf("unknown rank key %q", s)
}

// MarshalText lets RankKey be used as a JSON object key.
func (k RankKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *RankKey) UnmarshalText(b []byte) error {
	parsed, err := ParseRankKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
