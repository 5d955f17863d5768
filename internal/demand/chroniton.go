package demand

import (
	"log/slog"

	"github.com/datacore/crew_stats/internal/domain"
)

// chronitonFactor turns a per-attempt cost and a drop grade into an
// expected total: (6 - grade) * factor * cost.
const chronitonFactor = 1.8

// Estimator estimates the chroniton cost of acquiring one item from its
// cheapest mission source.
type Estimator struct {
	log *slog.Logger
}

func NewEstimator(logger *slog.Logger) Estimator {
	if logger == nil {
		logger = slog.Default()
	}
	return Estimator{log: logger}
}

func isMissionSource(s domain.Source) bool {
	return s.Type == domain.SourceTypeAwayMission || s.Type == domain.SourceTypeShipBattle
}

func nonZero(p *float64) bool {
	return p != nil && *p != 0
}

// sourceCost returns the expected cost of one source, or false when the
// source lacks the data to estimate it.
func sourceCost(s domain.Source) (float64, bool) {
	if !nonZero(s.Cost) {
		return 0, false
	}
	if nonZero(s.AvgCost) {
		return *s.AvgCost, true
	}
	if s.ChanceGrade == nil {
		return 0, false
	}
	return (6 - *s.ChanceGrade) * chronitonFactor * *s.Cost, true
}

// Estimate returns the minimum expected chroniton cost over the item's
// mission sources. Items only available from factions cost 0.
func (e Estimator) Estimate(item *domain.EquipmentItem) float64 {
	missions := 0
	best := 0.0
	found := false
	for _, s := range item.ItemSources {
		if !isMissionSource(s) {
			continue
		}
		missions++
		cost, ok := sourceCost(s)
		if !ok {
			continue
		}
		if !found || cost < best {
			best = cost
			found = true
		}
	}

	if missions == 0 {
		return 0
	}
	if !found {
		e.log.Warn("no usable cost data for equipment", "symbol", item.Symbol, "name", item.Name, "sources", missions)
		return 0
	}
	return best
}
