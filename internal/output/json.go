package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/datacore/crew_stats/internal/domain"
	"github.com/datacore/crew_stats/internal/roster"
)

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func WriteMiscStats(path string, stats domain.MiscStats) error {
	// Empty slices encode as [] rather than null.
	if stats.AllDemands == nil {
		stats.AllDemands = []domain.DemandSummary{}
	}
	if stats.PerFaction == nil {
		stats.PerFaction = []domain.FactionDemand{}
	}
	if stats.PerTrait == nil {
		stats.PerTrait = []domain.TraitCount{}
	}
	if stats.SkillSets == nil {
		stats.SkillSets = []domain.SkillSetCount{}
	}
	b, err := encode(stats)
	if err != nil {
		return fmt.Errorf("encode misc stats: %w", err)
	}
	return writeFile(path, b)
}

func ReadMiscStats(path string) (domain.MiscStats, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.MiscStats{}, fmt.Errorf("read misc stats (%s): %w", path, err)
	}
	var stats domain.MiscStats
	if err := json.Unmarshal(b, &stats); err != nil {
		return domain.MiscStats{}, fmt.Errorf("parse misc stats (%s): %w", path, err)
	}
	return stats, nil
}

// WriteCrew writes the enriched crew objects as one JSON array, in roster
// order.
func WriteCrew(path string, crew []*roster.Crew) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, c := range crew {
		b, err := c.Enriched()
		if err != nil {
			return err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return writeFile(path, buf.Bytes())
}
