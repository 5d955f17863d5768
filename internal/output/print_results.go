package output

import (
	"fmt"
	"io"

	"github.com/datacore/crew_stats/internal/domain"

	"github.com/dustin/go-humanize"
)

// RunSummary is what one precalc run produced.
type RunSummary struct {
	Crew    int
	Items   int
	Stats   domain.MiscStats
	Bots    int
	Written []string
}

func PrintSummary(w io.Writer, s RunSummary) {
	factionOnly := 0
	units := 0
	for _, d := range s.Stats.AllDemands {
		units += d.Count
		if d.FactionOnly {
			factionOnly++
		}
	}

	fmt.Fprintf(w, "Processed %s crew against %s items\n", humanize.Comma(int64(s.Crew)), humanize.Comma(int64(s.Items)))
	fmt.Fprintf(w, "- demand: %s components, %s units, %s faction-only\n",
		humanize.Comma(int64(len(s.Stats.AllDemands))), humanize.Comma(int64(units)), humanize.Comma(int64(factionOnly)))
	fmt.Fprintf(w, "- factions: %d, traits: %d, skill sets: %d\n", len(s.Stats.PerFaction), len(s.Stats.PerTrait), len(s.Stats.SkillSets))
	if s.Bots > 0 {
		fmt.Fprintf(w, "- bot crew: %s\n", humanize.Comma(int64(s.Bots)))
	}
	for _, p := range s.Written {
		fmt.Fprintf(w, "Wrote %s\n", p)
	}
}
