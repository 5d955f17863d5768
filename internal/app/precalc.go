package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/datacore/crew_stats/internal/catalog"
	"github.com/datacore/crew_stats/internal/config"
	"github.com/datacore/crew_stats/internal/demand"
	"github.com/datacore/crew_stats/internal/domain"
	"github.com/datacore/crew_stats/internal/meta"
	"github.com/datacore/crew_stats/internal/output"
	"github.com/datacore/crew_stats/internal/ranking"
	"github.com/datacore/crew_stats/internal/roster"
)

// Calculate enriches every crew member in place (demand totals, craft cost,
// chroniton estimate, ranks) and returns the roster-wide summary. Crew are
// processed in roster order; an unknown equipment symbol fails the run.
func Calculate(cat *catalog.Catalog, crew []*domain.CrewMember, logger *slog.Logger) (domain.MiscStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	resolver := demand.NewResolver(cat, logger)
	agg := demand.NewAggregator()
	traits := demand.NewTraitTally()

	for _, c := range crew {
		d, err := resolver.CrewDemands(c)
		if err != nil {
			return domain.MiscStats{}, err
		}
		demand.Apply(c, d)
		agg.Add(d.Demands)
		traits.Add(c)
	}

	ranking.NewEngine(logger).RankAll(crew)

	return domain.MiscStats{
		AllDemands: agg.Summaries(),
		PerFaction: agg.PerFaction(),
		PerTrait:   traits.Counts(),
		SkillSets:  ranking.SkillSetCounts(crew),
	}, nil
}

type runner struct {
	cfg    domain.Config
	paths  config.Paths
	log    *slog.Logger
	stdout io.Writer
}

func (r *runner) precalc() error {
	items, err := roster.LoadItems(r.paths.ItemsFile)
	if err != nil {
		return err
	}
	cat, err := catalog.New(items)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	crew, err := roster.LoadCrew(r.paths.CrewFile)
	if err != nil {
		return err
	}
	r.log.Info("inputs loaded", "crew", len(crew), "items", cat.Len())

	stats, err := Calculate(cat, roster.Members(crew), r.log)
	if err != nil {
		return err
	}

	metas, err := r.loadMeta(crew)
	if err != nil {
		return err
	}

	summary := output.RunSummary{Crew: len(crew), Items: cat.Len(), Stats: stats}

	if err := output.WriteMiscStats(r.paths.MiscStats, stats); err != nil {
		return err
	}
	summary.Written = append(summary.Written, r.paths.MiscStats)

	if err := output.WriteCrew(r.paths.Crew, crew); err != nil {
		return err
	}
	summary.Written = append(summary.Written, r.paths.Crew)

	bots, err := r.writeBotCrew(crew, metas)
	if err != nil {
		return err
	}
	summary.Bots = bots
	summary.Written = append(summary.Written, r.paths.BotCrew)

	if r.paths.Workbook != "" {
		if err := r.writeWorkbook(crew, stats, metas); err != nil {
			return err
		}
		summary.Written = append(summary.Written, r.paths.Workbook)
	}

	output.PrintSummary(r.stdout, summary)
	return nil
}

// botstats rebuilds botcrew.json from an already enriched crew.json.
func (r *runner) botstats() error {
	crew, err := roster.LoadCrew(r.paths.Crew)
	if err != nil {
		return err
	}
	metas, err := r.loadMeta(crew)
	if err != nil {
		return err
	}
	n, err := r.writeBotCrew(crew, metas)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.stdout, "Wrote %s (%d crew)\n", r.paths.BotCrew, n)
	return nil
}

// sheet rebuilds the workbook from an already enriched crew.json and
// misc_stats.json.
func (r *runner) sheet() error {
	if r.paths.Workbook == "" {
		return ExitWithError(exitUsage, fmt.Errorf("outputs.workbook is empty; nothing to write"))
	}
	crew, err := roster.LoadCrew(r.paths.Crew)
	if err != nil {
		return err
	}
	stats, err := output.ReadMiscStats(r.paths.MiscStats)
	if err != nil {
		return err
	}
	metas, err := r.loadMeta(crew)
	if err != nil {
		return err
	}
	if err := r.writeWorkbook(crew, stats, metas); err != nil {
		return err
	}
	fmt.Fprintf(r.stdout, "Wrote %s\n", r.paths.Workbook)
	return nil
}

func (r *runner) loadMeta(crew []*roster.Crew) (map[string]domain.CrewMeta, error) {
	symbols := make([]string, 0, len(crew))
	for _, c := range crew {
		symbols = append(symbols, c.Symbol)
	}
	metas, err := meta.LoadAll(r.paths.CrewDir, symbols, r.log)
	if err != nil {
		return nil, fmt.Errorf("load crew metadata: %w", err)
	}
	return metas, nil
}

func (r *runner) writeBotCrew(crew []*roster.Crew, metas map[string]domain.CrewMeta) (int, error) {
	bots := output.BuildBotCrew(crew, metas, r.log)
	if err := output.WriteBotCrew(r.paths.BotCrew, bots); err != nil {
		return 0, err
	}
	return len(bots), nil
}

func (r *runner) writeWorkbook(crew []*roster.Crew, stats domain.MiscStats, metas map[string]domain.CrewMeta) error {
	return output.ExportWorkbook(r.paths.Workbook, output.WorkbookInput{
		Crew:      roster.Members(crew),
		Stats:     stats,
		Meta:      metas,
		TierLimit: r.cfg.BigBookTierLimit,
	})
}
