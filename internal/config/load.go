package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datacore/crew_stats/internal/domain"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// FileName is the run config looked up in the app root.
const FileName = "crew_stats.yaml"

func Defaults() domain.Config {
	return domain.Config{
		StaticDir:        filepath.Join("static", "structured"),
		CrewDir:          filepath.Join("static", "crew"),
		CrewFile:         "crew.json",
		ItemsFile:        "items.json",
		BigBookTierLimit: 20,
		Outputs: domain.OutputsConfig{
			MiscStats: "misc_stats.json",
			Crew:      "crew.json",
			BotCrew:   "botcrew.json",
			Workbook:  "crew.xlsx",
		},
	}
}

// Flags are command-line overrides; empty values leave the config as is.
type Flags struct {
	StaticDir string
	CrewDir   string
	OutputDir string
}

// Load builds the run config: defaults, then the YAML file at path (a
// missing file is fine), then CREW_STATS_* environment variables, then flags.
func Load(path string, flags Flags) (domain.Config, error) {
	cfg := Defaults()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return domain.Config{}, fmt.Errorf("read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse env: %w", err)
	}

	if v := strings.TrimSpace(flags.StaticDir); v != "" {
		cfg.StaticDir = v
	}
	if v := strings.TrimSpace(flags.CrewDir); v != "" {
		cfg.CrewDir = v
	}
	if v := strings.TrimSpace(flags.OutputDir); v != "" {
		cfg.OutputDir = v
	}

	if strings.TrimSpace(cfg.StaticDir) == "" {
		return domain.Config{}, errors.New("static_dir must not be empty")
	}
	if strings.TrimSpace(cfg.CrewFile) == "" || strings.TrimSpace(cfg.ItemsFile) == "" {
		return domain.Config{}, errors.New("crew_file and items_file must not be empty")
	}
	if cfg.BigBookTierLimit < 0 {
		return domain.Config{}, fmt.Errorf("bigbook_tier_limit must be >= 0, got %d", cfg.BigBookTierLimit)
	}
	return cfg, nil
}

// Paths are the absolute input and output locations of one run.
type Paths struct {
	CrewFile  string
	ItemsFile string
	CrewDir   string
	MiscStats string
	Crew      string
	BotCrew   string
	// Workbook is empty when the xlsx export is disabled.
	Workbook string
}

func abs(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// Resolve anchors relative paths in cfg at appRoot.
func Resolve(appRoot string, cfg domain.Config) Paths {
	static := abs(appRoot, cfg.StaticDir)
	outDir := static
	if strings.TrimSpace(cfg.OutputDir) != "" {
		outDir = abs(appRoot, cfg.OutputDir)
	}
	out := func(name string) string {
		if name == "" {
			return ""
		}
		return abs(outDir, name)
	}
	return Paths{
		CrewFile:  abs(static, cfg.CrewFile),
		ItemsFile: abs(static, cfg.ItemsFile),
		CrewDir:   abs(appRoot, cfg.CrewDir),
		MiscStats: out(cfg.Outputs.MiscStats),
		Crew:      out(cfg.Outputs.Crew),
		BotCrew:   out(cfg.Outputs.BotCrew),
		Workbook:  out(cfg.Outputs.Workbook),
	}
}
