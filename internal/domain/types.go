package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// StaticDir holds crew.json and items.json.
	StaticDir string `yaml:"static_dir" env:"CREW_STATS_STATIC_DIR"`
	// CrewDir holds per-crew <symbol>.md files with YAML front matter.
	CrewDir string `yaml:"crew_dir" env:"CREW_STATS_CREW_DIR"`
	// OutputDir is where every output file is written. Defaults to StaticDir.
	OutputDir string `yaml:"output_dir" env:"CREW_STATS_OUTPUT_DIR"`
	CrewFile  string `yaml:"crew_file"`
	ItemsFile string `yaml:"items_file"`
	// BigBookTierLimit hides tiers at or above the limit in exports (0 shows all).
	BigBookTierLimit int           `yaml:"bigbook_tier_limit"`
	Outputs          OutputsConfig `yaml:"outputs"`
}

type OutputsConfig struct {
	MiscStats string `yaml:"misc_stats"`
	Crew      string `yaml:"crew"`
	BotCrew   string `yaml:"bot_crew"`
	// Workbook is optional; an empty name skips the xlsx export.
	Workbook string `yaml:"workbook"`
}

func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value != nil && value.Kind == yaml.MappingNode {
		allowed := map[string]struct{}{
			"static_dir":         {},
			"crew_dir":           {},
			"output_dir":         {},
			"crew_file":          {},
			"items_file":         {},
			"bigbook_tier_limit": {},
			"outputs":            {},
		}

		for i := 0; i+1 < len(value.Content); i += 2 {
			k := value.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			if _, ok := allowed[k.Value]; !ok {
				return fmt.Errorf("config: unsupported key %q", k.Value)
			}
		}
	}

	type raw Config
	tmp := raw(*c)
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

func (o *OutputsConfig) UnmarshalYAML(value *yaml.Node) error {
	if value != nil && value.Kind == yaml.MappingNode {
		allowed := map[string]struct{}{
			"misc_stats": {},
			"crew":       {},
			"bot_crew":   {},
			"workbook":   {},
		}
		for i := 0; i+1 < len(value.Content); i += 2 {
			k := value.Content[i]
			if k.Kind != yaml.ScalarNode {
				continue
			}
			if _, ok := allowed[k.Value]; !ok {
				return fmt.Errorf("config: unsupported key outputs.%s", k.Value)
			}
		}
	}

	type raw OutputsConfig
	tmp := raw(*o)
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	*o = OutputsConfig(tmp)
	return nil
}
