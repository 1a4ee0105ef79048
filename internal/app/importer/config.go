package importer

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds corpus import settings.
type Config struct {
	CorpusPath     string `yaml:"corpus_path"      env:"IMPORTER_CORPUS_PATH"`
	DefaultSource  string `yaml:"default_source"   env:"IMPORTER_DEFAULT_SOURCE"`
	BatchSize      int    `yaml:"batch_size"       env:"IMPORTER_BATCH_SIZE"       env-default:"500"`
	Workers        int    `yaml:"workers"          env:"IMPORTER_WORKERS"          env-default:"4"`
	MaxGlossLength int    `yaml:"max_gloss_length" env:"IMPORTER_MAX_GLOSS_LENGTH" env-default:"200"`
	MaxGlyphs      int    `yaml:"max_glyphs"       env:"IMPORTER_MAX_GLYPHS"       env-default:"500"`
	DryRun         bool   `yaml:"dry_run"          env:"IMPORTER_DRY_RUN"`
}

// LoadConfig reads importer configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("importer config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("importer config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("importer config: read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("importer config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", c.Workers)
	}
	if c.MaxGlossLength <= 0 || c.MaxGlyphs <= 0 {
		return fmt.Errorf("max_gloss_length and max_glyphs must be > 0")
	}
	return nil
}
