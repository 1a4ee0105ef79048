package config

import (
	"fmt"

	"github.com/heartmarshall/signphon/internal/compare"
	"github.com/heartmarshall/signphon/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.EditorTokenTTL <= 0 {
		return fmt.Errorf("auth.editor_token_ttl must be > 0 (got %v)", c.Auth.EditorTokenTTL)
	}

	if err := c.Parser.validate(); err != nil {
		return fmt.Errorf("parser: %w", err)
	}
	if err := c.Similarity.validate(); err != nil {
		return fmt.Errorf("similarity: %w", err)
	}
	if err := c.SignBank.validate(); err != nil {
		return fmt.Errorf("signbank: %w", err)
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (p *ParserConfig) validate() error {
	enabled, err := parseHandCategories(p.Enabled)
	if err != nil {
		return fmt.Errorf("enabled: %w", err)
	}
	if enabled == 0 {
		return fmt.Errorf("enabled must name at least one category")
	}
	if p.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	if p.MaxGlyphs <= 0 {
		return fmt.Errorf("max_glyphs must be > 0 (got %d)", p.MaxGlyphs)
	}

	p.EnabledSet = enabled
	return nil
}

func parseHandCategories(names []string) (domain.CategorySet, error) {
	set, err := domain.ParseCategorySet(names)
	if err != nil {
		return 0, err
	}
	if set.Has(domain.CategorySymmetry) {
		return 0, fmt.Errorf("symmetry cannot be toggled")
	}
	return set, nil
}

func (s *SimilarityConfig) validate() error {
	if _, err := compare.NewMetric(s.Weights, nil); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	if s.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", s.MaxLimit)
	}
	if s.DefaultLimit <= 0 || s.DefaultLimit > s.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, %d] (got %d)", s.MaxLimit, s.DefaultLimit)
	}
	if s.MaxCandidates <= 0 {
		return fmt.Errorf("max_candidates must be > 0 (got %d)", s.MaxCandidates)
	}
	if s.Workers <= 0 {
		return fmt.Errorf("workers must be > 0 (got %d)", s.Workers)
	}
	return nil
}

func (s *SignBankConfig) validate() error {
	if s.MaxGlossLength <= 0 {
		return fmt.Errorf("max_gloss_length must be > 0 (got %d)", s.MaxGlossLength)
	}
	if s.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", s.MaxPageSize)
	}
	if s.DefaultPageSize <= 0 || s.DefaultPageSize > s.MaxPageSize {
		return fmt.Errorf("default_page_size must be in [1, %d] (got %d)", s.MaxPageSize, s.DefaultPageSize)
	}
	if s.HardDeleteRetentionDays <= 0 {
		return fmt.Errorf("hard_delete_retention_days must be > 0 (got %d)", s.HardDeleteRetentionDays)
	}
	return nil
}
