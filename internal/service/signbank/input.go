package signbank

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/parser"
)

// ParseInput holds the parameters of an ad-hoc parse. Nil fields fall back
// to the service defaults.
type ParseInput struct {
	Text      string
	ASCII     *bool
	Separator *string
	Enabled   []string
}

// options validates the input and merges it over defaults.
func (i ParseInput) options(defaults parser.Options, maxGlyphs int) (parser.Options, error) {
	var errs []domain.FieldError
	opts := defaults

	if n := domain.GlyphCount(i.Text); n > maxGlyphs {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d glyphs", maxGlyphs)})
	}
	if i.ASCII != nil {
		opts.ASCII = *i.ASCII
	}
	if i.Separator != nil {
		if *i.Separator == "" {
			errs = append(errs, domain.FieldError{Field: "separator", Message: "must not be empty"})
		}
		opts.Separator = *i.Separator
	}
	if i.Enabled != nil {
		set, err := parseHandSet(i.Enabled)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "enabled", Message: err.Error()})
		}
		opts.Enabled = set
	}

	if len(errs) > 0 {
		return parser.Options{}, &domain.ValidationError{Errors: errs}
	}
	return opts, nil
}

func parseHandSet(names []string) (domain.CategorySet, error) {
	var set domain.CategorySet
	for _, n := range names {
		c, err := domain.ParseCategory(n)
		if err != nil || !c.IsHandCategory() {
			return 0, fmt.Errorf("unknown category %q", n)
		}
		set = set.With(c)
	}
	return set, nil
}

// CreateInput holds the parameters for storing a transcription.
type CreateInput struct {
	Gloss  string
	Text   string
	Source string
}

func (i CreateInput) validate(cfg Config) error {
	var errs []domain.FieldError

	gloss := strings.TrimSpace(i.Gloss)
	if gloss == "" {
		errs = append(errs, domain.FieldError{Field: "gloss", Message: "required"})
	}
	if utf8.RuneCountInString(gloss) > cfg.MaxGlossLength {
		errs = append(errs, domain.FieldError{Field: "gloss", Message: fmt.Sprintf("max %d characters", cfg.MaxGlossLength)})
	}

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if domain.GlyphCount(i.Text) > cfg.MaxGlyphs {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d glyphs", cfg.MaxGlyphs)})
	}

	if utf8.RuneCountInString(strings.TrimSpace(i.Source)) > cfg.MaxSourceLength {
		errs = append(errs, domain.FieldError{Field: "source", Message: fmt.Sprintf("max %d characters", cfg.MaxSourceLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds search and pagination parameters.
type ListInput struct {
	Search *string
	Source *string
	Limit  int
	Offset int
}

// ListResult is one page of entries with the page bounds actually applied.
type ListResult struct {
	Entries []domain.SignEntry
	Total   int
	Limit   int
	Offset  int
}

// SimilarInput selects the query entry and the number of neighbours.
type SimilarInput struct {
	ID    uuid.UUID
	Limit int
}

func (i SimilarInput) validate(maxLimit int) error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be in [0, %d]", maxLimit)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompareResult holds both parses and the distance of their dominant hands.
type CompareResult struct {
	A        domain.Sign
	B        domain.Sign
	Distance float64
}

// Translation is a transcription rendered as glyph names.
type Translation struct {
	Text  string
	Names []string
}
