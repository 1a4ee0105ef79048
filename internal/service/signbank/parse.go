package signbank

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/signphon/internal/domain"
)

// Parse parses a transcription without storing it.
func (s *Service) Parse(ctx context.Context, input ParseInput) (domain.Sign, error) {
	opts, err := input.options(s.cfg.Options, s.cfg.MaxGlyphs)
	if err != nil {
		return domain.Sign{}, err
	}

	sign, err := s.parser.Parse(input.Text, opts)
	if err != nil {
		return domain.Sign{}, fmt.Errorf("parse: %w", err)
	}

	if n := len(sign.Meta.Issues); n > 0 {
		s.log.DebugContext(ctx, "parse left glyphs unassigned",
			slog.Int("glyphs", domain.GlyphCount(input.Text)),
			slog.Int("issues", n),
		)
	}
	return sign, nil
}

// Translate renders a transcription as glyph names.
func (s *Service) Translate(_ context.Context, text, sep string) (Translation, error) {
	if domain.GlyphCount(text) > s.cfg.MaxGlyphs {
		return Translation{}, domain.NewValidationError("text", fmt.Sprintf("max %d glyphs", s.cfg.MaxGlyphs))
	}
	if sep == "" {
		sep = s.cfg.Options.Separator
	}
	return Translation{
		Text:  s.parser.Translate(text, sep),
		Names: s.parser.Names(text),
	}, nil
}

// Compare parses two transcriptions and measures their dominant hands.
func (s *Service) Compare(_ context.Context, a, b string) (CompareResult, error) {
	var errs []domain.FieldError
	for _, f := range []struct{ field, text string }{{"a", a}, {"b", b}} {
		if domain.GlyphCount(f.text) > s.cfg.MaxGlyphs {
			errs = append(errs, domain.FieldError{Field: f.field, Message: fmt.Sprintf("max %d glyphs", s.cfg.MaxGlyphs)})
		}
	}
	if len(errs) > 0 {
		return CompareResult{}, domain.NewValidationErrors(errs)
	}

	opts := s.storeOptions()
	signA, err := s.parser.Parse(a, opts)
	if err != nil {
		return CompareResult{}, fmt.Errorf("parse a: %w", err)
	}
	signB, err := s.parser.Parse(b, opts)
	if err != nil {
		return CompareResult{}, fmt.Errorf("parse b: %w", err)
	}

	return CompareResult{
		A:        signA,
		B:        signB,
		Distance: s.metric.Distance(signA.Dominant, signB.Dominant),
	}, nil
}
