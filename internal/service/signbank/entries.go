package signbank

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/pkg/ctxutil"
)

// Create parses and stores a transcription. Editors only.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.SignEntry, error) {
	editor, ok := ctxutil.EditorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validate(s.cfg); err != nil {
		return nil, err
	}

	sign, err := s.parser.Parse(input.Text, s.storeOptions())
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	entry, err := s.signs.Create(ctx, &domain.SignEntry{
		Gloss:  strings.TrimSpace(input.Gloss),
		Text:   input.Text,
		Source: strings.TrimSpace(input.Source),
		Sign:   sign,
	})
	if err != nil {
		return nil, fmt.Errorf("create sign: %w", err)
	}

	s.log.InfoContext(ctx, "sign created",
		slog.String("editor", editor),
		slog.String("sign_id", entry.ID.String()),
		slog.String("gloss", entry.Gloss),
		slog.Int("issues", len(sign.Meta.Issues)),
	)

	return entry, nil
}

// Get returns a stored entry.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SignEntry, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	entry, err := s.signs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sign: %w", err)
	}
	return entry, nil
}

// List returns one page of entries ordered by gloss.
func (s *Service) List(ctx context.Context, input ListInput) (ListResult, error) {
	if input.Limit < 0 || input.Offset < 0 {
		return ListResult{}, domain.NewValidationError("pagination", "limit and offset must not be negative")
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultPageSize
	}
	limit = min(limit, s.cfg.MaxPageSize)

	entries, total, err := s.signs.List(ctx, domain.SignFilter{
		Search: trimOrNil(input.Search),
		Source: trimOrNil(input.Source),
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return ListResult{}, fmt.Errorf("list signs: %w", err)
	}

	return ListResult{Entries: entries, Total: total, Limit: limit, Offset: input.Offset}, nil
}

// Delete soft-deletes an entry. Editors only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	editor, ok := ctxutil.EditorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.signs.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete sign: %w", err)
	}

	s.log.InfoContext(ctx, "sign deleted",
		slog.String("editor", editor),
		slog.String("sign_id", id.String()),
	)
	return nil
}

// Reparse runs the parser again over a stored transcription, for example
// after the glyph table changed. Editors only.
func (s *Service) Reparse(ctx context.Context, id uuid.UUID) (*domain.SignEntry, error) {
	editor, ok := ctxutil.EditorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var updated *domain.SignEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.signs.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get sign: %w", err)
		}

		sign, err := s.parser.Parse(entry.Text, s.storeOptions())
		if err != nil {
			return fmt.Errorf("parse: %w", err)
		}

		updated, err = s.signs.UpdateSign(txCtx, id, sign)
		if err != nil {
			return fmt.Errorf("update sign: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "sign reparsed",
		slog.String("editor", editor),
		slog.String("sign_id", id.String()),
	)
	return updated, nil
}

// Cleanup hard-deletes entries soft-deleted longer ago than the retention
// period and returns how many were removed.
func (s *Service) Cleanup(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.cfg.Retention)

	n, err := s.signs.HardDeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("hard delete signs: %w", err)
	}

	s.log.InfoContext(ctx, "hard delete completed",
		slog.Int("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
