// Package importer bulk-loads a HamNoSys corpus into the sign bank.
package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/parser"
)

// SignBatchRepo is the write side consumed by the importer.
// Implemented by sign.Repo.
type SignBatchRepo interface {
	CreateBatch(ctx context.Context, entries []domain.SignEntry) (int, error)
}

type signParser interface {
	Parse(text string, opts parser.Options) (domain.Sign, error)
}

// Result summarises one import run.
type Result struct {
	Read     int
	Parsed   int
	Failed   int
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Importer parses corpus records concurrently and writes them in batches.
type Importer struct {
	log    *slog.Logger
	repo   SignBatchRepo
	parser signParser
	opts   parser.Options
	cfg    Config
}

// New creates an Importer. Records are parsed with opts; ASCII output is
// always disabled so that stored parses keep their glyphs.
func New(log *slog.Logger, repo SignBatchRepo, p signParser, opts parser.Options, cfg Config) *Importer {
	opts.ASCII = false
	return &Importer{
		log:    log.With("component", "importer"),
		repo:   repo,
		parser: p,
		opts:   opts,
		cfg:    cfg,
	}
}

// Run imports records. Records that fail validation or parsing are logged
// and counted; they do not stop the run. Duplicates already in the bank
// are counted as skipped.
func (im *Importer) Run(ctx context.Context, records []Record) (Result, error) {
	start := time.Now()
	res := Result{Read: len(records)}

	entries, failed, err := im.parseAll(ctx, records)
	if err != nil {
		return res, err
	}
	res.Parsed = len(entries)
	res.Failed = failed

	im.log.InfoContext(ctx, "corpus parsed",
		slog.Int("records", res.Read),
		slog.Int("parsed", res.Parsed),
		slog.Int("failed", res.Failed),
	)

	if im.cfg.DryRun {
		res.Skipped = len(entries)
		res.Duration = time.Since(start)
		return res, nil
	}

	inserted, err := batchProcess(entries, im.cfg.BatchSize, func(batch []domain.SignEntry) (int, error) {
		return im.repo.CreateBatch(ctx, batch)
	})
	res.Inserted = inserted
	res.Skipped = res.Parsed - inserted
	res.Duration = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("insert signs: %w", err)
	}

	im.log.InfoContext(ctx, "import completed",
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// parseAll parses records with a bounded worker pool. Output order follows
// input order; failed records leave no entry.
func (im *Importer) parseAll(ctx context.Context, records []Record) ([]domain.SignEntry, int, error) {
	type slot struct {
		entry domain.SignEntry
		ok    bool
	}
	slots := make([]slot, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(im.cfg.Workers, 1))

	for i := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry, err := im.parseRecord(records[i])
			if err != nil {
				im.log.WarnContext(gctx, "skipping record",
					slog.Int("line", records[i].Line),
					slog.String("gloss", records[i].Gloss),
					slog.String("error", err.Error()),
				)
				return nil
			}
			slots[i] = slot{entry: entry, ok: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	entries := make([]domain.SignEntry, 0, len(records))
	for _, s := range slots {
		if s.ok {
			entries = append(entries, s.entry)
		}
	}
	return entries, len(records) - len(entries), nil
}

var errEmptyField = errors.New("gloss and transcription are required")

func (im *Importer) parseRecord(rec Record) (domain.SignEntry, error) {
	gloss := strings.TrimSpace(rec.Gloss)
	if gloss == "" || strings.TrimSpace(rec.Text) == "" {
		return domain.SignEntry{}, errEmptyField
	}
	if n := utf8.RuneCountInString(gloss); n > im.cfg.MaxGlossLength {
		return domain.SignEntry{}, fmt.Errorf("gloss has %d characters, max %d", n, im.cfg.MaxGlossLength)
	}
	if n := domain.GlyphCount(rec.Text); n > im.cfg.MaxGlyphs {
		return domain.SignEntry{}, fmt.Errorf("transcription has %d glyphs, max %d", n, im.cfg.MaxGlyphs)
	}

	sign, err := im.parser.Parse(rec.Text, im.opts)
	if err != nil {
		return domain.SignEntry{}, fmt.Errorf("parse: %w", err)
	}

	source := rec.Source
	if source == "" {
		source = im.cfg.DefaultSource
	}
	return domain.SignEntry{
		Gloss:  gloss,
		Text:   rec.Text,
		Source: source,
		Sign:   sign,
	}, nil
}

func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
