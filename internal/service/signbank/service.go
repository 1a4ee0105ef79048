// Package signbank stores parsed transcriptions and ranks them by similarity.
package signbank

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/signphon/internal/compare"
	"github.com/heartmarshall/signphon/internal/domain"
	"github.com/heartmarshall/signphon/internal/parser"
)

type signRepo interface {
	Create(ctx context.Context, e *domain.SignEntry) (*domain.SignEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SignEntry, error)
	List(ctx context.Context, f domain.SignFilter) ([]domain.SignEntry, int, error)
	ListCandidates(ctx context.Context, exclude uuid.UUID, limit int) ([]domain.SignEntry, error)
	UpdateSign(ctx context.Context, id uuid.UUID, s domain.Sign) (*domain.SignEntry, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type signParser interface {
	Parse(text string, opts parser.Options) (domain.Sign, error)
	Translate(text, sep string) string
	Names(text string) []string
}

// Config holds the limits and defaults of the service.
type Config struct {
	// Options are used for stored entries and as defaults for ad-hoc parses.
	Options         parser.Options
	MaxGlyphs       int
	MaxGlossLength  int
	MaxSourceLength int
	DefaultPageSize int
	MaxPageSize     int
	DefaultLimit    int
	MaxLimit        int
	MaxCandidates   int
	Workers         int
	Retention       time.Duration
}

// DefaultConfig returns the limits used when no configuration overrides them.
func DefaultConfig() Config {
	return Config{
		Options:         parser.DefaultOptions(),
		MaxGlyphs:       500,
		MaxGlossLength:  200,
		MaxSourceLength: 100,
		DefaultPageSize: 50,
		MaxPageSize:     200,
		DefaultLimit:    10,
		MaxLimit:        100,
		MaxCandidates:   5000,
		Workers:         4,
		Retention:       30 * 24 * time.Hour,
	}
}

// Service provides sign bank operations.
type Service struct {
	signs  signRepo
	tx     txManager
	parser signParser
	metric *compare.Metric
	cfg    Config
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new sign bank service.
func NewService(
	log *slog.Logger,
	signs signRepo,
	tx txManager,
	p signParser,
	metric *compare.Metric,
	cfg Config,
) *Service {
	return &Service{
		signs:  signs,
		tx:     tx,
		parser: p,
		metric: metric,
		cfg:    cfg,
		log:    log.With("service", "signbank"),
		now:    time.Now,
	}
}

// storeOptions are the options for parses that get persisted. Stored signs
// always keep glyphs so they can be compared and re-rendered.
func (s *Service) storeOptions() parser.Options {
	opts := s.cfg.Options
	opts.ASCII = false
	return opts
}
