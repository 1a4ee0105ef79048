package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/signphon/internal/compare"
	"github.com/heartmarshall/signphon/internal/config"
	"github.com/heartmarshall/signphon/internal/hamnosys"
	"github.com/heartmarshall/signphon/internal/parser"
	"github.com/heartmarshall/signphon/internal/service/signbank"
	"github.com/heartmarshall/signphon/internal/transport/middleware"
	"github.com/heartmarshall/signphon/internal/transport/rest"
)

// LoadGlyphTable reads the table at path, or the embedded table when path
// is empty.
func LoadGlyphTable(path string) (*hamnosys.Table, error) {
	if path == "" {
		t, err := hamnosys.Default()
		if err != nil {
			return nil, fmt.Errorf("load embedded glyph table: %w", err)
		}
		return t, nil
	}
	t, err := hamnosys.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load glyph table %s: %w", path, err)
	}
	return t, nil
}

// ParserOptions converts validated parser settings into parse options.
func ParserOptions(cfg config.ParserConfig) parser.Options {
	return parser.Options{
		Enabled:   cfg.EnabledSet,
		ASCII:     cfg.ASCII,
		Separator: cfg.Separator,
	}
}

// NewMetric builds the similarity metric from configured weights.
func NewMetric(cfg config.SimilarityConfig) (*compare.Metric, error) {
	return compare.NewMetric(compare.Weights(cfg.Weights), nil)
}

// SignBankConfig collects the service limits spread over the config sections.
func SignBankConfig(cfg *config.Config) signbank.Config {
	c := signbank.DefaultConfig()
	c.Options = ParserOptions(cfg.Parser)
	c.MaxGlyphs = cfg.Parser.MaxGlyphs
	c.MaxGlossLength = cfg.SignBank.MaxGlossLength
	c.DefaultPageSize = cfg.SignBank.DefaultPageSize
	c.MaxPageSize = cfg.SignBank.MaxPageSize
	c.DefaultLimit = cfg.Similarity.DefaultLimit
	c.MaxLimit = cfg.Similarity.MaxLimit
	c.MaxCandidates = cfg.Similarity.MaxCandidates
	c.Workers = cfg.Similarity.Workers
	c.Retention = time.Duration(cfg.SignBank.HardDeleteRetentionDays) * 24 * time.Hour
	return c
}

type pinger interface {
	Ping(ctx context.Context) error
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// handlerDeps are the collaborators of the HTTP handler tree.
type handlerDeps struct {
	signs     *signbank.Service
	db        pinger
	table     *hamnosys.Table
	validator tokenValidator
}

// newHandler assembles the middleware stack and routes. The returned stop
// function releases the rate limiter.
func newHandler(cfg *config.Config, logger *slog.Logger, deps handlerDeps) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.Routes{
		Signs:  rest.NewSignHandler(deps.signs, logger),
		Health: rest.NewHealthHandler(deps.db, deps.table, BuildVersion()),
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		},
		API: []middleware.Middleware{
			limiter.Limit(cfg.RateLimit.RequestsPerMinute),
			middleware.Auth(deps.validator),
		},
	})

	return router, limiter.Stop
}
