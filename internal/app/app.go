package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/signphon/internal/adapter/postgres"
	"github.com/heartmarshall/signphon/internal/adapter/postgres/sign"
	"github.com/heartmarshall/signphon/internal/auth"
	"github.com/heartmarshall/signphon/internal/config"
	"github.com/heartmarshall/signphon/internal/parser"
	"github.com/heartmarshall/signphon/internal/service/signbank"
)

// Run is the server entry point. It loads configuration, connects to the
// database, wires the sign bank and serves HTTP until ctx is canceled,
// then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	table, err := LoadGlyphTable(cfg.Parser.TablePath)
	if err != nil {
		return err
	}
	logger.Info("glyph table loaded", slog.Int("glyphs", table.Len()))

	metric, err := NewMetric(cfg.Similarity)
	if err != nil {
		return fmt.Errorf("similarity metric: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := signbank.NewService(
		logger,
		sign.New(pool),
		postgres.NewTxManager(pool),
		parser.New(table),
		metric,
		SignBankConfig(cfg),
	)

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.EditorTokenTTL)

	handler, stop := newHandler(cfg, logger, handlerDeps{
		signs:     svc,
		db:        pool,
		table:     table,
		validator: jwtMgr,
	})
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests within
// the shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
