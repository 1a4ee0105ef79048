// Command cleanup physically removes soft-deleted sign entries older than
// the configured retention period. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/signphon/internal/adapter/postgres"
	"github.com/heartmarshall/signphon/internal/adapter/postgres/sign"
	"github.com/heartmarshall/signphon/internal/app"
	"github.com/heartmarshall/signphon/internal/config"
	"github.com/heartmarshall/signphon/internal/parser"
	"github.com/heartmarshall/signphon/internal/service/signbank"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	table, err := app.LoadGlyphTable(cfg.Parser.TablePath)
	if err != nil {
		logger.Error("load glyph table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := signbank.NewService(
		logger,
		sign.New(pool),
		postgres.NewTxManager(pool),
		parser.New(table),
		nil,
		app.SignBankConfig(cfg),
	)

	if _, err := svc.Cleanup(ctx); err != nil {
		logger.Error("hard delete failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
