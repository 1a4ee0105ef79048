// Command importer loads a tab-separated HamNoSys corpus into the sign
// bank. Each line holds a gloss, a transcription and an optional source.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--corpus           path to the corpus file (overrides corpus_path)
//	--dry-run          parse the corpus without writing to DB
//	--importer-config  path to importer YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/signphon/internal/adapter/postgres"
	"github.com/heartmarshall/signphon/internal/adapter/postgres/sign"
	"github.com/heartmarshall/signphon/internal/app"
	"github.com/heartmarshall/signphon/internal/app/importer"
	"github.com/heartmarshall/signphon/internal/config"
	"github.com/heartmarshall/signphon/internal/parser"
)

// Compile-time interface assertion.
var _ importer.SignBatchRepo = (*sign.Repo)(nil)

func main() {
	corpusFlag := flag.String("corpus", "", "path to corpus file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the corpus without writing to DB")
	importerConfigFlag := flag.String("importer-config", "", "path to importer YAML config file")
	flag.Parse()

	// Load app config (for DB connection and parser settings).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	cfg, err := importer.LoadConfig(*importerConfigFlag)
	if err != nil {
		logger.Error("load importer config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		cfg.DryRun = true
	}
	if *corpusFlag != "" {
		cfg.CorpusPath = *corpusFlag
	}
	if cfg.CorpusPath == "" {
		logger.Error("corpus path is required (--corpus or IMPORTER_CORPUS_PATH)")
		os.Exit(1)
	}

	records, lineErrs, err := importer.ReadCorpusFile(cfg.CorpusPath)
	if err != nil {
		logger.Error("read corpus", slog.String("error", err.Error()))
		os.Exit(1)
	}
	for _, le := range lineErrs {
		logger.Warn("corpus line skipped",
			slog.Int("line", le.Line),
			slog.String("reason", le.Reason),
		)
	}

	table, err := app.LoadGlyphTable(appCfg.Parser.TablePath)
	if err != nil {
		logger.Error("load glyph table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var repo importer.SignBatchRepo
	if !cfg.DryRun {
		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		repo = sign.New(pool)
	}

	im := importer.New(logger, repo, parser.New(table), app.ParserOptions(appCfg.Parser), *cfg)

	res, err := im.Run(ctx, records)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import finished",
		slog.Int("read", res.Read),
		slog.Int("line_errors", len(lineErrs)),
		slog.Int("parsed", res.Parsed),
		slog.Int("failed", res.Failed),
		slog.Int("inserted", res.Inserted),
		slog.Int("skipped", res.Skipped),
		slog.Duration("duration", res.Duration),
	)
}
