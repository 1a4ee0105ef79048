package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/signphon/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSign inserts a live sign entry with a unique gloss built from prefix.
func SeedSign(t *testing.T, pool *pgxpool.Pool, prefix string, s domain.Sign) domain.SignEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.SignEntry{
		ID:        uuid.New(),
		Gloss:     prefix + "-" + uniqueSuffix(),
		Text:      s.Text,
		Source:    "test",
		Sign:      s,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if entry.Text == "" {
		entry.Text = entry.Gloss
	}

	payload, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("testhelper: SeedSign encode: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO signs (id, gloss, gloss_normalized, text, source, sign, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.Gloss, domain.NormalizeGloss(entry.Gloss), entry.Text, entry.Source, payload, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSign insert: %v", err)
	}

	return entry
}
