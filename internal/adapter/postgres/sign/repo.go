// Package sign implements the sign bank repository using PostgreSQL.
package sign

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/signphon/internal/adapter/postgres"
	"github.com/heartmarshall/signphon/internal/domain"
)

const (
	table  = "signs"
	entity = "sign"

	defaultLimit = 50
	maxLimit     = 200
)

var columns = []string{"id", "gloss", "text", "source", "sign", "created_at", "updated_at", "deleted_at"}

// Repo provides sign entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sign repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// row mirrors the signs table. The parse is stored as raw JSONB.
type row struct {
	ID        uuid.UUID  `db:"id"`
	Gloss     string     `db:"gloss"`
	Text      string     `db:"text"`
	Source    string     `db:"source"`
	Sign      []byte     `db:"sign"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (r row) toDomain() (domain.SignEntry, error) {
	e := domain.SignEntry{
		ID:        r.ID,
		Gloss:     r.Gloss,
		Text:      r.Text,
		Source:    r.Source,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: r.DeletedAt,
	}
	if len(r.Sign) > 0 {
		if err := json.Unmarshal(r.Sign, &e.Sign); err != nil {
			return domain.SignEntry{}, fmt.Errorf("decode sign %s: %w", r.ID, err)
		}
	}
	return e, nil
}

func toDomainList(rows []row) ([]domain.SignEntry, error) {
	out := make([]domain.SignEntry, 0, len(rows))
	for _, r := range rows {
		e, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a new entry and returns it with generated fields filled.
func (r *Repo) Create(ctx context.Context, e *domain.SignEntry) (*domain.SignEntry, error) {
	payload, err := json.Marshal(e.Sign)
	if err != nil {
		return nil, fmt.Errorf("encode sign: %w", err)
	}

	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "gloss", "gloss_normalized", "text", "source", "sign").
		Values(id, e.Gloss, domain.NormalizeGloss(e.Gloss), e.Text, e.Source, payload).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, query, id)
}

// GetByID returns a live entry. Soft-deleted entries are reported as not found.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SignEntry, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "deleted_at": nil})

	return r.getOne(ctx, query, id)
}

// List returns one page of live entries ordered by gloss and the total
// number of entries matching the filter.
func (r *Repo) List(ctx context.Context, f domain.SignFilter) ([]domain.SignEntry, int, error) {
	where := filterWhere(f)

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := max(f.Offset, 0)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := r.q(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, entity, uuid.Nil)
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("gloss_normalized ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	entries, err := r.getMany(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return entries, int(total), nil
}

// ListCandidates returns up to limit live entries for similarity ranking,
// skipping exclude when it is not uuid.Nil.
func (r *Repo) ListCandidates(ctx context.Context, exclude uuid.UUID, limit int) ([]domain.SignEntry, error) {
	where := squirrel.And{squirrel.Eq{"deleted_at": nil}}
	if exclude != uuid.Nil {
		where = append(where, squirrel.NotEq{"id": exclude})
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("id ASC").
		Limit(uint64(max(limit, 1)))

	return r.getMany(ctx, query)
}

// UpdateSign replaces the stored parse of a live entry.
func (r *Repo) UpdateSign(ctx context.Context, id uuid.UUID, s domain.Sign) (*domain.SignEntry, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode sign: %w", err)
	}

	query := postgres.Builder().
		Update(table).
		Set("sign", payload).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, query, id)
}

// SoftDelete marks a live entry as deleted.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// HardDeleteOlderThan removes entries soft-deleted before the cutoff and
// returns how many were removed.
func (r *Repo) HardDeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"deleted_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

// CreateBatch inserts entries in one round trip. Entries whose gloss and
// transcription already exist are skipped. It returns the number inserted.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.SignEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		payload, err := json.Marshal(e.Sign)
		if err != nil {
			return 0, fmt.Errorf("encode sign %q: %w", e.Gloss, err)
		}
		sql, args, err := postgres.Builder().
			Insert(table).
			Columns("id", "gloss", "gloss_normalized", "text", "source", "sign").
			Values(uuid.New(), e.Gloss, domain.NormalizeGloss(e.Gloss), e.Text, e.Source, payload).
			Suffix("ON CONFLICT (gloss_normalized, text) WHERE deleted_at IS NULL DO NOTHING").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build query: %w", err)
		}
		batch.Queue(sql, args...)
	}

	br := r.q(ctx).SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for range entries {
		tag, err := br.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, entity, uuid.Nil)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func filterWhere(f domain.SignFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"deleted_at": nil}}
	if f.Search != nil {
		if s := domain.NormalizeGloss(*f.Search); s != "" {
			where = append(where, squirrel.ILike{"gloss_normalized": "%" + escapeLike(s) + "%"})
		}
	}
	if f.Source != nil {
		where = append(where, squirrel.Eq{"source": *f.Source})
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *Repo) getOne(ctx context.Context, b squirrel.Sqlizer, id uuid.UUID) (*domain.SignEntry, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, r.q(ctx), &dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, entity, id)
	}

	e, err := dst.toDomain()
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repo) getMany(ctx context.Context, b squirrel.Sqlizer) ([]domain.SignEntry, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}
	return toDomainList(rows)
}
