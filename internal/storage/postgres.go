package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ZaneLittle/SwoleExperience-sub000/internal/telemetry/tracing"
	"github.com/ZaneLittle/SwoleExperience-sub000/pkg"
)

const createKVTableSQL = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`

// Postgres keeps the key-value pairs in a single kv_store table.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{
		db: db,
	}
}

// Migrate creates the kv_store table if it does not exist yet.
func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.db.Exec(ctx, createKVTableSQL)
	return err
}

func (p *Postgres) Get(ctx context.Context, key string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.postgres.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	var value string
	err = p.db.
		QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).
		Scan(&value)
	// nothing was ever stored when the table is not there yet
	if errors.Is(err, pgx.ErrNoRows) || pkg.IsUndefinedTableError(err) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.postgres.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	_, err = p.db.Exec(
		ctx,
		`INSERT INTO kv_store (key, value, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now();`,
		key, value,
	)
	return err
}
