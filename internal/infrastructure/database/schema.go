package database

import (
	"context"
	"fmt"
)

// Schema is applied at startup. Uniqueness of username/email is enforced by
// a pre-check in the signup flow, not by a store constraint, so the user
// table carries no UNIQUE indexes on those columns.
const schema = `
CREATE TABLE IF NOT EXISTS books (
	id           UUID PRIMARY KEY,
	title        TEXT NOT NULL,
	author       TEXT NOT NULL,
	publish_year TEXT NOT NULL,
	image        TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the tables when they do not exist yet. The stack
// carries no migration tooling; the schema is small enough to bootstrap
// idempotently on every start.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	return nil
}
