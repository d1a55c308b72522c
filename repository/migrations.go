// repository/migrations.go
package repository

import (
	"context"
	"fmt"
)

// migrations are applied in order on startup. Statements must be
// idempotent; there is no down path.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS partners (
		id UUID PRIMARY KEY,
		account_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		document TEXT NOT NULL DEFAULT '',
		participation DOUBLE PRECISION NOT NULL,
		balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_partners_account ON partners (account_id)`,
	`CREATE TABLE IF NOT EXISTS costs (
		id UUID PRIMARY KEY,
		account_id TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		value DOUBLE PRECISION NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		payer_id UUID NOT NULL,
		is_recurrent BOOLEAN NOT NULL DEFAULT false,
		involved_partner_ids TEXT[] NOT NULL DEFAULT '{}',
		payments JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_costs_account ON costs (account_id)`,
	`CREATE TABLE IF NOT EXISTS profits (
		id UUID PRIMARY KEY,
		account_id TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		source TEXT NOT NULL,
		category TEXT NOT NULL,
		distributions JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_profits_account ON profits (account_id)`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration: %v", err)
		}
	}
	return nil
}
