package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dealer_ranking (
		id SERIAL PRIMARY KEY,
		run_id VARCHAR(32) NOT NULL,
		indicator VARCHAR(255) NOT NULL,
		month VARCHAR(7) NOT NULL,
		dealer_key VARCHAR(255) NOT NULL,
		value NUMERIC(18, 2) NOT NULL DEFAULT 0,
		position INTEGER NOT NULL,
		position_change INTEGER NOT NULL DEFAULT 0,
		previous_position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (indicator, month, dealer_key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_dealer_ranking_indicator_month ON dealer_ranking (indicator, month)`,
}

// EnsureSchema cria a tabela do histórico de ranking quando ainda não existe
func (c *Connection) EnsureSchema(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao criar schema: %w", err)
			}
		}
		return nil
	})
}
