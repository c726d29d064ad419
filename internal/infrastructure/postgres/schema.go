package postgres

import (
	"context"
	"fmt"
)

// CreateSchema crea las tablas si no existen. Se puede llamar varias veces.
func CreateSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id   INTEGER PRIMARY KEY,
    type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
    id         SERIAL PRIMARY KEY,
    question   TEXT NOT NULL,
    answer     TEXT NOT NULL,
    category   INTEGER NOT NULL REFERENCES categories(id),
    difficulty INTEGER NOT NULL CHECK (difficulty BETWEEN 1 AND 5)
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);
`
