package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CreateSchema creates the members and polls_question tables.
// Safe to call multiple times, it only uses IF NOT EXISTS statements.
func CreateSchema(ctx context.Context, conn *sqlx.DB) error {
	schema := postgresSchema
	if conn.DriverName() == DriverSQLite {
		schema = sqliteSchema
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS members (
    id BIGSERIAL PRIMARY KEY,
    firstname VARCHAR(255) NOT NULL,
    lastname VARCHAR(255) NOT NULL,
    phone BIGINT,
    joined_date DATE
);

CREATE INDEX IF NOT EXISTS idx_members_firstname ON members(firstname);

CREATE TABLE IF NOT EXISTS polls_question (
    id BIGSERIAL PRIMARY KEY,
    question_text VARCHAR(200) NOT NULL,
    pub_date TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_polls_question_pub_date ON polls_question(pub_date DESC, id DESC);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    firstname TEXT NOT NULL,
    lastname TEXT NOT NULL,
    phone INTEGER,
    joined_date DATE
);

CREATE INDEX IF NOT EXISTS idx_members_firstname ON members(firstname);

CREATE TABLE IF NOT EXISTS polls_question (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question_text TEXT NOT NULL,
    pub_date TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_polls_question_pub_date ON polls_question(pub_date DESC, id DESC);
`
