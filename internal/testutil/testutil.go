// Package testutil holds helpers shared by package tests that need a real database.
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/club-polls/internal/db"
)

// NewSQLiteDB opens a fresh in-memory SQLite database with the full schema.
// The pool is pinned to one connection so every query sees the same memory database.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Connect(ctx, db.DriverSQLite, ":memory:", 1, 1)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return conn
}

// InsertMember stores a member and returns its id. Zero phone and joined values are stored as NULL.
func InsertMember(t *testing.T, conn *sqlx.DB, firstname, lastname string, phone int64, joined time.Time) int64 {
	t.Helper()

	res, err := conn.Exec(conn.Rebind(`INSERT INTO members (firstname, lastname, phone, joined_date) VALUES (?, ?, ?, ?)`),
		firstname, lastname,
		sql.NullInt64{Int64: phone, Valid: phone != 0},
		sql.NullTime{Time: joined, Valid: !joined.IsZero()},
	)
	if err != nil {
		t.Fatalf("failed to insert member: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read member id: %v", err)
	}
	return id
}

// InsertQuestion stores a question and returns its id.
func InsertQuestion(t *testing.T, conn *sqlx.DB, text string, pubDate time.Time) int64 {
	t.Helper()

	res, err := conn.Exec(conn.Rebind(`INSERT INTO polls_question (question_text, pub_date) VALUES (?, ?)`), text, pubDate)
	if err != nil {
		t.Fatalf("failed to insert question: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read question id: %v", err)
	}
	return id
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
