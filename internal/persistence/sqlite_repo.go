package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/felixbrock/designkit/internal/domain"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS design_kit_submissions (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	payload    TEXT NOT NULL
);`

// SQLiteSubmissionRepo keeps submissions in a local SQLite file. It serves
// local development and tests where no Supabase project is available.
type SQLiteSubmissionRepo struct {
	db *sql.DB
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteSubmissionRepo, error) {
	db, err := sql.Open("sqlite", path)

	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteSubmissionRepo{db: db}, nil
}

func (r *SQLiteSubmissionRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteSubmissionRepo) Insert(ctx context.Context, submission domain.Submission) error {
	payload, err := json.Marshal(submission)

	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO design_kit_submissions (id, created_at, payload) VALUES (?, ?, ?)`,
		submission.Id, submission.CreatedAt.UTC().Format(time.RFC3339Nano), string(payload))

	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}

	return nil
}

func (r *SQLiteSubmissionRepo) Read(ctx context.Context, id string) (*domain.Submission, error) {
	return readSubmission(ctx, r.db, id)
}

func (r *SQLiteSubmissionRepo) Update(ctx context.Context, id string, patch domain.SubmissionPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)

	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	submission, err := readSubmission(ctx, tx, id)

	if err != nil {
		return err
	}

	patch.Apply(submission)

	payload, err := json.Marshal(submission)

	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE design_kit_submissions SET payload = ? WHERE id = ?`, string(payload), id)

	if err != nil {
		return fmt.Errorf("update submission: %w", err)
	}

	return tx.Commit()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func readSubmission(ctx context.Context, q queryer, id string) (*domain.Submission, error) {
	var payload string
	err := q.QueryRowContext(ctx, `SELECT payload FROM design_kit_submissions WHERE id = ?`, id).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("read submission: %w", err)
	}

	var submission domain.Submission
	if err = json.Unmarshal([]byte(payload), &submission); err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", id, err)
	}

	return &submission, nil
}
