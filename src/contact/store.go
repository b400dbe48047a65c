// Package contact persists "Get in Touch" submissions to a local SQLite
// table. The sink is append-only: no uniqueness, no validation, no reads on
// the hot path. Duplicate submissions are stored as separate records.
package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrPersistence wraps any store write failure so the UI can tell the user
// the submission was not recorded.
var ErrPersistence = errors.New("contact store failure")

// timestampLayout matches the stored "YYYY-MM-DD HH:MM:SS" format.
const timestampLayout = "2006-01-02 15:04:05"

// Submission is one contact-form entry.
type Submission struct {
	Name         string
	Email        string
	Message      string
	FeedbackType string
	Timestamp    time.Time
}

// FeedbackTypes are the selectable categories, in display order.
var FeedbackTypes = []string{"Suggestion", "Bug Report", "Compliment", "Question", "Others"}

// Store appends submissions to a SQLite table, creating it lazily.
type Store struct {
	db     *sql.DB
	insert *sql.Stmt
}

// Open opens (or creates) the contacts database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrPersistence, path, err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			name TEXT,
			email TEXT,
			message TEXT,
			feedback_type TEXT,
			timestamp TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("%w: create table: %v", ErrPersistence, err)
	}
	s.insert, err = s.db.Prepare(`
		INSERT INTO contacts (name, email, message, feedback_type, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %v", ErrPersistence, err)
	}
	return nil
}

// Submit appends one record. A zero Timestamp is stamped with the current
// time. Failures are reported, never silently dropped.
func (s *Store) Submit(ctx context.Context, sub Submission) error {
	ts := sub.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.insert.ExecContext(ctx, sub.Name, sub.Email, sub.Message, sub.FeedbackType, ts.Format(timestampLayout))
	if err != nil {
		return fmt.Errorf("%w: insert: %v", ErrPersistence, err)
	}
	return nil
}

// Count returns the number of stored submissions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count: %v", ErrPersistence, err)
	}
	return n, nil
}

// Recent returns up to n submissions, newest first. Used by tests and the
// reader CLI; the dashboard itself never reads back.
func (s *Store) Recent(ctx context.Context, n int) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, email, message, feedback_type, timestamp
		FROM contacts ORDER BY timestamp DESC, rowid DESC LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", ErrPersistence, err)
	}
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		var sub Submission
		var ts string
		if err := rows.Scan(&sub.Name, &sub.Email, &sub.Message, &sub.FeedbackType, &ts); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrPersistence, err)
		}
		if t, perr := time.ParseInLocation(timestampLayout, ts, time.Local); perr == nil {
			sub.Timestamp = t
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows: %v", ErrPersistence, err)
	}
	return out, nil
}

// Close releases the prepared statement and database handle.
func (s *Store) Close() error {
	if s.insert != nil {
		s.insert.Close()
	}
	return s.db.Close()
}
