package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"resonate/internal/questionnaire"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Draft is a named snapshot of an in-progress questionnaire, so an
// interrupted session can be resumed later.
type Draft struct {
	ID        string
	Name      string
	Standard  string
	Answers   questionnaire.AnswerMap
	UpdatedAt time.Time
}

// DraftStore persists drafts in a local SQLite database.
type DraftStore struct {
	db *sql.DB
}

// NewDraftStore creates or opens the draft database.
func NewDraftStore(path string) (*DraftStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &DraftStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *DraftStore) Close() error {
	return s.db.Close()
}

func (s *DraftStore) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS drafts (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE,
		standard TEXT,
		answers JSON,
		updated_at TIMESTAMP
	);`)
	return err
}

// Save upserts a draft by name. A missing ID is assigned.
func (s *DraftStore) Save(ctx context.Context, d *Draft) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.UpdatedAt = time.Now().UTC()

	answers, err := json.Marshal(d.Answers)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO drafts (id, name, standard, answers, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			standard=excluded.standard,
			answers=excluded.answers,
			updated_at=excluded.updated_at
	`, d.ID, d.Name, d.Standard, answers, d.UpdatedAt)
	return err
}

// Load retrieves a draft by name.
func (s *DraftStore) Load(ctx context.Context, name string) (*Draft, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, standard, answers, updated_at FROM drafts WHERE name = ?
	`, name)

	var d Draft
	var answers []byte
	if err := row.Scan(&d.ID, &d.Name, &d.Standard, &answers, &d.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("draft %q not found", name)
		}
		return nil, err
	}
	if err := json.Unmarshal(answers, &d.Answers); err != nil {
		return nil, fmt.Errorf("corrupt draft %q: %w", name, err)
	}
	return &d, nil
}

// List returns all drafts, most recently updated first, without answers.
func (s *DraftStore) List(ctx context.Context) ([]Draft, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, standard, updated_at FROM drafts ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		var d Draft
		if err := rows.Scan(&d.ID, &d.Name, &d.Standard, &d.UpdatedAt); err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

// Delete removes a draft by name. Deleting a missing draft is not an error.
func (s *DraftStore) Delete(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE name = ?`, name)
	return err
}
