package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Submission is one row of the brand review submission ledger.
type Submission struct {
	ID          string
	DocumentID  string
	DraftID     string
	Email       string
	Service     string
	Date        string
	TimeSlot    string
	SubmittedAt time.Time
}

// LedgerRepository records successful submissions in PostgreSQL.
type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

const ledgerSchema = `
	CREATE TABLE IF NOT EXISTS brand_review_submissions (
		id           UUID PRIMARY KEY,
		document_id  TEXT NOT NULL UNIQUE,
		draft_id     TEXT NOT NULL,
		email        TEXT NOT NULL,
		service      TEXT NOT NULL,
		session_date DATE NOT NULL,
		time_slot    TEXT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// EnsureSchema creates the ledger table if it does not exist.
func (r *LedgerRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, ledgerSchema); err != nil {
		return fmt.Errorf("failed to create ledger table: %w", err)
	}
	return nil
}

// Record inserts a submission. Recording the same document twice is a no-op.
func (r *LedgerRepository) Record(ctx context.Context, s *Submission) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO brand_review_submissions (
			id, document_id, draft_id, email, service, session_date, time_slot, submitted_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (document_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.DocumentID,
		s.DraftID,
		s.Email,
		s.Service,
		s.Date,
		s.TimeSlot,
		s.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}
