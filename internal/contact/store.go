package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrbear1024/xgrowth/internal/db"
)

// Store manages persistence of contact submissions.
type Store struct {
	db *db.DB
}

// NewStore creates a new submission store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create saves a submission, assigning an ID and timestamp when missing.
func (s *Store) Create(ctx context.Context, sub Submission) (*Submission, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, stage, message, remote_addr, user_agent, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Email, sub.Stage, sub.Message, sub.RemoteAddr, sub.UserAgent, sub.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}
	return &sub, nil
}

// List returns the newest submissions first. A non-positive limit returns
// all of them.
func (s *Store) List(ctx context.Context, limit int) ([]Submission, error) {
	query := `SELECT id, name, email, stage, message, remote_addr, user_agent, created_at
		 FROM contact_submissions ORDER BY created_at DESC, id`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Stage, &sub.Message, &sub.RemoteAddr, &sub.UserAgent, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// Count returns the number of stored submissions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting submissions: %w", err)
	}
	return n, nil
}
