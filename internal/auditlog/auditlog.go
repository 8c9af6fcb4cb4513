// Package auditlog provides the append-only record of contact-form attempts.
// Every syntactically valid submission is written here regardless of whether
// the email notification succeeded: the business requirement is that no
// inquiry is ever lost.
package auditlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iis-mfg/precision-site/internal/types"
)

// Store appends submissions to PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// NewStore wraps an existing pool. The caller retains ownership of the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Append writes one submission record.
func (s *Store) Append(ctx context.Context, sub types.ContactSubmission) error {
	payload, err := json.Marshal(sub.Form)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO contact_submissions (id, submitted_at, payload, email_success, email_error, smtp_configured)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID, sub.SubmittedAt, payload, sub.EmailSuccess, nullable(sub.EmailError), sub.SMTPConfigured,
	)
	if err != nil {
		return fmt.Errorf("failed to append submission: %w", err)
	}
	return nil
}

// Recent retrieves the most recent submissions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.ContactSubmission, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, submitted_at, payload, email_success, COALESCE(email_error, ''), smtp_configured
		 FROM contact_submissions ORDER BY submitted_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []types.ContactSubmission
	for rows.Next() {
		var sub types.ContactSubmission
		var payload []byte
		if err := rows.Scan(&sub.ID, &sub.SubmittedAt, &payload, &sub.EmailSuccess, &sub.EmailError, &sub.SMTPConfigured); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if err := json.Unmarshal(payload, &sub.Form); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission payload: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ConsoleLog writes submissions as JSON lines, used in development and as a
// last-resort fallback when no database is configured.
type ConsoleLog struct {
	Out io.Writer
}

type consoleEntry struct {
	Timestamp      string `json:"timestamp"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Company        string `json:"company"`
	Interest       string `json:"interest"`
	EmailSuccess   bool   `json:"emailSuccess"`
	EmailError     string `json:"emailError,omitempty"`
	SMTPConfigured bool   `json:"smtpConfigured"`
}

// Append writes one submission line and raises a warning line when the
// notification could not be confirmed, for monitoring.
func (c *ConsoleLog) Append(_ context.Context, sub types.ContactSubmission) error {
	entry := consoleEntry{
		Timestamp:      sub.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
		Name:           sub.Form.Name,
		Email:          sub.Form.Email,
		Company:        sub.Form.Company,
		Interest:       sub.Form.Interest,
		EmailSuccess:   sub.EmailSuccess,
		EmailError:     sub.EmailError,
		SMTPConfigured: sub.SMTPConfigured,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}
	if _, err := fmt.Fprintf(c.Out, "[CONTACT SUBMISSION] %s\n", line); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	if !sub.EmailSuccess || !sub.SMTPConfigured {
		reason := "EMAIL_SEND_FAILED"
		if !sub.SMTPConfigured {
			reason = "SMTP_NOT_CONFIGURED"
		}
		log.Printf("[contact] alert: company=%s reason=%s error=%q", sub.Form.Company, reason, sub.EmailError)
	}

	return nil
}
