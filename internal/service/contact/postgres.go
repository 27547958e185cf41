package contact

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/zhouzirui/folio/backend/internal/model/contact"
)

//go:embed schema.sql
var schema string

// psq is the PostgreSQL statement builder with dollar placeholders.
var psq = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresRecorder stores submissions in the contact_submissions table.
type PostgresRecorder struct {
	db *sql.DB
}

// NewPostgresRecorder wraps an open database handle.
func NewPostgresRecorder(db *sql.DB) *PostgresRecorder {
	return &PostgresRecorder{db: db}
}

// EnsureSchema creates the table when missing.
func (r *PostgresRecorder) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating contact schema: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) Record(ctx context.Context, sub contact.Submission) error {
	extra := sub.Extra
	if extra == nil {
		extra = map[string]string{}
	}
	extraJSON, err := json.Marshal(extra)
	if err != nil {
		return fmt.Errorf("encoding extra fields: %w", err)
	}

	query, args, err := psq.Insert("contact_submissions").
		Columns("id", "name", "email", "subject", "message", "company", "phone",
			"budget", "timeline", "extra", "user_id", "received_at").
		Values(sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message, sub.Company, sub.Phone,
			sub.Budget, sub.Timeline, extraJSON, sub.UserID, sub.ReceivedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting contact submission: %w", err)
	}
	return nil
}
