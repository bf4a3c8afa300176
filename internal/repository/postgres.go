package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fitbot/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository persists completed onboarding profiles keyed by
// user identity. It is the external persistence collaborator: the
// orchestrator never touches it; the caller hands over a snapshot once
// the conversation completes.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// SaveProfile upserts a completed profile record for a user.
func (r *PostgresRepository) SaveProfile(ctx context.Context, userID uuid.UUID, record *model.ProfileRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	query := `
		INSERT INTO user_profiles (user_id, profile, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET profile = EXCLUDED.profile, updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, payload); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile loads a previously saved profile record. Returns nil when
// the user has none.
func (r *PostgresRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*model.ProfileRecord, error) {
	var payload []byte
	query := `SELECT profile FROM user_profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &payload, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var record model.ProfileRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &record, nil
}

// LogConversation stores the finished conversation transcript for
// operator review.
func (r *PostgresRepository) LogConversation(ctx context.Context, userID uuid.UUID, history []model.ChatMessage) error {
	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}

	query := `
		INSERT INTO onboarding_conversations (user_id, transcript, created_at)
		VALUES ($1, $2, NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, userID, payload); err != nil {
		return fmt.Errorf("failed to log conversation: %w", err)
	}
	return nil
}
