package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/walkingguide-web/internal/database"
	"github.com/walkingguide-web/internal/models"
)

// sessionRepo is the postgres implementation of SessionRepository
type sessionRepo struct {
	db *database.DB
}

// sessionRow mirrors the sessions table; the user is stored as JSONB
type sessionRow struct {
	ID        string    `db:"id"`
	UserData  []byte    `db:"user_data"`
	Token     string    `db:"token"`
	Language  string    `db:"language"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// NewSessionRepo creates a new postgres session repository
func NewSessionRepo(db *database.DB) SessionRepository {
	return &sessionRepo{db: db}
}

// Get retrieves an unexpired session by ID
func (r *sessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, user_data, token, language, created_at, updated_at, expires_at
		FROM sessions WHERE id = $1 AND expires_at > NOW()
	`

	var row sessionRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	session := &models.Session{
		ID:        row.ID,
		Token:     row.Token,
		Language:  row.Language,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		ExpiresAt: row.ExpiresAt,
	}
	if len(row.UserData) > 0 && string(row.UserData) != "null" {
		var user models.User
		if err := json.Unmarshal(row.UserData, &user); err != nil {
			return nil, fmt.Errorf("failed to decode session user: %w", err)
		}
		session.User = &user
	}
	return session, nil
}

// Save inserts or replaces a session
func (r *sessionRepo) Save(ctx context.Context, session *models.Session) error {
	var userData []byte
	if session.User != nil {
		var err error
		if userData, err = json.Marshal(session.User); err != nil {
			return fmt.Errorf("failed to encode session user: %w", err)
		}
	}

	session.UpdatedAt = time.Now()
	row := sessionRow{
		ID:        session.ID,
		UserData:  userData,
		Token:     session.Token,
		Language:  session.Language,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		ExpiresAt: session.ExpiresAt,
	}

	query := `
		INSERT INTO sessions (id, user_data, token, language, created_at, updated_at, expires_at)
		VALUES (:id, :user_data, :token, :language, :created_at, :updated_at, :expires_at)
		ON CONFLICT (id) DO UPDATE SET
			user_data = EXCLUDED.user_data,
			token = EXCLUDED.token,
			language = EXCLUDED.language,
			updated_at = EXCLUDED.updated_at,
			expires_at = EXCLUDED.expires_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session; deleting an unknown session is not an error
func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// DeleteExpired removes every session that expired before now
func (r *sessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Count returns the number of stored sessions
func (r *sessionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sessions`)
	return count, err
}
