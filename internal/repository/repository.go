package repository

import (
	"context"
	"time"

	"github.com/walkingguide-web/internal/database"
	"github.com/walkingguide-web/internal/models"
)

// SessionRepository defines the interface for session persistence
type SessionRepository interface {
	// Get returns nil, nil when the session is unknown or expired
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Session SessionRepository
}

// New creates postgres-backed repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Session: NewSessionRepo(db),
	}
}

// NewInMemory creates repositories that live in process memory
func NewInMemory() *Repositories {
	return &Repositories{
		Session: NewMemorySessionRepo(),
	}
}
