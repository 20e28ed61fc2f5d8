package repository

import (
	"context"
	"sync"
	"time"

	"github.com/walkingguide-web/internal/models"
)

// memorySessionRepo keeps sessions in a map; used when SESSION_STORE=memory
type memorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	now      func() time.Time
}

// NewMemorySessionRepo creates an in-memory session repository
func NewMemorySessionRepo() SessionRepository {
	return &memorySessionRepo{
		sessions: make(map[string]*models.Session),
		now:      time.Now,
	}
}

func (r *memorySessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok || s.Expired(r.now()) {
		return nil, nil
	}
	return s.Clone(), nil
}

func (r *memorySessionRepo) Save(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = r.now()

	r.mu.Lock()
	r.sessions[session.ID] = session.Clone()
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memorySessionRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}
