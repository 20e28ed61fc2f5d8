package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/repository"
)

// MockSessionRepository is an in-memory mock of SessionRepository with error injection
type MockSessionRepository struct {
	mu       sync.Mutex
	Sessions map[string]*models.Session

	GetErr           error
	SaveErr          error
	DeleteErr        error
	DeleteExpiredErr error

	SaveCalls          int
	DeleteCalls        []string
	DeleteExpiredCalls int
}

var _ repository.SessionRepository = (*MockSessionRepository)(nil)

// NewMockSessionRepository creates an empty mock repository
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{Sessions: make(map[string]*models.Session)}
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	s, ok := m.Sessions[id]
	if !ok || s.Expired(time.Now()) {
		return nil, nil
	}
	return s.Clone(), nil
}

func (m *MockSessionRepository) Save(ctx context.Context, session *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Sessions[session.ID] = session.Clone()
	return nil
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Sessions, id)
	return nil
}

func (m *MockSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteExpiredCalls++
	if m.DeleteExpiredErr != nil {
		return 0, m.DeleteExpiredErr
	}
	var removed int64
	for id, s := range m.Sessions {
		if s.Expired(now) {
			delete(m.Sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (m *MockSessionRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sessions), nil
}

// DeleteExpiredCallCount returns DeleteExpiredCalls under the lock
func (m *MockSessionRepository) DeleteExpiredCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.DeleteExpiredCalls
}
