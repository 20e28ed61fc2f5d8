package mocks

import (
	"context"
	"sync"

	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/notification"
)

// MockNotificationAPI is an in-memory stand-in for the notification endpoints
type MockNotificationAPI struct {
	mu sync.Mutex

	Items []models.Notification
	Count int

	ListErr    error
	CountErr   error
	MarkErr    error
	MarkAllErr error
	DeleteErr  error

	ListCalls    int
	CountCalls   int
	MarkCalls    []int64
	MarkAllCalls int
	DeleteCalls  []int64
}

// Verify interface compliance
var _ notification.API = (*MockNotificationAPI)(nil)

func NewMockNotificationAPI(items []models.Notification, count int) *MockNotificationAPI {
	return &MockNotificationAPI{Items: items, Count: count}
}

func (m *MockNotificationAPI) Notifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.Notification, len(m.Items))
	copy(out, m.Items)
	return out, nil
}

func (m *MockNotificationAPI) UnreadCount(ctx context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CountCalls++
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return m.Count, nil
}

func (m *MockNotificationAPI) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MarkCalls = append(m.MarkCalls, notificationID)
	return m.MarkErr
}

func (m *MockNotificationAPI) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MarkAllCalls++
	return m.MarkAllErr
}

func (m *MockNotificationAPI) DeleteNotification(ctx context.Context, notificationID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, notificationID)
	return m.DeleteErr
}
