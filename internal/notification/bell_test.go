package notification_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walkingguide-web/internal/mocks"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/notification"
)

func ptr(v int64) *int64 { return &v }

func sample() []models.Notification {
	return []models.Notification{
		{ID: 1, UserID: 7, Type: models.NotificationArticleLike, IsRead: false, ArticleID: ptr(10)},
		{ID: 2, UserID: 7, Type: models.NotificationBookingApproved, IsRead: false, TourID: ptr(5)},
		{ID: 3, UserID: 7, Type: models.NotificationSystem, IsRead: true},
	}
}

func loadedBell(t *testing.T, api *mocks.MockNotificationAPI, policy notification.Policy) *notification.Bell {
	t.Helper()
	bell := notification.NewBell(api, 7, policy, zerolog.Nop())
	require.NoError(t, bell.Sync(context.Background(), 0))
	return bell
}

func TestSync_FetchesListAndCountIndependently(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 2)
	bell := loadedBell(t, api, notification.PolicyRollback)

	view := bell.View()
	assert.Len(t, view.Notifications, 3)
	assert.Equal(t, 2, view.UnreadCount)
	assert.Equal(t, 1, api.ListCalls)
	assert.Equal(t, 1, api.CountCalls)

	// same trigger: no refetch
	require.NoError(t, bell.Sync(context.Background(), 0))
	assert.Equal(t, 1, api.ListCalls)

	// trigger changed: refetch both
	require.NoError(t, bell.Sync(context.Background(), 1))
	assert.Equal(t, 2, api.ListCalls)
	assert.Equal(t, 2, api.CountCalls)
}

func TestSync_PartialFailureKeepsSuccessfulHalf(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 2)
	api.CountErr = errors.New("boom")
	bell := notification.NewBell(api, 7, notification.PolicyRollback, zerolog.Nop())

	err := bell.Sync(context.Background(), 0)
	require.Error(t, err)
	assert.Len(t, bell.View().Notifications, 3)
	assert.Equal(t, 0, bell.View().UnreadCount)

	// the failed sync is retried on the next call even with the same trigger
	api.CountErr = nil
	require.NoError(t, bell.Sync(context.Background(), 0))
	assert.Equal(t, 2, bell.View().UnreadCount)
}

func TestToggle_OpeningWithUnreadMarksAllRead(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 2)
	bell := loadedBell(t, api, notification.PolicyRollback)

	marked, err := bell.Toggle(context.Background())
	require.NoError(t, err)
	assert.True(t, marked)

	view := bell.View()
	assert.True(t, view.Open)
	assert.Equal(t, 0, view.UnreadCount)
	for _, n := range view.Notifications {
		assert.True(t, n.IsRead)
	}
	assert.Equal(t, 1, api.MarkAllCalls)

	// closing and reopening with nothing unread issues no request
	for i := 0; i < 2; i++ {
		marked, err = bell.Toggle(context.Background())
		require.NoError(t, err)
		assert.False(t, marked)
	}
	assert.Equal(t, 1, api.MarkAllCalls)
}

func TestToggle_OpeningWithoutUnreadIssuesNoRequest(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 0)
	bell := loadedBell(t, api, notification.PolicyRollback)

	marked, err := bell.Toggle(context.Background())
	require.NoError(t, err)
	assert.False(t, marked)
	assert.Equal(t, 0, api.MarkAllCalls)
}

func TestMarkAllRead_RegardlessOfPriorState(t *testing.T) {
	// counter out of sync with the list on purpose
	api := mocks.NewMockNotificationAPI(sample(), 9)
	bell := loadedBell(t, api, notification.PolicyRollback)

	require.NoError(t, bell.MarkAllRead(context.Background()))

	view := bell.View()
	assert.Equal(t, 0, view.UnreadCount)
	for _, n := range view.Notifications {
		assert.True(t, n.IsRead)
	}
}

func TestMarkRead_DecrementsAndFloorsAtZero(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 1)
	bell := loadedBell(t, api, notification.PolicyRollback)

	marked, err := bell.MarkRead(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, marked)
	assert.Equal(t, 0, bell.View().UnreadCount)

	// counter already zero but item 2 still unread: stays at zero
	_, err = bell.MarkRead(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, bell.View().UnreadCount)
	assert.Equal(t, []int64{1, 2}, api.MarkCalls)

	// already read: no request
	marked, err = bell.MarkRead(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, marked)
	assert.Equal(t, []int64{1, 2}, api.MarkCalls)

	_, err = bell.MarkRead(context.Background(), 99)
	assert.ErrorIs(t, err, notification.ErrNotFound)
}

func TestMarkRead_CounterNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		var items []models.Notification
		for i := 0; i < 10; i++ {
			items = append(items, models.Notification{ID: int64(i + 1), IsRead: rng.Intn(2) == 0})
		}
		api := mocks.NewMockNotificationAPI(items, rng.Intn(4))
		if rng.Intn(3) == 0 {
			api.MarkErr = errors.New("flaky")
		}
		bell := loadedBell(t, api, notification.PolicyRollback)

		for step := 0; step < 30; step++ {
			_, _ = bell.MarkRead(context.Background(), int64(rng.Intn(12)+1))
			require.GreaterOrEqual(t, bell.View().UnreadCount, 0)
		}
	}
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 2)
	bell := loadedBell(t, api, notification.PolicyRollback)

	assert.ErrorIs(t, bell.ConfirmDelete(context.Background()), notification.ErrNoPendingDelete)

	require.NoError(t, bell.RequestDelete(1))
	view := bell.View()
	assert.True(t, view.ShowDeleteModal)
	assert.Equal(t, int64(1), view.PendingDelete)

	bell.CancelDelete()
	assert.False(t, bell.View().ShowDeleteModal)
	assert.ErrorIs(t, bell.ConfirmDelete(context.Background()), notification.ErrNoPendingDelete)
	assert.Empty(t, api.DeleteCalls)
	assert.Len(t, bell.View().Notifications, 3)
}

func TestDelete_UnreadDecrementsReadDoesNot(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 2)
	bell := loadedBell(t, api, notification.PolicyRollback)

	require.NoError(t, bell.RequestDelete(3))
	require.NoError(t, bell.ConfirmDelete(context.Background()))
	assert.Equal(t, 2, bell.View().UnreadCount)
	assert.Len(t, bell.View().Notifications, 2)

	require.NoError(t, bell.RequestDelete(1))
	require.NoError(t, bell.ConfirmDelete(context.Background()))
	view := bell.View()
	assert.Equal(t, 1, view.UnreadCount)
	require.Len(t, view.Notifications, 1)
	assert.Equal(t, int64(2), view.Notifications[0].ID)
	assert.False(t, view.ShowDeleteModal)
	assert.Equal(t, []int64{3, 1}, api.DeleteCalls)
}

func TestDelete_UnreadFloorsAtZero(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 0)
	bell := loadedBell(t, api, notification.PolicyRollback)

	require.NoError(t, bell.RequestDelete(1))
	require.NoError(t, bell.ConfirmDelete(context.Background()))
	assert.Equal(t, 0, bell.View().UnreadCount)
}

func TestClick_MarksReadAndReturnsTarget(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 2)
	bell := loadedBell(t, api, notification.PolicyRollback)

	target, marked, err := bell.Click(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, marked)
	assert.Equal(t, "/tours/5", target)
	assert.Equal(t, 1, bell.View().UnreadCount)
	assert.Equal(t, []int64{2}, api.MarkCalls)

	// read notification: navigates without a request
	target, marked, err = bell.Click(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, marked)
	assert.Equal(t, "", target)
	assert.Equal(t, []int64{2}, api.MarkCalls)
}

func TestRollbackPolicy_RestoresStateOnFailure(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 2)
	api.MarkAllErr = errors.New("offline")
	api.DeleteErr = errors.New("offline")
	api.MarkErr = errors.New("offline")
	bell := loadedBell(t, api, notification.PolicyRollback)
	before := bell.View()

	assert.Error(t, bell.MarkAllRead(context.Background()))
	assert.Equal(t, before.Notifications, bell.View().Notifications)
	assert.Equal(t, 2, bell.View().UnreadCount)

	_, err := bell.MarkRead(context.Background(), 1)
	assert.Error(t, err)
	assert.False(t, bell.View().Notifications[0].IsRead)
	assert.Equal(t, 2, bell.View().UnreadCount)

	require.NoError(t, bell.RequestDelete(1))
	assert.Error(t, bell.ConfirmDelete(context.Background()))
	assert.Len(t, bell.View().Notifications, 3)
	assert.Equal(t, 2, bell.View().UnreadCount)
}

func TestRefetchPolicy_ReloadsServerStateOnFailure(t *testing.T) {
	api := mocks.NewMockNotificationAPI(sample(), 2)
	bell := loadedBell(t, api, notification.PolicyRefetch)

	// the server meanwhile has one more notification and a different count
	api.Items = append(api.Items, models.Notification{ID: 4, IsRead: false, PlaceID: ptr(8)})
	api.Count = 3
	api.MarkErr = errors.New("offline")

	_, err := bell.MarkRead(context.Background(), 1)
	assert.Error(t, err)
	view := bell.View()
	assert.Len(t, view.Notifications, 4)
	assert.Equal(t, 3, view.UnreadCount)
	assert.Equal(t, 2, api.ListCalls)
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, notification.PolicyRefetch, notification.ParsePolicy("refetch"))
	assert.Equal(t, notification.PolicyRollback, notification.ParsePolicy("rollback"))
	assert.Equal(t, notification.PolicyRollback, notification.ParsePolicy(""))
}
