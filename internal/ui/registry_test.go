package ui

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walkingguide-web/internal/mocks"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/notification"
)

func newRegistry() (*Registry, *mocks.MockNotificationAPI) {
	api := mocks.NewMockNotificationAPI([]models.Notification{
		{ID: 1, Type: models.NotificationArticleLike},
	}, 1)
	return NewRegistry(api, notification.PolicyRollback, zerolog.Nop()), api
}

func TestGet_AnonymousHasNoBell(t *testing.T) {
	r, _ := newRegistry()
	st := r.Get("s1", nil)
	require.NotNil(t, st.Modals)
	assert.Nil(t, st.Bell)
	assert.Same(t, st, r.Get("s1", nil))
}

func TestGet_BellFollowsUser(t *testing.T) {
	r, _ := newRegistry()
	alice := &models.User{ID: 1}
	bob := &models.User{ID: 2}

	bell := r.Get("s1", alice).Bell
	require.NotNil(t, bell)
	assert.Same(t, bell, r.Get("s1", alice).Bell)

	replaced := r.Get("s1", bob).Bell
	assert.NotSame(t, bell, replaced)
	assert.Equal(t, int64(2), replaced.UserID())

	assert.Nil(t, r.Get("s1", nil).Bell)
}

func TestBump_TriggersRefetchOnNextSync(t *testing.T) {
	r, api := newRegistry()
	user := &models.User{ID: 5}
	bell := r.Get("s1", user).Bell
	ctx := context.Background()

	require.NoError(t, bell.Sync(ctx, r.Trigger(5)))
	require.NoError(t, bell.Sync(ctx, r.Trigger(5)))
	assert.Equal(t, 1, api.ListCalls)

	var got []uint64
	r.OnBump(func(userID int64, trigger uint64) { got = append(got, trigger) })
	r.Bump(5)

	require.NoError(t, bell.Sync(ctx, r.Trigger(5)))
	assert.Equal(t, 2, api.ListCalls)
	assert.Equal(t, []uint64{1}, got)
	assert.Equal(t, uint64(0), r.Trigger(6))
}

func TestDropAndEvictIdle(t *testing.T) {
	r, _ := newRegistry()
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	r.Get("old", nil)
	clock = clock.Add(2 * time.Hour)
	r.Get("fresh", nil)
	r.Get("gone", nil)
	r.Drop("gone")

	assert.Equal(t, 1, r.EvictIdle(time.Hour))
	assert.Equal(t, 1, r.Len())
}
