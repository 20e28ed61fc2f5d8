// Package notification keeps the per-session state behind the notification
// bell and the notifications page: the fetched list, the unread counter, the
// open/closed dropdown and the pending delete confirmation.
//
// Read and delete actions are optimistic. The local state is changed before
// the backend answers; when the request fails the bell either restores the
// previous state or re-fetches from the server, depending on its Policy.
package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/models"
)

// API is the subset of the REST client the bell talks to
type API interface {
	Notifications(ctx context.Context, userID int64) ([]models.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkNotificationRead(ctx context.Context, notificationID int64) error
	MarkAllNotificationsRead(ctx context.Context, userID int64) error
	DeleteNotification(ctx context.Context, notificationID int64) error
}

// Policy decides what happens to optimistic state when the request behind it fails
type Policy string

const (
	// PolicyRollback restores the state from before the failed action
	PolicyRollback Policy = "rollback"
	// PolicyRefetch replaces local state with a fresh list and count from the server
	PolicyRefetch Policy = "refetch"
)

// ParsePolicy maps a configuration value to a Policy, defaulting to rollback
func ParsePolicy(s string) Policy {
	if Policy(s) == PolicyRefetch {
		return PolicyRefetch
	}
	return PolicyRollback
}

var (
	// ErrNotFound is returned when an action names a notification not in the list
	ErrNotFound = errors.New("notification not in list")
	// ErrNoPendingDelete is returned by ConfirmDelete without a prior RequestDelete
	ErrNoPendingDelete = errors.New("no notification awaiting delete confirmation")
)

// Bell is the notification state of one signed-in session. It is safe for
// concurrent use; actions are serialized.
type Bell struct {
	mu     sync.Mutex
	api    API
	userID int64
	policy Policy
	log    zerolog.Logger

	items  []models.Notification
	unread int
	open   bool

	showDeleteModal bool
	pendingDelete   int64

	loaded      bool
	seenTrigger uint64
}

// NewBell creates an empty bell for userID
func NewBell(api API, userID int64, policy Policy, log zerolog.Logger) *Bell {
	return &Bell{
		api:    api,
		userID: userID,
		policy: policy,
		log:    log.With().Str("component", "notification_bell").Int64("user_id", userID).Logger(),
	}
}

// UserID returns the user the bell belongs to
func (b *Bell) UserID() int64 {
	return b.userID
}

// View is a copy of the bell state for rendering
type View struct {
	Notifications   []models.Notification
	UnreadCount     int
	Open            bool
	ShowDeleteModal bool
	PendingDelete   int64
}

// View returns a snapshot safe to hand to templates
func (b *Bell) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := make([]models.Notification, len(b.items))
	copy(items, b.items)
	return View{
		Notifications:   items,
		UnreadCount:     b.unread,
		Open:            b.open,
		ShowDeleteModal: b.showDeleteModal,
		PendingDelete:   b.pendingDelete,
	}
}

// Sync fetches list and count on first use and whenever trigger differs from
// the last trigger value that was fetched successfully.
func (b *Bell) Sync(ctx context.Context, trigger uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loaded && trigger == b.seenTrigger {
		return nil
	}
	if err := b.fetchLocked(ctx); err != nil {
		return err
	}
	b.loaded = true
	b.seenTrigger = trigger
	return nil
}

// Refresh unconditionally re-fetches list and count
func (b *Bell) Refresh(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fetchLocked(ctx)
}

// fetchLocked issues the list and count requests independently. Whichever
// succeeds is applied even if the other one fails.
func (b *Bell) fetchLocked(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		items    []models.Notification
		count    int
		listErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		items, listErr = b.api.Notifications(ctx, b.userID)
	}()
	go func() {
		defer wg.Done()
		count, countErr = b.api.UnreadCount(ctx, b.userID)
	}()
	wg.Wait()

	if listErr == nil {
		b.items = items
	} else {
		listErr = fmt.Errorf("fetch notifications: %w", listErr)
	}
	if countErr == nil {
		b.unread = count
	} else {
		countErr = fmt.Errorf("fetch unread count: %w", countErr)
	}
	return errors.Join(listErr, countErr)
}

// Toggle opens or closes the dropdown. Opening it while there are unread
// notifications marks all of them read; marked reports whether that request
// was sent.
func (b *Bell) Toggle(ctx context.Context) (marked bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.open = !b.open
	if !b.open || b.unread == 0 {
		return false, nil
	}
	return true, b.markAllLocked(ctx)
}

// Close closes the dropdown without side effects
func (b *Bell) Close() {
	b.mu.Lock()
	b.open = false
	b.mu.Unlock()
}

// MarkAllRead sets every notification read and the counter to zero
func (b *Bell) MarkAllRead(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.markAllLocked(ctx)
}

func (b *Bell) markAllLocked(ctx context.Context) error {
	snap := b.snapshotLocked()

	for i := range b.items {
		b.items[i].IsRead = true
	}
	b.unread = 0

	if err := b.api.MarkAllNotificationsRead(ctx, b.userID); err != nil {
		return b.reconcileLocked(ctx, snap, fmt.Errorf("mark all notifications read: %w", err))
	}
	return nil
}

// MarkRead marks one notification read and decrements the counter, never
// below zero. Marking an already read notification sends nothing and reports
// marked as false.
func (b *Bell) MarkRead(ctx context.Context, id int64) (marked bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexLocked(id)
	if idx < 0 {
		return false, ErrNotFound
	}
	return b.markReadLocked(ctx, idx)
}

func (b *Bell) markReadLocked(ctx context.Context, idx int) (bool, error) {
	if b.items[idx].IsRead {
		return false, nil
	}
	snap := b.snapshotLocked()

	id := b.items[idx].ID
	b.items[idx].IsRead = true
	b.unread = decrement(b.unread)

	if err := b.api.MarkNotificationRead(ctx, id); err != nil {
		return true, b.reconcileLocked(ctx, snap, fmt.Errorf("mark notification %d read: %w", id, err))
	}
	return true, nil
}

// RequestDelete opens the delete confirmation for id
func (b *Bell) RequestDelete(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.indexLocked(id) < 0 {
		return ErrNotFound
	}
	b.showDeleteModal = true
	b.pendingDelete = id
	return nil
}

// CancelDelete closes the delete confirmation without deleting
func (b *Bell) CancelDelete() {
	b.mu.Lock()
	b.showDeleteModal = false
	b.pendingDelete = 0
	b.mu.Unlock()
}

// ConfirmDelete deletes the notification awaiting confirmation. Removing an
// unread notification decrements the counter, never below zero.
func (b *Bell) ConfirmDelete(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.showDeleteModal {
		return ErrNoPendingDelete
	}
	id := b.pendingDelete
	b.showDeleteModal = false
	b.pendingDelete = 0

	idx := b.indexLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	snap := b.snapshotLocked()

	wasUnread := !b.items[idx].IsRead
	b.items = append(b.items[:idx], b.items[idx+1:]...)
	if wasUnread {
		b.unread = decrement(b.unread)
	}

	if err := b.api.DeleteNotification(ctx, id); err != nil {
		return b.reconcileLocked(ctx, snap, fmt.Errorf("delete notification %d: %w", id, err))
	}
	return nil
}

// Click marks the notification read when it is unread and returns its
// navigation target. The target is returned even when marking fails, so the
// caller can navigate regardless.
func (b *Bell) Click(ctx context.Context, id int64) (target string, marked bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexLocked(id)
	if idx < 0 {
		return "", false, ErrNotFound
	}
	target = Target(b.items[idx])
	b.open = false
	marked, err = b.markReadLocked(ctx, idx)
	return target, marked, err
}

type snapshot struct {
	items  []models.Notification
	unread int
}

func (b *Bell) snapshotLocked() snapshot {
	items := make([]models.Notification, len(b.items))
	copy(items, b.items)
	return snapshot{items: items, unread: b.unread}
}

// reconcileLocked applies the failure policy and returns cause
func (b *Bell) reconcileLocked(ctx context.Context, snap snapshot, cause error) error {
	b.log.Error().Err(cause).Str("policy", string(b.policy)).Msg("Notification action failed")

	switch b.policy {
	case PolicyRefetch:
		if err := b.fetchLocked(ctx); err != nil {
			b.log.Error().Err(err).Msg("Refetch after failed action failed")
			b.items, b.unread = snap.items, snap.unread
		}
	default:
		b.items, b.unread = snap.items, snap.unread
	}
	return cause
}

func (b *Bell) indexLocked(id int64) int {
	for i := range b.items {
		if b.items[i].ID == id {
			return i
		}
	}
	return -1
}

func decrement(n int) int {
	return max(0, n-1)
}
