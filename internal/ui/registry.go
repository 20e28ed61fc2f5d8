// Package ui owns the per-session UI state: the notification bell of the
// signed-in user and the modal helper. State is created lazily on first use
// and dropped when the session ends or goes idle.
package ui

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/modal"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/notification"
)

// State is the UI state of one session
type State struct {
	Bell   *notification.Bell
	Modals *modal.Helper

	lastSeen time.Time
}

// Registry maps session IDs to UI state and keeps the per-user
// notification refresh trigger.
type Registry struct {
	api    notification.API
	policy notification.Policy
	log    zerolog.Logger
	now    func() time.Time

	mu       sync.Mutex
	states   map[string]*State
	triggers map[int64]uint64
	onBump   []func(userID int64, trigger uint64)
}

// NewRegistry creates an empty registry whose bells talk to api
func NewRegistry(api notification.API, policy notification.Policy, log zerolog.Logger) *Registry {
	return &Registry{
		api:      api,
		policy:   policy,
		log:      log.With().Str("component", "ui_registry").Logger(),
		now:      time.Now,
		states:   make(map[string]*State),
		triggers: make(map[int64]uint64),
	}
}

// Get returns the state for sessionID, creating it on first use. A bell is
// attached only for signed-in users and is replaced if the user changed.
func (r *Registry) Get(sessionID string, user *models.User) *State {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.states[sessionID]
	if !ok {
		st = &State{Modals: modal.New()}
		r.states[sessionID] = st
	}
	st.lastSeen = r.now()

	switch {
	case user == nil:
		st.Bell = nil
	case st.Bell == nil || st.Bell.UserID() != user.ID:
		st.Bell = notification.NewBell(r.api, user.ID, r.policy, r.log)
	}
	return st
}

// Drop forgets the state of sessionID
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.states, sessionID)
	r.mu.Unlock()
}

// Trigger returns the current notification refresh trigger of userID
func (r *Registry) Trigger(userID int64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.triggers[userID]
}

// Bump increments the refresh trigger of userID so every bell of that user
// re-fetches on its next Sync, then notifies listeners.
func (r *Registry) Bump(userID int64) uint64 {
	r.mu.Lock()
	r.triggers[userID]++
	trigger := r.triggers[userID]
	listeners := r.onBump
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(userID, trigger)
	}
	return trigger
}

// OnBump registers fn to be called after every Bump
func (r *Registry) OnBump(fn func(userID int64, trigger uint64)) {
	r.mu.Lock()
	r.onBump = append(r.onBump, fn)
	r.mu.Unlock()
}

// EvictIdle drops every state not used within maxIdle and returns how many were dropped
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, st := range r.states {
		if st.lastSeen.Before(cutoff) {
			delete(r.states, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live states
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}
