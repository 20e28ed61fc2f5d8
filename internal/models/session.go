package models

import "time"

// Session is the server-side record behind the session cookie. A session
// without a user is an anonymous visitor that still carries a language.
type Session struct {
	ID        string    `json:"id" db:"id"`
	User      *User     `json:"user,omitempty" db:"-"`
	Token     string    `json:"-" db:"token"`
	Language  string    `json:"language" db:"language"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// Authenticated reports whether the session carries a signed-in user
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.Token != ""
}

// Expired reports whether the session is past its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Clone returns a deep copy so callers cannot mutate stored state
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return &out
}
