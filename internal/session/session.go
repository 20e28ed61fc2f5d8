// Package session ties the session cookie to a stored models.Session. The
// stored session is the single source of truth for the signed-in user, the
// API token and the UI language.
package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/i18n"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/repository"
)

const contextKey = "session"

// LanguageParam is the query parameter that switches the UI language
const LanguageParam = "lang"

// Options configures the session cookie
type Options struct {
	CookieName      string
	TTL             time.Duration
	SecureCookie    bool
	DefaultLanguage i18n.Lang
}

// Manager loads, creates and ends sessions
type Manager struct {
	repo repository.SessionRepository
	opts Options
	log  zerolog.Logger
	now  func() time.Time

	mu    sync.RWMutex
	onEnd []func(sessionID string)
}

// NewManager creates a session manager over repo
func NewManager(repo repository.SessionRepository, opts Options, log zerolog.Logger) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "wg_session"
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = i18n.Vietnamese
	}
	return &Manager{
		repo: repo,
		opts: opts,
		log:  log.With().Str("component", "session").Logger(),
		now:  time.Now,
	}
}

// OnEnd registers fn to run with the old session ID whenever a session ends,
// either on logout or when login rotates the ID.
func (m *Manager) OnEnd(fn func(sessionID string)) {
	m.mu.Lock()
	m.onEnd = append(m.onEnd, fn)
	m.mu.Unlock()
}

func (m *Manager) ended(id string) {
	m.mu.RLock()
	hooks := m.onEnd
	m.mu.RUnlock()
	for _, fn := range hooks {
		fn(id)
	}
}

// Middleware hydrates the session for every request. Visitors without a valid
// cookie get a fresh anonymous session. A ?lang= parameter switches and
// persists the UI language. The API token is attached to the request context.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		s, err := m.load(ctx, c)
		if err != nil {
			m.log.Error().Err(err).Msg("Failed to load session")
		}
		if s == nil {
			s = m.newSession(i18n.Negotiate(c.GetHeader("Accept-Language"), m.opts.DefaultLanguage))
			if err := m.save(ctx, c, s); err != nil {
				m.log.Error().Err(err).Msg("Failed to create session")
			}
		}

		if code := c.Query(LanguageParam); code != "" {
			if lang, ok := i18n.Parse(code); ok && string(lang) != s.Language {
				s.Language = string(lang)
				if err := m.repo.Save(ctx, s); err != nil {
					m.log.Error().Err(err).Msg("Failed to save language")
				}
			}
		}

		c.Set(contextKey, s)
		if s.Authenticated() {
			c.Request = c.Request.WithContext(apiclient.ContextWithToken(ctx, s.Token))
		}
		c.Next()
	}
}

func (m *Manager) load(ctx context.Context, c *gin.Context) (*models.Session, error) {
	id, err := c.Cookie(m.opts.CookieName)
	if err != nil || id == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return m.repo.Get(ctx, id)
}

func (m *Manager) newSession(lang i18n.Lang) *models.Session {
	now := m.now()
	return &models.Session{
		ID:        uuid.NewString(),
		Language:  string(lang),
		CreatedAt: now,
		ExpiresAt: now.Add(m.opts.TTL),
	}
}

func (m *Manager) save(ctx context.Context, c *gin.Context, s *models.Session) error {
	if err := m.repo.Save(ctx, s); err != nil {
		return err
	}
	m.setCookie(c, s.ID, int(m.opts.TTL.Seconds()))
	return nil
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.opts.CookieName, value, maxAge, "/", "", m.opts.SecureCookie, true)
}

// FromContext returns the session hydrated by Middleware
func FromContext(c *gin.Context) *models.Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}

// CurrentUser returns the signed-in user or nil
func CurrentUser(c *gin.Context) *models.User {
	if s := FromContext(c); s.Authenticated() {
		return s.User
	}
	return nil
}

// Language returns the UI language of the current session
func Language(c *gin.Context) i18n.Lang {
	if s := FromContext(c); s != nil {
		if lang, ok := i18n.Parse(s.Language); ok {
			return lang
		}
	}
	return i18n.Vietnamese
}

// Login stores user and token in a new session. The session ID is rotated so
// an ID issued before sign-in never becomes authenticated.
func (m *Manager) Login(c *gin.Context, user *models.User, token string) error {
	ctx := c.Request.Context()
	old := FromContext(c)

	lang := m.opts.DefaultLanguage
	if old != nil {
		lang = i18n.Lang(old.Language)
	}
	s := m.newSession(lang)
	s.User = user
	s.Token = token

	if err := m.save(ctx, c, s); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if old != nil {
		if err := m.repo.Delete(ctx, old.ID); err != nil {
			m.log.Warn().Err(err).Str("session_id", old.ID).Msg("Failed to delete pre-login session")
		}
		m.ended(old.ID)
	}

	c.Set(contextKey, s)
	c.Request = c.Request.WithContext(apiclient.ContextWithToken(ctx, token))

	m.log.Info().Int64("user_id", user.ID).Msg("User signed in")
	return nil
}

// UpdateUser replaces the stored user after a profile change
func (m *Manager) UpdateUser(c *gin.Context, user *models.User) error {
	s := FromContext(c)
	if !s.Authenticated() {
		return fmt.Errorf("no signed-in user")
	}
	s.User = user
	return m.repo.Save(c.Request.Context(), s)
}

// Logout deletes the stored session, clears the cookie and drops every piece
// of UI state tied to the session.
func (m *Manager) Logout(c *gin.Context) error {
	s := FromContext(c)
	m.setCookie(c, "", -1)
	if s == nil {
		return nil
	}

	c.Set(contextKey, m.newSession(i18n.Lang(s.Language)))
	m.ended(s.ID)

	if err := m.repo.Delete(c.Request.Context(), s.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if s.User != nil {
		m.log.Info().Int64("user_id", s.User.ID).Msg("User signed out")
	}
	return nil
}
