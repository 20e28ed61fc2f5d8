package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/i18n"
	"github.com/walkingguide-web/internal/mocks"
	"github.com/walkingguide-web/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type harness struct {
	repo    *mocks.MockSessionRepository
	manager *Manager
	router  *gin.Engine
	ended   []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{repo: mocks.NewMockSessionRepository()}
	h.manager = NewManager(h.repo, Options{CookieName: "wg_session", TTL: time.Hour}, zerolog.Nop())
	h.manager.OnEnd(func(id string) { h.ended = append(h.ended, id) })

	h.router = gin.New()
	h.router.Use(h.manager.Middleware())
	h.router.GET("/whoami", func(c *gin.Context) {
		s := FromContext(c)
		c.JSON(http.StatusOK, gin.H{
			"id":    s.ID,
			"lang":  Language(c),
			"token": apiclient.TokenFromContext(c.Request.Context()),
		})
	})
	h.router.POST("/login", func(c *gin.Context) {
		user := &models.User{ID: 9, FullName: "Hoa", Email: "hoa@example.com", Role: models.RoleUser}
		require.NoError(t, h.manager.Login(c, user, "tok-9"))
		c.Status(http.StatusNoContent)
	})
	h.router.POST("/logout", func(c *gin.Context) {
		require.NoError(t, h.manager.Logout(c))
		c.Status(http.StatusNoContent)
	})
	return h
}

func (h *harness) do(method, path string, cookie *http.Cookie, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "wg_session" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestMiddleware_NewVisitorGetsAnonymousSession(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodGet, "/whoami", nil, map[string]string{"Accept-Language": "en-US,en;q=0.9"})
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Contains(t, w.Body.String(), `"lang":"en"`)
	assert.Contains(t, w.Body.String(), `"token":""`)

	stored := h.repo.Sessions[cookie.Value]
	require.NotNil(t, stored)
	assert.False(t, stored.Authenticated())
}

func TestMiddleware_DefaultsToVietnamese(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/whoami", nil, nil)
	assert.Contains(t, w.Body.String(), `"lang":"vi"`)
}

func TestMiddleware_LangParamPersists(t *testing.T) {
	h := newHarness(t)
	first := h.do(http.MethodGet, "/whoami", nil, nil)
	cookie := sessionCookie(t, first)

	w := h.do(http.MethodGet, "/whoami?lang=en", cookie, nil)
	assert.Contains(t, w.Body.String(), `"lang":"en"`)

	w = h.do(http.MethodGet, "/whoami", cookie, nil)
	assert.Contains(t, w.Body.String(), `"lang":"en"`)

	// unsupported codes are ignored
	w = h.do(http.MethodGet, "/whoami?lang=fr", cookie, nil)
	assert.Contains(t, w.Body.String(), `"lang":"en"`)
}

func TestMiddleware_UnknownCookieStartsOver(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/whoami", &http.Cookie{Name: "wg_session", Value: "not-a-uuid"}, nil)
	assert.NotEqual(t, "not-a-uuid", sessionCookie(t, w).Value)
}

func TestLogin_RotatesSessionAndAttachesToken(t *testing.T) {
	h := newHarness(t)
	anon := sessionCookie(t, h.do(http.MethodGet, "/whoami?lang=en", nil, nil))

	w := h.do(http.MethodPost, "/login", anon, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	authed := sessionCookie(t, w)

	assert.NotEqual(t, anon.Value, authed.Value)
	assert.Equal(t, []string{anon.Value}, h.ended)
	assert.NotContains(t, h.repo.Sessions, anon.Value)

	stored := h.repo.Sessions[authed.Value]
	require.NotNil(t, stored)
	assert.True(t, stored.Authenticated())
	assert.Equal(t, string(i18n.English), stored.Language, "language survives sign-in")

	w = h.do(http.MethodGet, "/whoami", authed, nil)
	assert.Contains(t, w.Body.String(), `"token":"tok-9"`)
}

func TestLogout_ClearsStoreCookieAndUIState(t *testing.T) {
	h := newHarness(t)
	anon := sessionCookie(t, h.do(http.MethodGet, "/whoami", nil, nil))
	authed := sessionCookie(t, h.do(http.MethodPost, "/login", anon, nil))
	h.ended = nil

	w := h.do(http.MethodPost, "/logout", authed, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	cleared := sessionCookie(t, w)
	assert.Equal(t, "", cleared.Value)
	assert.True(t, cleared.MaxAge < 0)
	assert.NotContains(t, h.repo.Sessions, authed.Value)
	assert.Equal(t, []string{authed.Value}, h.ended)

	// the old cookie no longer authenticates
	w = h.do(http.MethodGet, "/whoami", authed, nil)
	assert.Contains(t, w.Body.String(), `"token":""`)
}
