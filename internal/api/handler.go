package api

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/config"
	"github.com/walkingguide-web/internal/debounce"
	"github.com/walkingguide-web/internal/i18n"
	"github.com/walkingguide-web/internal/modal"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/realtime"
	"github.com/walkingguide-web/internal/service"
	"github.com/walkingguide-web/internal/session"
	"github.com/walkingguide-web/internal/ui"
	"github.com/walkingguide-web/internal/validation"
)

// HealthChecker reports whether a dependency is reachable and how its pool is used
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
	Stats() sql.DBStats
}

// Deps are the collaborators the router is built from
type Deps struct {
	API      *apiclient.Client
	Services *service.Services
	Sessions *session.Manager
	UI       *ui.Registry
	Hub      *realtime.Hub
	Config   *config.Config
	// DB is nil when sessions are kept in memory
	DB HealthChecker
}

// Handler serves every page and action of the site
type Handler struct {
	api       *apiclient.Client
	services  *service.Services
	sessions  *session.Manager
	ui        *ui.Registry
	hub       *realtime.Hub
	cfg       *config.Config
	db        HealthChecker
	geo       *debounce.Group[[]models.GeoResult]
	validator *validation.Validator
	sanitizer *bluemonday.Policy
	log       zerolog.Logger
}

// NewHandler creates a Handler from deps
func NewHandler(deps Deps, log zerolog.Logger) *Handler {
	return &Handler{
		api:       deps.API,
		services:  deps.Services,
		sessions:  deps.Sessions,
		ui:        deps.UI,
		hub:       deps.Hub,
		cfg:       deps.Config,
		db:        deps.DB,
		geo:       debounce.NewGroup[[]models.GeoResult](deps.Config.UI.AutocompleteDebounce),
		validator: validation.NewValidator(),
		sanitizer: bluemonday.UGCPolicy(),
		log:       log.With().Str("handler", "web").Logger(),
	}
}

// state returns the UI state of the current session
func (h *Handler) state(c *gin.Context) *ui.State {
	s := session.FromContext(c)
	return h.ui.Get(s.ID, session.CurrentUser(c))
}

func (h *Handler) t(c *gin.Context, key string) string {
	return i18n.T(session.Language(c), key)
}

// render executes the named page template with the data every page needs
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	ctx := c.Request.Context()
	user := session.CurrentUser(c)
	st := h.state(c)

	if st.Bell != nil {
		if err := st.Bell.Sync(ctx, h.ui.Trigger(user.ID)); err != nil {
			h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("Failed to load notifications")
		}
		data["Bell"] = st.Bell.View()
	}

	data["Lang"] = session.Language(c)
	data["Languages"] = i18n.Supported
	data["User"] = user
	data["Path"] = c.Request.URL.RequestURI()
	data["Alert"] = st.Modals.Alert()
	data["Confirm"] = st.Modals.Confirm()
	data["Footer"] = h.footer(ctx)

	c.HTML(status, name, data)
}

// footer fetches the site footer; a failure renders the page without it
func (h *Handler) footer(ctx context.Context) *models.FooterSettings {
	settings, err := h.api.FooterSettings(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to load footer settings")
		return nil
	}
	return settings
}

// fail renders the error page for a failed GET
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case apiclient.IsUnauthorized(err):
		h.expire(c)
	case apiclient.IsNotFound(err):
		h.render(c, http.StatusNotFound, "error", gin.H{"Message": "error.not_found"})
	default:
		h.log.Error().Err(err).Str("request_id", requestID(c)).Str("path", c.Request.URL.Path).Msg("Backend request failed")
		h.render(c, http.StatusBadGateway, "error", gin.H{"Message": "error.generic"})
	}
}

// failAction shows a generic alert for a failed POST and goes back to returnTo
func (h *Handler) failAction(c *gin.Context, err error, returnTo string) {
	if apiclient.IsUnauthorized(err) {
		h.expire(c)
		return
	}
	h.log.Error().Err(err).Str("request_id", requestID(c)).Str("path", c.Request.URL.Path).Msg("Action failed")
	h.alert(c, modal.KindError, "error.generic")
	c.Redirect(http.StatusSeeOther, returnTo)
}

// expire ends a session whose token the backend no longer accepts
func (h *Handler) expire(c *gin.Context) {
	if err := h.sessions.Logout(c); err != nil {
		h.log.Error().Err(err).Msg("Failed to end expired session")
	}
	c.Redirect(http.StatusSeeOther, "/login?expired=1")
}

// alert shows a translated alert in the current session
func (h *Handler) alert(c *gin.Context, kind modal.Kind, key string) {
	title := ""
	if kind == modal.KindError {
		title = h.t(c, "error.title")
	}
	h.state(c).Modals.ShowAlert(h.t(c, key), title, kind, h.t(c, "button.ok"))
}

// returnTo reads the return_to form field, falling back to fallback
func returnTo(c *gin.Context, fallback string) string {
	return safePath(c.PostForm("return_to"), fallback)
}

// safePath accepts only local absolute paths
func safePath(p, fallback string) string {
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, "\\") {
		return fallback
	}
	return p
}

// paramID parses a positive int64 path parameter
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "error", gin.H{"Message": "error.not_found"})
}
