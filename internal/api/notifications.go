package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walkingguide-web/internal/notification"
	"github.com/walkingguide-web/internal/session"
)

// bell returns the bell of the signed-in user; routes using it sit behind requireAuth
func (h *Handler) bell(c *gin.Context) *notification.Bell {
	return h.state(c).Bell
}

// bellDone reports a failed bell action, tells the user's other tabs to redraw
// when a read or delete request went out, then goes back to the page the
// action came from.
func (h *Handler) bellDone(c *gin.Context, sent bool, err error) {
	target := returnTo(c, "/notifications")
	if err != nil {
		if errors.Is(err, notification.ErrNotFound) || errors.Is(err, notification.ErrNoPendingDelete) {
			c.Redirect(http.StatusSeeOther, target)
			return
		}
		h.failAction(c, err, target)
		return
	}

	if sent {
		// other sessions of the same user refetch on the next push
		h.ui.Bump(session.CurrentUser(c).ID)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// NotificationsPage handles GET /notifications. Opening the page always
// re-fetches list and count.
func (h *Handler) NotificationsPage(c *gin.Context) {
	if err := h.bell(c).Refresh(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("Failed to refresh notifications")
	}
	h.render(c, http.StatusOK, "notifications", nil)
}

// BellFragment handles GET /notifications/bell, the partial redrawn on push events
func (h *Handler) BellFragment(c *gin.Context) {
	user := session.CurrentUser(c)
	b := h.bell(c)
	if err := b.Sync(c.Request.Context(), h.ui.Trigger(user.ID)); err != nil {
		h.log.Error().Err(err).Msg("Failed to load notifications")
	}
	c.HTML(http.StatusOK, "bell", gin.H{
		"Lang": session.Language(c),
		"Bell": b.View(),
		"Path": safePath(c.Query("return_to"), "/"),
	})
}

// ToggleBell handles POST /notifications/toggle
func (h *Handler) ToggleBell(c *gin.Context) {
	marked, err := h.bell(c).Toggle(c.Request.Context())
	h.bellDone(c, marked, err)
}

// MarkAllRead handles POST /notifications/read-all
func (h *Handler) MarkAllRead(c *gin.Context) {
	h.bellDone(c, true, h.bell(c).MarkAllRead(c.Request.Context()))
}

// MarkRead handles POST /notifications/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	marked, err := h.bell(c).MarkRead(c.Request.Context(), id)
	h.bellDone(c, marked, err)
}

// OpenNotification handles GET /notifications/:id/open: the notification is
// marked read and the browser goes to its target.
func (h *Handler) OpenNotification(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}

	target, marked, err := h.bell(c).Click(c.Request.Context(), id)
	switch {
	case err != nil && !errors.Is(err, notification.ErrNotFound):
		h.log.Error().Err(err).Int64("notification_id", id).Msg("Failed to mark notification read")
	case err == nil && marked:
		h.ui.Bump(session.CurrentUser(c).ID)
	}
	if target == "" {
		target = "/notifications"
	}
	c.Redirect(http.StatusFound, target)
}

// RequestDeleteNotification handles POST /notifications/:id/delete
func (h *Handler) RequestDeleteNotification(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	if err := h.bell(c).RequestDelete(id); err != nil {
		h.log.Debug().Err(err).Int64("notification_id", id).Msg("Delete requested for unknown notification")
	}
	c.Redirect(http.StatusSeeOther, returnTo(c, "/notifications"))
}

// ConfirmDeleteNotification handles POST /notifications/delete/confirm
func (h *Handler) ConfirmDeleteNotification(c *gin.Context) {
	h.bellDone(c, true, h.bell(c).ConfirmDelete(c.Request.Context()))
}

// CancelDeleteNotification handles POST /notifications/delete/cancel
func (h *Handler) CancelDeleteNotification(c *gin.Context) {
	h.bell(c).CancelDelete()
	c.Redirect(http.StatusSeeOther, returnTo(c, "/notifications"))
}

// NotificationsSocket handles GET /ws/notifications
func (h *Handler) NotificationsSocket(c *gin.Context) {
	user := session.CurrentUser(c)
	if err := h.hub.Serve(c.Writer, c.Request, user.ID); err != nil {
		h.log.Debug().Err(err).Msg("WebSocket upgrade failed")
	}
}
