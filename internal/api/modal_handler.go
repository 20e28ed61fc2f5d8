package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walkingguide-web/internal/i18n"
	"github.com/walkingguide-web/internal/modal"
	"github.com/walkingguide-web/internal/session"
)

// confirm opens the confirm dialog for a destructive action and shows the
// page at returnTo. The action runs only if the dialog is accepted.
func (h *Handler) confirm(c *gin.Context, messageKey, successKey, returnTo string, action modal.ConfirmFunc) {
	lang := session.Language(c)
	helper := h.state(c).Modals

	helper.ShowConfirm(i18n.T(lang, messageKey), func(ctx context.Context) error {
		if err := action(ctx); err != nil {
			return err
		}
		if successKey != "" {
			helper.ShowAlert(i18n.T(lang, successKey), "", modal.KindSuccess, i18n.T(lang, "button.ok"))
		}
		return nil
	},
		modal.WithTitle(i18n.T(lang, "confirm.title")),
		modal.WithButtons(i18n.T(lang, "button.ok"), i18n.T(lang, "button.cancel")),
		modal.WithReturnTo(returnTo),
	)
	c.Redirect(http.StatusSeeOther, returnTo)
}

// CloseAlert handles POST /modal/alert/close
func (h *Handler) CloseAlert(c *gin.Context) {
	h.state(c).Modals.HideAlert()
	c.Redirect(http.StatusSeeOther, returnTo(c, "/"))
}

// AcceptConfirm handles POST /modal/confirm/accept
func (h *Handler) AcceptConfirm(c *gin.Context) {
	target, ok, err := h.state(c).Modals.Accept(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusSeeOther, returnTo(c, "/"))
		return
	}
	if err != nil {
		h.failAction(c, err, target)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

// CancelConfirm handles POST /modal/confirm/cancel
func (h *Handler) CancelConfirm(c *gin.Context) {
	target, ok := h.state(c).Modals.Cancel()
	if !ok {
		target = returnTo(c, "/")
	}
	c.Redirect(http.StatusSeeOther, target)
}
