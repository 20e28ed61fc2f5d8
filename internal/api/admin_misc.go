package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/walkingguide-web/internal/modal"
	"github.com/walkingguide-web/internal/models"
)

var bookingFilters = []models.BookingStatus{
	models.BookingStatusPending,
	models.BookingStatusApproved,
	models.BookingStatusRejected,
	models.BookingStatusCancelled,
}

// AdminBookings handles GET /admin/bookings?status=
func (h *Handler) AdminBookings(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	valid := status == ""
	for _, s := range bookingFilters {
		valid = valid || s == status
	}
	if !valid {
		status = ""
	}

	bookings, err := h.api.AdminBookings(c.Request.Context(), status)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "bookings", gin.H{
		"Title":    "admin.bookings",
		"Bookings": bookings,
		"Admin":    true,
		"Status":   string(status),
		"Filters":  bookingFilters,
	})
}

// SetBookingStatus handles POST /admin/bookings/:id/status
func (h *Handler) SetBookingStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	back := returnTo(c, "/admin/bookings")
	from := models.BookingStatus(c.PostForm("from"))
	to := models.BookingStatus(c.PostForm("status"))
	if to != models.BookingStatusApproved && to != models.BookingStatusRejected {
		h.alert(c, modal.KindWarning, "error.invalid_status")
		c.Redirect(http.StatusSeeOther, back)
		return
	}
	if from != "" && !from.CanTransition(to) {
		h.alert(c, modal.KindWarning, "error.invalid_status")
		c.Redirect(http.StatusSeeOther, back)
		return
	}

	if err := h.api.SetBookingStatus(c.Request.Context(), id, to); err != nil {
		h.failAction(c, err, back)
		return
	}

	// the backend notifies the booking owner
	if userID, err := strconv.ParseInt(c.PostForm("user_id"), 10, 64); err == nil && userID > 0 {
		h.ui.Bump(userID)
	}
	h.alert(c, modal.KindSuccess, "success.saved")
	c.Redirect(http.StatusSeeOther, back)
}

// AdminReports handles GET /admin/reports
func (h *Handler) AdminReports(c *gin.Context) {
	reports, err := h.api.ArticleReports(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_reports", gin.H{"Reports": reports})
}

// ResolveReport handles POST /admin/reports/:id/resolve
func (h *Handler) ResolveReport(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		h.notFound(c)
		return
	}
	status := c.PostForm("status")
	if status != "resolved" && status != "dismissed" {
		h.alert(c, modal.KindWarning, "error.invalid_status")
		c.Redirect(http.StatusSeeOther, "/admin/reports")
		return
	}
	if err := h.api.ResolveArticleReport(c.Request.Context(), id, status); err != nil {
		h.failAction(c, err, "/admin/reports")
		return
	}
	h.alert(c, modal.KindSuccess, "success.saved")
	c.Redirect(http.StatusSeeOther, "/admin/reports")
}

// FooterSettingsPage handles GET /admin/settings/footer
func (h *Handler) FooterSettingsPage(c *gin.Context) {
	settings, err := h.api.FooterSettings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_footer", gin.H{"Settings": settings, "Errors": map[string]string{}})
}

// UpdateFooterSettings handles POST /admin/settings/footer
func (h *Handler) UpdateFooterSettings(c *gin.Context) {
	var settings models.FooterSettings
	if err := c.ShouldBind(&settings); err != nil {
		h.alert(c, modal.KindWarning, "validation.required")
		c.Redirect(http.StatusSeeOther, "/admin/settings/footer")
		return
	}
	if settings.Email != "" {
		if errs := h.validator.ValidateEmail(settings.Email); len(errs) > 0 {
			h.render(c, http.StatusUnprocessableEntity, "admin_footer", gin.H{
				"Settings": &settings,
				"Errors":   errs.ByField(),
			})
			return
		}
	}
	if err := h.api.UpdateFooterSettings(c.Request.Context(), &settings); err != nil {
		h.failAction(c, err, "/admin/settings/footer")
		return
	}
	h.alert(c, modal.KindSuccess, "success.saved")
	c.Redirect(http.StatusSeeOther, "/admin/settings/footer")
}
