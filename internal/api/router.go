package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(deps Deps, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := NewHandler(deps, log)

	router := gin.New()
	router.SetHTMLTemplate(h.loadTemplates())

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))

	router.GET("/health", h.healthCheck)

	router.Use(deps.Sessions.Middleware())
	router.NoRoute(h.notFound)

	// Public pages
	router.GET("/", h.Home)
	router.GET("/places", h.ListPlaces)
	router.GET("/places/:id", h.ShowPlace)
	router.GET("/tours", h.ListTours)
	router.GET("/tours/:id", h.ShowTour)
	router.GET("/articles", h.ListArticles)
	router.GET("/articles/:id", h.ShowArticle)
	router.GET("/hotels", h.ListHotels)
	router.GET("/hotels/:id", h.ShowHotel)
	router.GET("/restaurants", h.ListRestaurants)
	router.GET("/restaurants/:id", h.ShowRestaurant)

	// Auth
	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterPage)
	router.POST("/register", h.Register)
	router.GET("/forgot-password", h.ForgotPasswordPage)
	router.POST("/forgot-password", h.ForgotPassword)
	router.GET("/reset-password", h.ResetPasswordPage)
	router.POST("/reset-password", h.ResetPassword)
	router.GET("/verify-email", h.VerifyEmail)
	router.GET("/resend-verification", h.ResendVerificationPage)
	router.POST("/resend-verification", h.ResendVerification)
	router.GET("/verify-otp", h.VerifyOTPPage)
	router.POST("/verify-otp", h.VerifyOTP)
	router.POST("/logout", h.Logout)

	// Modal helper
	router.POST("/modal/alert/close", h.CloseAlert)
	router.POST("/modal/confirm/accept", h.AcceptConfirm)
	router.POST("/modal/confirm/cancel", h.CancelConfirm)

	// Address autocomplete
	geo := router.Group("/geo")
	{
		geo.GET("/search", h.GeoSearch)
		geo.GET("/coordinates", h.GeoCoordinates)
	}

	// Signed-in users
	user := router.Group("")
	user.Use(h.requireAuth())
	{
		user.GET("/my-tours", h.MyTours)
		user.GET("/tours/:id/book", h.BookTourPage)
		user.POST("/tours/:id/book", h.BookTour)
		user.GET("/my-bookings", h.MyBookings)
		user.POST("/my-bookings/:id/cancel", h.CancelBooking)

		user.GET("/write", h.NewArticlePage)
		user.POST("/write", h.CreateArticle)
		user.GET("/articles/:id/edit", h.EditArticlePage)
		user.POST("/articles/:id/edit", h.UpdateArticle)
		user.POST("/articles/:id/like", h.ToggleLike)
		user.POST("/articles/:id/comments", h.AddComment)
		user.POST("/articles/:id/comments/:commentID/delete", h.DeleteComment)
		user.POST("/articles/:id/report", h.ReportArticle)

		user.GET("/profile", h.ProfilePage)
		user.POST("/profile", h.UpdateProfile)
		user.POST("/upload", h.Upload)

		notifications := user.Group("/notifications")
		{
			notifications.GET("", h.NotificationsPage)
			notifications.GET("/bell", h.BellFragment)
			notifications.POST("/toggle", h.ToggleBell)
			notifications.POST("/read-all", h.MarkAllRead)
			notifications.POST("/:id/read", h.MarkRead)
			notifications.GET("/:id/open", h.OpenNotification)
			notifications.POST("/:id/delete", h.RequestDeleteNotification)
			notifications.POST("/delete/confirm", h.ConfirmDeleteNotification)
			notifications.POST("/delete/cancel", h.CancelDeleteNotification)
		}
		user.GET("/ws/notifications", h.NotificationsSocket)
	}

	// Admin
	admin := router.Group("/admin")
	admin.Use(h.requireAdmin())
	{
		admin.GET("", h.AdminDashboard)
		h.registerAdminResources(admin)

		admin.GET("/bookings", h.AdminBookings)
		admin.POST("/bookings/:id/status", h.SetBookingStatus)
		admin.GET("/reports", h.AdminReports)
		admin.POST("/reports/:id/resolve", h.ResolveReport)
		admin.GET("/settings/footer", h.FooterSettingsPage)
		admin.POST("/settings/footer", h.UpdateFooterSettings)
	}

	return router
}

// healthCheck returns the health status
func (h *Handler) healthCheck(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "walkingguide-web",
		"sessions":  h.cfg.Session.Store,
	}
	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = err.Error()
		}
		stats := h.db.Stats()
		body["database_pool"] = gin.H{
			"open":       stats.OpenConnections,
			"in_use":     stats.InUse,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
		}
		h.log.Debug().
			Int("open", stats.OpenConnections).
			Int("in_use", stats.InUse).
			Int("idle", stats.Idle).
			Int64("wait_count", stats.WaitCount).
			Msg("Database pool stats")
	}
	c.JSON(status, body)
}
