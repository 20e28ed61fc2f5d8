package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/session"
)

const requestIDKey = "request_id"

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// requestIDMiddleware tags every request with an id echoed in X-Request-ID
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("request_id", requestID(c)).Msg("Panic recovered")
				c.String(http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("request_id", requestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// requireAuth is the protected-route gate: anonymous visitors are sent to
// the login page and come back after signing in.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.CurrentUser(c) != nil {
			c.Next()
			return
		}
		if c.Request.Method == http.MethodGet {
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		} else {
			c.Redirect(http.StatusSeeOther, "/login")
		}
		c.Abort()
	}
}

// requireAdmin additionally requires the admin role
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := session.CurrentUser(c)
		if user == nil {
			h.requireAuth()(c)
			return
		}
		if !user.IsAdmin() {
			h.render(c, http.StatusForbidden, "error", gin.H{"Message": "error.forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}
