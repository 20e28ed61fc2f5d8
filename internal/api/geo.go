package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/walkingguide-web/internal/debounce"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/session"
)

const minGeoQueryLength = 2

// GeoSearch handles GET /geo/search?q=&field=. Calls are debounced per
// visitor and input field; a call replaced by a newer keystroke answers 204
// without reaching the backend.
func (h *Handler) GeoSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	field := c.DefaultQuery("field", "address")
	key := session.FromContext(c).ID + "/" + field

	results, err := h.geo.Do(c.Request.Context(), key, func(ctx context.Context) ([]models.GeoResult, error) {
		if utf8.RuneCountInString(q) < minGeoQueryLength {
			return []models.GeoResult{}, nil
		}
		return h.api.GeoSearch(ctx, q)
	})

	switch {
	case errors.Is(err, debounce.ErrSuperseded), errors.Is(err, context.Canceled):
		c.Status(http.StatusNoContent)
	case err != nil:
		h.log.Error().Err(err).Str("q", q).Msg("Geocoding search failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": h.t(c, "error.generic")})
	default:
		if results == nil {
			results = []models.GeoResult{}
		}
		c.JSON(http.StatusOK, results)
	}
}

// GeoCoordinates handles GET /geo/coordinates?address=
func (h *Handler) GeoCoordinates(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": h.t(c, "validation.required")})
		return
	}

	result, err := h.api.GeoCoordinates(c.Request.Context(), address)
	if err != nil {
		h.log.Error().Err(err).Str("address", address).Msg("Geocoding lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": h.t(c, "error.generic")})
		return
	}
	c.JSON(http.StatusOK, result)
}
