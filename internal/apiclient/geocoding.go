package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/walkingguide-web/internal/models"
)

// GeoSearch looks up cities or addresses matching q
func (c *Client) GeoSearch(ctx context.Context, q string) ([]models.GeoResult, error) {
	var results []models.GeoResult
	if err := c.do(ctx, http.MethodGet, "/geocoding/search", url.Values{"q": {q}}, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GeoCoordinates resolves an address to coordinates
func (c *Client) GeoCoordinates(ctx context.Context, address string) (*models.GeoResult, error) {
	var result models.GeoResult
	if err := c.do(ctx, http.MethodGet, "/geocoding/coordinates", url.Values{"address": {address}}, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReverseGeocode is GeoCoordinates in the other direction
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.GeoResult, error) {
	var result models.GeoResult
	q := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
	if err := c.do(ctx, http.MethodGet, "/geocoding/coordinates", q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
