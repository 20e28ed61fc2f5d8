package apiclient

import (
	"context"
	"net/http"

	"github.com/walkingguide-web/internal/models"
)

// FooterSettings fetches the site footer
func (c *Client) FooterSettings(ctx context.Context) (*models.FooterSettings, error) {
	var settings models.FooterSettings
	if err := c.do(ctx, http.MethodGet, "/settings/footer", nil, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateFooterSettings replaces the site footer (admin)
func (c *Client) UpdateFooterSettings(ctx context.Context, settings *models.FooterSettings) error {
	return c.do(ctx, http.MethodPut, "/settings/footer", nil, settings, nil)
}
