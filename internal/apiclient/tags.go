package apiclient

import (
	"github.com/walkingguide-web/internal/models"
)

// Tags returns the /tags collection
func (c *Client) Tags() *Resource[models.Tag] {
	return NewResource[models.Tag](c, "/tags")
}

// PlaceTags returns the /place-tags join collection
func (c *Client) PlaceTags() *Resource[models.PlaceTag] {
	return NewResource[models.PlaceTag](c, "/place-tags")
}
