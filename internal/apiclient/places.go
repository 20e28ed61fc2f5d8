package apiclient

import (
	"github.com/walkingguide-web/internal/models"
)

// Places returns the /places collection
func (c *Client) Places() *Resource[models.Place] {
	return NewResource[models.Place](c, "/places")
}

// Hotels returns the /hotels collection
func (c *Client) Hotels() *Resource[models.Hotel] {
	return NewResource[models.Hotel](c, "/hotels")
}
