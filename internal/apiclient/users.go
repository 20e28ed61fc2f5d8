package apiclient

import (
	"github.com/walkingguide-web/internal/models"
)

// Users returns the /users collection
func (c *Client) Users() *Resource[models.User] {
	return NewResource[models.User](c, "/users")
}
