package apiclient

import (
	"context"
	"net/http"

	"github.com/walkingguide-web/internal/models"
)

// Restaurants returns the /restaurants collection
func (c *Client) Restaurants() *Resource[models.Restaurant] {
	return NewResource[models.Restaurant](c, "/restaurants")
}

// Menus lists the menus of a restaurant
func (c *Client) Menus(ctx context.Context, restaurantID int64) ([]models.Menu, error) {
	var menus []models.Menu
	if err := c.do(ctx, http.MethodGet, idPath("/restaurants", restaurantID)+"/menus", nil, nil, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

// MenuItems lists the dishes of a menu
func (c *Client) MenuItems(ctx context.Context, menuID int64) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, idPath("/restaurants/menus", menuID)+"/items", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
