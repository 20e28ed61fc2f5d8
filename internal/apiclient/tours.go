package apiclient

import (
	"context"
	"net/http"

	"github.com/walkingguide-web/internal/models"
)

// Tours returns the /tours collection
func (c *Client) Tours() *Resource[models.Tour] {
	return NewResource[models.Tour](c, "/tours")
}

// ToursByUser lists tours owned by a user
func (c *Client) ToursByUser(ctx context.Context, userID int64) ([]models.Tour, error) {
	var tours []models.Tour
	if err := c.do(ctx, http.MethodGet, idPath("/tours/user", userID), nil, nil, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// TourSteps returns the /tour-steps collection
func (c *Client) TourSteps() *Resource[models.TourStep] {
	return NewResource[models.TourStep](c, "/tour-steps")
}

// StepsByTour lists the ordered steps of a tour
func (c *Client) StepsByTour(ctx context.Context, tourID int64) ([]models.TourStep, error) {
	var steps []models.TourStep
	if err := c.do(ctx, http.MethodGet, idPath("/tour-steps/by-tour", tourID), nil, nil, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}
