package apiclient

import (
	"context"
	"net/http"

	"github.com/walkingguide-web/internal/models"
)

// CreateBooking books a tour for the caller
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingsByUser lists a user's bookings
func (c *Client) BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, idPath("/bookings/user", userID), nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking cancels one of the caller's bookings
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	return c.do(ctx, http.MethodPut, idPath("/bookings", bookingID)+"/cancel", nil, nil, nil)
}

// AdminBookings lists all bookings, optionally filtered by status
func (c *Client) AdminBookings(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	path := "/bookings/admin/all"
	if status != "" {
		path = "/bookings/admin/status/" + string(status)
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// SetBookingStatus approves or rejects a booking (admin)
func (c *Client) SetBookingStatus(ctx context.Context, bookingID int64, status models.BookingStatus) error {
	path := idPath("/bookings/admin", bookingID) + "/status"
	return c.do(ctx, http.MethodPut, path, nil, map[string]string{"status": string(status)}, nil)
}
