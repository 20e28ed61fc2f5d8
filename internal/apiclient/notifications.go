package apiclient

import (
	"context"
	"net/http"

	"github.com/walkingguide-web/internal/models"
)

// Notifications lists a user's notifications, newest first as served
func (c *Client) Notifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	var items []models.Notification
	if err := c.do(ctx, http.MethodGet, idPath("/notifications/user", userID), nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UnreadCount returns the number of unread notifications of a user
func (c *Client) UnreadCount(ctx context.Context, userID int64) (int, error) {
	var resp models.UnreadCount
	if err := c.do(ctx, http.MethodGet, idPath("/notifications/user", userID)+"/unread-count", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// MarkNotificationRead flags one notification as read
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	return c.do(ctx, http.MethodPut, idPath("/notifications", notificationID)+"/read", nil, nil, nil)
}

// MarkAllNotificationsRead flags every notification of a user as read
func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPut, idPath("/notifications/user", userID)+"/read-all", nil, nil, nil)
}

// DeleteNotification removes one notification
func (c *Client) DeleteNotification(ctx context.Context, notificationID int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/notifications", notificationID), nil, nil, nil)
}
