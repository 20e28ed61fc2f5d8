package models

import (
	"encoding/json"
	"time"
)

// NotificationType is the closed set of notification kinds the UI knows how to render
type NotificationType string

const (
	NotificationArticleLike     NotificationType = "article_like"
	NotificationArticleComment  NotificationType = "article_comment"
	NotificationCommentReply    NotificationType = "comment_reply"
	NotificationArticleApproved NotificationType = "article_approved"
	NotificationArticleRejected NotificationType = "article_rejected"
	NotificationArticleReported NotificationType = "article_reported"
	NotificationBookingCreated  NotificationType = "booking_created"
	NotificationBookingApproved NotificationType = "booking_approved"
	NotificationBookingRejected NotificationType = "booking_rejected"
	NotificationBookingCanceled NotificationType = "booking_cancelled"
	NotificationTourUpdate      NotificationType = "tour_update"
	NotificationPlaceUpdate     NotificationType = "place_update"
	NotificationSystem          NotificationType = "system"
	// NotificationUnknown is used for any type string the backend sends that is not listed above
	NotificationUnknown NotificationType = "unknown"
)

var knownNotificationTypes = map[NotificationType]bool{
	NotificationArticleLike:     true,
	NotificationArticleComment:  true,
	NotificationCommentReply:    true,
	NotificationArticleApproved: true,
	NotificationArticleRejected: true,
	NotificationArticleReported: true,
	NotificationBookingCreated:  true,
	NotificationBookingApproved: true,
	NotificationBookingRejected: true,
	NotificationBookingCanceled: true,
	NotificationTourUpdate:      true,
	NotificationPlaceUpdate:     true,
	NotificationSystem:          true,
}

// ParseNotificationType maps a raw type string to a known variant or NotificationUnknown
func ParseNotificationType(raw string) NotificationType {
	t := NotificationType(raw)
	if knownNotificationTypes[t] {
		return t
	}
	return NotificationUnknown
}

// UnmarshalJSON normalizes unknown type strings
func (t *NotificationType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = ParseNotificationType(raw)
	return nil
}

// Notification is a server-owned notification record
type Notification struct {
	ID        int64            `json:"notification_id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Content   string           `json:"content"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
	ArticleID *int64           `json:"article_id,omitempty"`
	TourID    *int64           `json:"tour_id,omitempty"`
	PlaceID   *int64           `json:"place_id,omitempty"`
	CommentID *int64           `json:"comment_id,omitempty"`
}

// UnreadCount is the payload of the unread-count endpoint
type UnreadCount struct {
	Count int `json:"count"`
}
