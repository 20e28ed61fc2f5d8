package notification

import (
	"fmt"

	"github.com/walkingguide-web/internal/models"
)

// Target returns the route a click on n navigates to. Precedence is
// comment on article, then article, then tour, then place; the first id
// present wins. An empty string means the notification has no destination.
func Target(n models.Notification) string {
	switch {
	case n.ArticleID != nil && n.CommentID != nil:
		return fmt.Sprintf("/articles/%d#comment-%d", *n.ArticleID, *n.CommentID)
	case n.ArticleID != nil:
		return fmt.Sprintf("/articles/%d", *n.ArticleID)
	case n.TourID != nil:
		return fmt.Sprintf("/tours/%d", *n.TourID)
	case n.PlaceID != nil:
		return fmt.Sprintf("/places/%d", *n.PlaceID)
	default:
		return ""
	}
}

// Presentation is how a notification type is drawn in the bell
type Presentation struct {
	Icon  string
	Badge string
}

// Present maps every notification type to its icon and badge
func Present(t models.NotificationType) Presentation {
	switch t {
	case models.NotificationArticleLike:
		return Presentation{Icon: "heart", Badge: "like"}
	case models.NotificationArticleComment, models.NotificationCommentReply:
		return Presentation{Icon: "chat", Badge: "comment"}
	case models.NotificationArticleApproved:
		return Presentation{Icon: "check-circle", Badge: "success"}
	case models.NotificationArticleRejected:
		return Presentation{Icon: "x-circle", Badge: "danger"}
	case models.NotificationArticleReported:
		return Presentation{Icon: "flag", Badge: "warning"}
	case models.NotificationBookingCreated:
		return Presentation{Icon: "calendar-plus", Badge: "info"}
	case models.NotificationBookingApproved:
		return Presentation{Icon: "calendar-check", Badge: "success"}
	case models.NotificationBookingRejected, models.NotificationBookingCanceled:
		return Presentation{Icon: "calendar-x", Badge: "danger"}
	case models.NotificationTourUpdate:
		return Presentation{Icon: "map", Badge: "info"}
	case models.NotificationPlaceUpdate:
		return Presentation{Icon: "geo-alt", Badge: "info"}
	case models.NotificationSystem:
		return Presentation{Icon: "megaphone", Badge: "secondary"}
	case models.NotificationUnknown:
		return Presentation{Icon: "bell", Badge: "secondary"}
	}
	return Presentation{Icon: "bell", Badge: "secondary"}
}
