package benchmark

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/images"
	"github.com/walkingguide-web/internal/mocks"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/notification"
	"github.com/walkingguide-web/internal/repository"
	"github.com/walkingguide-web/internal/ui"
	"github.com/walkingguide-web/internal/validation"
)

func notifications(n int) []models.Notification {
	items := make([]models.Notification, n)
	for i := range items {
		items[i] = models.Notification{
			ID:        int64(i + 1),
			UserID:    7,
			Type:      models.NotificationArticleComment,
			Content:   "New comment " + strconv.Itoa(i),
			CreatedAt: time.Now(),
		}
	}
	return items
}

// BenchmarkBellMarkAllRead measures the optimistic update over a full bell
func BenchmarkBellMarkAllRead(b *testing.B) {
	api := mocks.NewMockNotificationAPI(notifications(50), 50)
	bell := notification.NewBell(api, 7, notification.PolicyRollback, zerolog.Nop())
	ctx := context.Background()
	if err := bell.Refresh(ctx); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = bell.MarkAllRead(ctx)
	}
}

// BenchmarkBellView measures the snapshot handed to every rendered page
func BenchmarkBellView(b *testing.B) {
	api := mocks.NewMockNotificationAPI(notifications(50), 12)
	bell := notification.NewBell(api, 7, notification.PolicyRollback, zerolog.Nop())
	if err := bell.Refresh(context.Background()); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = bell.View()
	}
}

// BenchmarkGalleryMove benchmarks drag reordering of a hotel gallery
func BenchmarkGalleryMove(b *testing.B) {
	var imgs []models.Image
	for i := 0; i < 20; i++ {
		imgs = images.Add(imgs, fmt.Sprintf("https://cdn.example.com/hotel/%d.jpg", i))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		imgs, _ = images.Move(imgs, i%20, (i+7)%20)
	}
}

// BenchmarkValidation benchmarks booking form validation
func BenchmarkValidation(b *testing.B) {
	validator := validation.NewValidator()
	req := &models.BookingRequest{
		TourID:    5,
		StartDate: time.Now().AddDate(0, 1, 0).Format(validation.DateLayout),
		Spots:     2,
		Note:      "Vegetarian lunch please",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validator.ValidateBooking(req)
	}
}

// BenchmarkRegistryParallel benchmarks concurrent state lookups from many sessions
func BenchmarkRegistryParallel(b *testing.B) {
	registry := ui.NewRegistry(mocks.NewMockNotificationAPI(nil, 0), notification.PolicyRollback, zerolog.Nop())
	user := &models.User{ID: 7, Role: models.RoleUser}

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			registry.Get("session-"+strconv.Itoa(i%64), user)
			i++
		}
	})
}

// BenchmarkMemorySessionStore benchmarks save and load of a signed-in session
func BenchmarkMemorySessionStore(b *testing.B) {
	repo := repository.NewMemorySessionRepo()
	ctx := context.Background()
	now := time.Now()
	s := &models.Session{
		ID:        "3f2b8a4e-0c1d-4e5f-9a6b-7c8d9e0f1a2b",
		User:      &models.User{ID: 7, FullName: "Lan", Email: "lan@example.com"},
		Token:     "tok",
		Language:  "vi",
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = repo.Save(ctx, s)
		_, _ = repo.Get(ctx, s.ID)
	}
}
