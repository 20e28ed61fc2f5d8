package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/config"
	"github.com/walkingguide-web/internal/mocks"
	"github.com/walkingguide-web/internal/models"
	"github.com/walkingguide-web/internal/repository"
	"github.com/walkingguide-web/internal/service"
	"github.com/walkingguide-web/internal/validation"
)

type fakeEvicter struct {
	calls   int
	lastTTL time.Duration
	evict   int
}

func (f *fakeEvicter) EvictIdle(maxIdle time.Duration) int {
	f.calls++
	f.lastTTL = maxIdle
	return f.evict
}

type testHarness struct {
	services *service.Services
	sessions *mocks.MockSessionRepository
	api      *mocks.MockAuthAPI
	states   *fakeEvicter
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	sessions := mocks.NewMockSessionRepository()
	api := mocks.NewMockAuthAPI(&models.User{ID: 3, FullName: "Thu", Email: "thu@example.com", Role: models.RoleUser}, "tok-3")
	states := &fakeEvicter{evict: 2}

	cfg := &config.Config{
		Session: config.SessionConfig{CleanupInterval: 10 * time.Millisecond},
		UI:      config.UIConfig{StateIdleTTL: 30 * time.Minute},
	}

	return &testHarness{
		services: service.NewServices(&repository.Repositories{Session: sessions}, api, states, cfg, zerolog.Nop()),
		sessions: sessions,
		api:      api,
		states:   states,
	}
}

func TestAuthService_LoginValidatesBeforeCalling(t *testing.T) {
	h := newTestHarness(t)

	resp, errs, err := h.services.Auth.Login(context.Background(), "not-an-email", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp != nil {
		t.Error("Expected no response for invalid form")
	}
	if len(errs) != 2 {
		t.Errorf("Expected 2 validation errors, got %v", errs)
	}
	if h.api.LoginCalls != 0 {
		t.Errorf("Expected no API call, got %d", h.api.LoginCalls)
	}
}

func TestAuthService_LoginSuccess(t *testing.T) {
	h := newTestHarness(t)

	resp, errs, err := h.services.Auth.Login(context.Background(), "  THU@example.com ", "secret")
	if err != nil || len(errs) > 0 {
		t.Fatalf("Login failed: %v %v", err, errs)
	}
	if resp.Token != "tok-3" || resp.User.ID != 3 {
		t.Errorf("Unexpected response %+v", resp)
	}
}

func TestAuthService_LoginPropagatesBackendError(t *testing.T) {
	h := newTestHarness(t)
	h.api.LoginErr = errors.New("invalid credentials")

	_, _, err := h.services.Auth.Login(context.Background(), "thu@example.com", "wrong1")
	if err == nil {
		t.Fatal("Expected backend error")
	}
}

func TestAuthService_RegisterNormalizes(t *testing.T) {
	h := newTestHarness(t)

	form := &validation.RegistrationForm{
		FullName:        "  Trần Thu ",
		Email:           "Thu@Example.COM",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	errs, err := h.services.Auth.Register(context.Background(), form)
	if err != nil || len(errs) > 0 {
		t.Fatalf("Register failed: %v %v", err, errs)
	}
	if len(h.api.Registered) != 1 {
		t.Fatalf("Expected 1 registration, got %d", len(h.api.Registered))
	}
	got := h.api.Registered[0]
	if got.Email != "thu@example.com" || got.FullName != "Trần Thu" {
		t.Errorf("Expected normalized request, got %+v", got)
	}
}

func TestAuthService_RegisterMismatchNotSent(t *testing.T) {
	h := newTestHarness(t)

	errs, _ := h.services.Auth.Register(context.Background(), &validation.RegistrationForm{
		FullName: "Thu", Email: "thu@example.com", Password: "secret1", ConfirmPassword: "secret2",
	})
	if errs.ByField()["confirm_password"] != "validation.password_match" {
		t.Errorf("Expected password mismatch, got %v", errs)
	}
	if len(h.api.Registered) != 0 {
		t.Error("Invalid form must not reach the backend")
	}
}

func TestAuthService_OTPAndReset(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	if errs, _ := h.services.Auth.VerifyOTP(ctx, "thu@example.com", "12345"); len(errs) != 1 {
		t.Errorf("Expected OTP error, got %v", errs)
	}
	if errs, err := h.services.Auth.VerifyOTP(ctx, "thu@example.com", " 123456 "); err != nil || len(errs) != 0 {
		t.Errorf("Expected OTP to pass, got %v %v", errs, err)
	}
	if len(h.api.OTPCalls) != 1 || h.api.OTPCalls[0] != "123456" {
		t.Errorf("Unexpected OTP calls %v", h.api.OTPCalls)
	}

	if errs, err := h.services.Auth.ResetPassword(ctx, "reset-tok", "newpass", "newpass"); err != nil || len(errs) != 0 {
		t.Errorf("Expected reset to pass, got %v %v", errs, err)
	}
	if len(h.api.ResetTokens) != 1 {
		t.Errorf("Expected one reset call")
	}
}

func TestJanitor_RunOnce(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()
	now := time.Now()

	h.sessions.Save(ctx, &models.Session{ID: "expired", ExpiresAt: now.Add(-time.Minute)})
	h.sessions.Save(ctx, &models.Session{ID: "live", ExpiresAt: now.Add(time.Hour)})

	removed, evicted := h.services.Janitor.RunOnce(ctx)
	if removed != 1 {
		t.Errorf("Expected 1 session removed, got %d", removed)
	}
	if evicted != 2 {
		t.Errorf("Expected 2 states evicted, got %d", evicted)
	}
	if h.states.lastTTL != 30*time.Minute {
		t.Errorf("Expected idle TTL 30m, got %v", h.states.lastTTL)
	}
}

func TestJanitor_RunOnceSurvivesStoreError(t *testing.T) {
	h := newTestHarness(t)
	h.sessions.DeleteExpiredErr = errors.New("db down")

	removed, _ := h.services.Janitor.RunOnce(context.Background())
	if removed != 0 {
		t.Errorf("Expected 0 removed on error, got %d", removed)
	}
	if h.states.calls != 1 {
		t.Error("UI state eviction should still run")
	}
}

func TestJanitor_StartStop(t *testing.T) {
	h := newTestHarness(t)

	go h.services.Janitor.Start(context.Background())

	deadline := time.Now().Add(time.Second)
	for {
		if h.sessions.DeleteExpiredCallCount() >= 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Janitor did not tick")
		}
		time.Sleep(5 * time.Millisecond)
	}

	h.services.Janitor.Stop()
	h.services.Janitor.Stop()
}
