package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/config"
	"github.com/walkingguide-web/internal/repository"
	"github.com/walkingguide-web/internal/validation"
)

// AuthAPI is the subset of the REST client behind the auth pages
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*apiclient.AuthResponse, error)
	Register(ctx context.Context, req apiclient.RegisterRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
}

// AuthService validates auth forms and forwards them to the backend. A
// non-empty validation.Errors means nothing was sent.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*apiclient.AuthResponse, validation.Errors, error)
	Register(ctx context.Context, form *validation.RegistrationForm) (validation.Errors, error)
	ForgotPassword(ctx context.Context, email string) (validation.Errors, error)
	ResetPassword(ctx context.Context, token, password, confirm string) (validation.Errors, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) (validation.Errors, error)
	VerifyOTP(ctx context.Context, email, otp string) (validation.Errors, error)
}

// StateEvicter drops idle per-session UI state
type StateEvicter interface {
	EvictIdle(maxIdle time.Duration) int
}

// JanitorService periodically removes expired sessions and idle UI state
type JanitorService interface {
	Start(ctx context.Context)
	Stop()
	RunOnce(ctx context.Context) (sessions int64, states int)
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Janitor JanitorService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, api AuthAPI, states StateEvicter, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:    newAuthService(api, validation.NewValidator(), log),
		Janitor: newJanitorService(repos.Session, states, cfg.Session.CleanupInterval, cfg.UI.StateIdleTTL, log),
	}
}
