package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/validation"
)

// authService is the concrete implementation of AuthService
type authService struct {
	api       AuthAPI
	validator *validation.Validator
	log       zerolog.Logger
}

func newAuthService(api AuthAPI, validator *validation.Validator, log zerolog.Logger) *authService {
	return &authService{
		api:       api,
		validator: validator,
		log:       log.With().Str("service", "auth").Logger(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login validates the credentials and exchanges them for a token
func (s *authService) Login(ctx context.Context, email, password string) (*apiclient.AuthResponse, validation.Errors, error) {
	email = normalizeEmail(email)
	if errs := s.validator.ValidateLogin(email, password); len(errs) > 0 {
		return nil, errs, nil
	}

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Info().Err(err).Str("email", email).Msg("Login rejected")
		return nil, nil, err
	}
	return resp, nil, nil
}

// Register validates the sign-up form and creates the account
func (s *authService) Register(ctx context.Context, form *validation.RegistrationForm) (validation.Errors, error) {
	form.Email = normalizeEmail(form.Email)
	form.FullName = strings.TrimSpace(form.FullName)
	if errs := s.validator.ValidateRegistration(form); len(errs) > 0 {
		return errs, nil
	}

	err := s.api.Register(ctx, apiclient.RegisterRequest{
		FullName: form.FullName,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", form.Email).Msg("Account registered")
	return nil, nil
}

// ForgotPassword requests a reset email
func (s *authService) ForgotPassword(ctx context.Context, email string) (validation.Errors, error) {
	email = normalizeEmail(email)
	if errs := s.validator.ValidateEmail(email); len(errs) > 0 {
		return errs, nil
	}
	return nil, s.api.ForgotPassword(ctx, email)
}

// ResetPassword sets a new password using the token from the reset email
func (s *authService) ResetPassword(ctx context.Context, token, password, confirm string) (validation.Errors, error) {
	if errs := s.validator.ValidatePasswordReset(token, password, confirm); len(errs) > 0 {
		return errs, nil
	}
	return nil, s.api.ResetPassword(ctx, token, password)
}

// VerifyEmail confirms the address behind token
func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	return s.api.VerifyEmail(ctx, token)
}

// ResendVerification asks the backend to send another verification email
func (s *authService) ResendVerification(ctx context.Context, email string) (validation.Errors, error) {
	email = normalizeEmail(email)
	if errs := s.validator.ValidateEmail(email); len(errs) > 0 {
		return errs, nil
	}
	return nil, s.api.ResendVerification(ctx, email)
}

// VerifyOTP confirms the account with a six-digit code
func (s *authService) VerifyOTP(ctx context.Context, email, otp string) (validation.Errors, error) {
	email = normalizeEmail(email)
	otp = strings.TrimSpace(otp)
	if errs := s.validator.ValidateOTP(email, otp); len(errs) > 0 {
		return errs, nil
	}
	return nil, s.api.VerifyOTP(ctx, email, otp)
}
