package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/walkingguide-web/internal/models"
)

// LoginRequest is the credential payload of /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload of /auth/register
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by a successful login
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login exchanges credentials for a session token
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return nil, fmt.Errorf("login response is missing token or user")
	}
	return &resp, nil
}

// Register creates an account; the backend then sends a verification email
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, req, nil)
}

// ForgotPassword asks the backend to email a reset link
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, map[string]string{"email": email}, nil)
}

// ResetPassword sets a new password using the emailed reset token
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/reset-password", nil, body, nil)
}

// VerifyEmail confirms an address with the emailed token
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/verify-email", nil, map[string]string{"token": token}, nil)
}

// ResendVerification sends another verification email
func (c *Client) ResendVerification(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/resend-verification", nil, map[string]string{"email": email}, nil)
}

// VerifyOTP confirms a one-time code sent by email
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) error {
	body := map[string]string{"email": email, "otp": otp}
	return c.do(ctx, http.MethodPost, "/auth/verify-otp", nil, body, nil)
}
