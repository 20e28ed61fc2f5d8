package mocks

import (
	"context"
	"sync"

	"github.com/walkingguide-web/internal/apiclient"
	"github.com/walkingguide-web/internal/models"
)

// MockAuthAPI records auth calls and returns canned responses
type MockAuthAPI struct {
	mu sync.Mutex

	User  *models.User
	Token string

	LoginErr    error
	RegisterErr error
	Err         error

	LoginCalls   int
	Registered   []apiclient.RegisterRequest
	ForgotCalls  []string
	ResetTokens  []string
	VerifyTokens []string
	ResendCalls  []string
	OTPCalls     []string
}

// NewMockAuthAPI returns a mock that signs every login in as user
func NewMockAuthAPI(user *models.User, token string) *MockAuthAPI {
	return &MockAuthAPI{User: user, Token: token}
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*apiclient.AuthResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoginCalls++
	if m.LoginErr != nil {
		return nil, m.LoginErr
	}
	u := *m.User
	return &apiclient.AuthResponse{Token: m.Token, User: &u}, nil
}

func (m *MockAuthAPI) Register(ctx context.Context, req apiclient.RegisterRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Registered = append(m.Registered, req)
	return m.RegisterErr
}

func (m *MockAuthAPI) ForgotPassword(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ForgotCalls = append(m.ForgotCalls, email)
	return m.Err
}

func (m *MockAuthAPI) ResetPassword(ctx context.Context, token, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResetTokens = append(m.ResetTokens, token)
	return m.Err
}

func (m *MockAuthAPI) VerifyEmail(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VerifyTokens = append(m.VerifyTokens, token)
	return m.Err
}

func (m *MockAuthAPI) ResendVerification(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResendCalls = append(m.ResendCalls, email)
	return m.Err
}

func (m *MockAuthAPI) VerifyOTP(ctx context.Context, email, otp string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OTPCalls = append(m.OTPCalls, otp)
	return m.Err
}
