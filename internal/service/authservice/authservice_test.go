package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/qiwi/pkg/auth"
)

func NewMock(t *testing.T, passwordHash string) (*Service, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(passwordHash, hashService, jwtService)
	return service, hashService, jwtService
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		passwordHash  string
		password      string
		prepareMock   func(h *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name:         "Valid password",
			passwordHash: "$2a$10$hash",
			password:     "gateway-password",
			prepareMock: func(h *auth.MockHashServiceInterface) {
				h.EXPECT().ComparePassword("$2a$10$hash", "gateway-password").Return(true)
			},
		},
		{
			name:         "Wrong password",
			passwordHash: "$2a$10$hash",
			password:     "wrong",
			prepareMock: func(h *auth.MockHashServiceInterface) {
				h.EXPECT().ComparePassword("$2a$10$hash", "wrong").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "No password configured",
			passwordHash:  "",
			password:      "gateway-password",
			prepareMock:   func(h *auth.MockHashServiceInterface) {},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, hashService, _ := NewMock(t, tt.passwordHash)
			tt.prepareMock(hashService)

			err := service.Authenticate(context.Background(), tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func(j *auth.MockJWTServiceInterface)
		expectedToken string
		expectedError error
	}{
		{
			name: "Token issued",
			prepareMock: func(j *auth.MockJWTServiceInterface) {
				j.EXPECT().GenerateJWT("gateway", now.Add(15*time.Minute)).Return("valid_token", nil)
			},
			expectedToken: "valid_token",
		},
		{
			name: "Signing fails",
			prepareMock: func(j *auth.MockJWTServiceInterface) {
				j.EXPECT().GenerateJWT("gateway", now.Add(15*time.Minute)).Return("", errors.New("token generation error"))
			},
			expectedError: errors.New("token generation error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, jwtService := NewMock(t, "$2a$10$hash")
			service.now = func() time.Time { return now }
			tt.prepareMock(jwtService)

			token, exp, err := service.GenerateToken()
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
			assert.Equal(t, now.Add(15*time.Minute), exp)
		})
	}
}
