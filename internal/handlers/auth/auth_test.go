package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/qiwi/internal/dto"
	"github.com/GlebRadaev/qiwi/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	exp := time.Date(2024, 5, 1, 12, 15, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"password":"gateway-password"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "gateway-password").Return(nil)
				service.EXPECT().GenerateToken().Return("some-jwt-token", exp, nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "some-jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "wrong").Return(errors.New("invalid credentials"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{"password":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Empty password",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"password":"gateway-password"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "gateway-password").Return(nil)
				service.EXPECT().GenerateToken().Return("", time.Time{}, errors.New("token generation failed"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.LoginResponseDTO
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedToken, resp.Token)
			assert.Equal(t, "2024-05-01T12:15:00Z", resp.ExpiresAt)
			assert.Equal(t, "Bearer "+tt.expectedToken, w.Header().Get("Authorization"))
		})
	}
}
