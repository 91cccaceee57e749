package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	valid, err := jwtService.GenerateJWT("gateway", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	handler := AuthMiddleware(jwtService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gateway", r.Context().Value(SubjectKey))
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "Valid token", header: "Bearer " + valid, expectedCode: http.StatusOK},
		{name: "No header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Garbage token", header: "Bearer abc", expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/wallet/balance", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
