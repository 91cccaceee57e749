package errmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/qiwi/pkg/qiwi"
	"github.com/GlebRadaev/qiwi/pkg/utils"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "Rate limited",
			err:          &qiwi.APIError{StatusCode: 423, Description: "Too many requests, service is temporarily unavailable"},
			expectedCode: http.StatusTooManyRequests,
			expectedMsg:  "Too many requests, service is temporarily unavailable",
		},
		{
			name:         "Remote error",
			err:          fmt.Errorf("history: %w", &qiwi.APIError{StatusCode: 401, Description: "Invalid or expired token"}),
			expectedCode: http.StatusBadGateway,
			expectedMsg:  "Invalid or expired token",
		},
		{
			name:         "Invalid argument",
			err:          fmt.Errorf("%w: rows must be between 1 and 50", qiwi.ErrInvalidArgument),
			expectedCode: http.StatusBadRequest,
		},
		{name: "Provider not found", err: qiwi.ErrProviderNotFound, expectedCode: http.StatusNotFound},
		{name: "Unresolved provider", err: qiwi.ErrUnresolvedProvider, expectedCode: http.StatusUnprocessableEntity},
		{
			name:         "Malformed response",
			err:          fmt.Errorf("%w: Account.alias", qiwi.ErrMalformedResponse),
			expectedCode: http.StatusBadGateway,
			expectedMsg:  "Malformed response from the wallet API",
		},
		{name: "Timeout", err: context.DeadlineExceeded, expectedCode: http.StatusGatewayTimeout},
		{name: "Unknown", err: errors.New("boom"), expectedCode: http.StatusInternalServerError, expectedMsg: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := Status(tt.err)
			assert.Equal(t, tt.expectedCode, code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, msg)
			}
		})
	}
}

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	Respond(w, qiwi.ErrProviderNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp utils.Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, qiwi.ErrProviderNotFound.Error(), resp.Message)
}
