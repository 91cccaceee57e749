// Package errmap translates wallet errors into gateway responses.
package errmap

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/pkg/qiwi"
	"github.com/GlebRadaev/qiwi/pkg/utils"
)

// Status picks the response code for err. The message of a remote API error
// is its classified description.
func Status(err error) (int, string) {
	var apiErr *qiwi.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusLocked {
			return http.StatusTooManyRequests, apiErr.Description
		}
		return http.StatusBadGateway, apiErr.Description
	case errors.Is(err, qiwi.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, qiwi.ErrProviderNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, qiwi.ErrUnresolvedProvider):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, qiwi.ErrMalformedResponse):
		return http.StatusBadGateway, "Malformed response from the wallet API"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Wallet API timed out"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func Respond(w http.ResponseWriter, err error) {
	code, msg := Status(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("wallet request failed", zap.Int("status", code), zap.Error(err))
	}
	utils.RespondWithError(w, code, msg)
}
