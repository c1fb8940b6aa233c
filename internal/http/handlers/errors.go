package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"caltrack/internal/domain"
)

// Classify maps an error from the storage or provider layer onto an HTTP
// status, a stable machine code and a user-facing message. Unknown failure
// text gets a generic retry message; nothing here retries on its own.
func Classify(err error) (status int, code string, message string) {
	switch {
	case err == nil:
		return http.StatusOK, "ok", ""
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found", "resource not found"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "bad_request", err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", "authentication required"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, "insufficient_balance", "available balance is too low for this withdrawal"
	case errors.Is(err, domain.ErrDeviceNotConnected):
		return http.StatusConflict, "device_not_connected", "no smartwatch is connected"
	case errors.Is(err, domain.ErrProviderFailure):
		return http.StatusBadGateway, "provider_failure", "an external provider rejected the request, try again"
	case isConnectivity(err):
		return http.StatusServiceUnavailable, "store_unreachable", "could not reach the data store, check your connection and try again"
	case isMissingSchema(err):
		return http.StatusInternalServerError, "schema_missing", "data tables are not provisioned yet"
	case isMisconfiguredStore(err):
		return http.StatusInternalServerError, "store_misconfigured", "data store credentials are not configured"
	default:
		return http.StatusInternalServerError, "internal", "something went wrong, please try again"
	}
}

// isMissingSchema matches the "relation ... does not exist" failure emitted
// when queries run before the tables were created.
func isMissingSchema(err error) bool {
	text := strings.ToLower(err.Error())
	return strings.Contains(text, "does not exist") &&
		(strings.Contains(text, "relation") || strings.Contains(text, "table") || strings.Contains(text, "column"))
}

func isMisconfiguredStore(err error) bool {
	text := strings.ToLower(err.Error())
	for _, marker := range []string{
		"invalid api key",
		"password authentication failed",
		"authentication failed",
		"no password supplied",
	} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func isConnectivity(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	text := strings.ToLower(err.Error())
	for _, marker := range []string{
		"failed to fetch",
		"connection refused",
		"connection reset",
		"no such host",
		"i/o timeout",
		"broken pipe",
	} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
