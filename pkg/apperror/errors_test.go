package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("GW_002", "Callback signature verification failed", http.StatusBadRequest)
	assert.Equal(t, "[GW_002] Callback signature verification failed", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)
	assert.Contains(t, e.Error(), "connection refused")
	assert.Contains(t, e.Error(), "SYS_001")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("root cause")
	e := InternalError(fmt.Errorf("update order: %w", inner))
	assert.True(t, errors.Is(e, inner))
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", ErrUnknownTrade("OD123"))
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GW_003", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestConstructors_CodesAndStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"malformed callback", ErrMalformedCallback("CheckMacValue"), "GW_001", http.StatusBadRequest},
		{"signature mismatch", ErrSignatureMismatch(), "GW_002", http.StatusBadRequest},
		{"unknown trade", ErrUnknownTrade("DN0001"), "GW_003", http.StatusBadRequest},
		{"unknown kind", ErrUnknownKind("subscription"), "GW_004", http.StatusBadRequest},
		{"already terminal", ErrAlreadyTerminal("OD0001"), "GW_005", http.StatusConflict},
		{"invalid amount", ErrInvalidAmount(), "PAY_001", http.StatusBadRequest},
		{"missing donor info", ErrMissingDonorInfo(), "PAY_002", http.StatusBadRequest},
		{"retry not allowed", ErrRetryNotAllowed("DN0001"), "PAY_003", http.StatusConflict},
		{"not found", ErrNotFound("donation"), "PAY_004", http.StatusNotFound},
		{"missing identity", ErrMissingIdentity(), "AUTH_001", http.StatusUnauthorized},
		{"rate limited", ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}
