package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrap_KeepsCode(t *testing.T) {
	base := NewAppError(ErrNotFound, "booking not found", nil)

	wrapped := Wrap(fmt.Errorf("lookup: %w", base), "initiate payment")

	assert.Equal(t, ErrNotFound, CodeOf(wrapped))
	assert.True(t, HasCode(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "initiate payment")
}

func TestWrap_UncodedBecomesInternal(t *testing.T) {
	wrapped := Wrap(New("boom"), "query failed")

	assert.Equal(t, ErrInternal, CodeOf(wrapped))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid argument", NewAppError(ErrInvalidArgument, "bad id", nil), http.StatusBadRequest},
		{"not found", NewAppError(ErrNotFound, "missing", nil), http.StatusNotFound},
		{"invalid state", NewAppError(ErrInvalidState, "not pending", nil), http.StatusConflict},
		{"gateway", NewAppError(ErrGateway, "upstream", nil), http.StatusBadGateway},
		{"persistence", NewAppError(ErrPersistence, "db", nil), http.StatusInternalServerError},
		{"plain error", New("plain"), http.StatusInternalServerError},
		{"echo error passthrough", echo.NewHTTPError(http.StatusTeapot, "tea"), http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := ToHTTPError(tt.err)
			assert.Equal(t, tt.status, httpErr.Code)
		})
	}

	assert.Nil(t, ToHTTPError(nil))
}

func TestGetCodeMapping_Unknown(t *testing.T) {
	httpStatus, grpcCode := GetCodeMapping("SOMETHING_ELSE")
	assert.Equal(t, 500, httpStatus)
	assert.Equal(t, 13, grpcCode)
}

func TestLogError_AddsCode(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	logger := zap.New(core)

	LogError(logger, NewAppError(ErrGateway, "snap failed", nil), "gateway call failed", zap.Int64("booking_id", 5))
	LogError(logger, nil, "never logged")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, ErrGateway, fields["error_code"])
		assert.Equal(t, int64(5), fields["booking_id"])
	}
}
