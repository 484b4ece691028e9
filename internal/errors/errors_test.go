package errors

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	storeErr := stderrors.New("connection refused")

	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFoundError("Food log not found")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewValidationError("amount_ml must be positive")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewConflictError("Email already registered")))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(NewUnauthorizedError("Invalid token")))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(NewUnavailableError(storeErr, "find food logs")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(storeErr))
}

func TestPublicMessageHidesInternals(t *testing.T) {
	err := NewUnavailableError(stderrors.New("dial tcp 10.0.0.1:5432"), "find user")

	assert.Equal(t, "Database temporarily unavailable", PublicMessage(err))
	assert.Equal(t, "Food log not found", PublicMessage(NewNotFoundError("Food log not found")))
	assert.Equal(t, "Internal server error", PublicMessage(stderrors.New("boom")))
}

func TestIsMatchesPredefined(t *testing.T) {
	wrapped := fmt.Errorf("delete: %w", NewNotFoundError("Weight log not found"))

	assert.True(t, stderrors.Is(wrapped, ErrNotFound))
	assert.False(t, stderrors.Is(wrapped, ErrInvalidInput))
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, ErrorTypeNotFound, TypeOf(wrapped))
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := stderrors.New("timeout")
	err := NewUnavailableError(cause, "count food logs")

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "count food logs", err.Context["operation"])
	assert.Contains(t, err.Source, "errors_test.go")
}

func TestHandlerLogsBySeverity(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(slog.New(slog.NewTextHandler(&buf, nil)))

	h.Handle(context.Background(), NewValidationError("bad date"))
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	h.Handle(context.Background(), NewUnavailableError(stderrors.New("down"), "ping"))
	assert.Contains(t, buf.String(), "level=ERROR")

	buf.Reset()
	h.Handle(context.Background(), nil)
	assert.Empty(t, buf.String())
}
