package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	conflict := Conflict("workerId already exists")
	wrapped := fmt.Errorf("create worker: %w", conflict)

	got := From(wrapped)
	assert.Equal(t, http.StatusConflict, got.HttpCode())
	assert.Equal(t, CONFLICT, got.ErrorCode())
	assert.Equal(t, "workerId already exists", got.ErrorDesc())

	plain := From(errors.New("boom"))
	assert.Equal(t, INTERNAL_ERROR, plain.ErrorCode())
	assert.Equal(t, "boom", plain.ErrorDesc())
}

func TestIs(t *testing.T) {
	assert.True(t, Is(AlreadyPaid("paid"), ALREADY_PAID))
	assert.False(t, Is(AlreadyPaid("paid"), CONFLICT))
	assert.False(t, Is(errors.New("x"), NOT_FOUND))
}

func TestMapHttpStatusToError(t *testing.T) {
	cases := map[int]int{
		http.StatusBadRequest:         BAD_REQUEST_BODY,
		http.StatusUnauthorized:       UNAUTHORIZED,
		http.StatusForbidden:          FORBIDDEN,
		http.StatusNotFound:           NOT_FOUND,
		http.StatusConflict:           CONFLICT,
		http.StatusTooManyRequests:    RATE_LIMIT_EXCEEDED,
		http.StatusServiceUnavailable: SERVICE_UNAVAILABLE,
		http.StatusGatewayTimeout:     INTERNAL_ERROR,
		http.StatusTeapot:             INTERNAL_ERROR,
	}
	for status, code := range cases {
		assert.Equal(t, code, MapHttpStatusToError(status, "x").ErrorCode(), "status %d", status)
	}
}

func TestWithCause(t *testing.T) {
	base := DatabaseError("database ListWorkers error")
	driverErr := errors.New("dial tcp: i/o timeout")

	wrapped := base.WithCause(driverErr)
	assert.NoError(t, base.Cause(), "original is not modified")
	assert.ErrorIs(t, wrapped, driverErr)
	assert.Equal(t, DATABASE_ERROR, From(fmt.Errorf("list: %w", wrapped)).ErrorCode())
	assert.Equal(t, "database ListWorkers error", wrapped.ErrorDesc())
}
