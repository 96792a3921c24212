package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"not found", NewNotFound("award", "x"), KindNotFound},
		{"invalid", NewInvalidInput("bad date", nil), KindValidationFailed},
		{"store", NewStoreUnavailable("query failed", errors.New("conn refused")), KindStoreUnavailable},
		{"wrapped", fmt.Errorf("update award: %w", NewNotFound("award", "x")), KindNotFound},
		{"plain", errors.New("boom"), KindInternal},
		{"outer kind wins over cause", NewUnauthorized("unknown email", NewNotFound("user", "x")), KindUnauthorized},
		{"wrapped outer kind wins", fmt.Errorf("login: %w", NewStoreUnavailable("x", NewNotFound("user", "x"))), KindStoreUnavailable},
		{"sentinel only", fmt.Errorf("replace: %w", ErrConflict), KindConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewStoreUnavailable("failed to list awards", cause)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(NewNotFound("award", "x")))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(NewInvalidInput("x", nil)))
	assert.Equal(t, http.StatusServiceUnavailable, ToHTTPStatus(NewStoreUnavailable("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(errors.New("boom")))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(NewUnauthorized("unknown email", NewNotFound("user", "x"))))
}
