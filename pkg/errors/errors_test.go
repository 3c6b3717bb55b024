package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", Unauthenticated("no token"), http.StatusUnauthorized},
		{"invalid credentials", InvalidCredentials(), http.StatusUnauthorized},
		{"invalid token", InvalidToken(stderrors.New("bad signature")), http.StatusForbidden},
		{"forbidden", Forbidden("access denied"), http.StatusForbidden},
		{"duplicate email", DuplicateEmail(), http.StatusBadRequest},
		{"invalid role", InvalidRole("superuser"), http.StatusBadRequest},
		{"bad request", BadRequest("missing field", nil), http.StatusBadRequest},
		{"not found", NotFound("booking"), http.StatusNotFound},
		{"internal", Internal(stderrors.New("boom")), http.StatusInternalServerError},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("context: %w", NotFound("panel")), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Internal(cause)

	assert.True(t, stderrors.Is(err, cause))
}
