package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", ErrInvalidRating, http.StatusBadRequest},
		{"conflict maps to bad request", ErrEmailRegistered, http.StatusBadRequest},
		{"not found", ErrBoothNotFound, http.StatusNotFound},
		{"unauthorized", ErrSessionExpired, http.StatusUnauthorized},
		{"wrapped", fmt.Errorf("checkin: %w", ErrAnswersRequired), http.StatusBadRequest},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"internal kind", &AppError{Kind: KindInternal, Message: "x"}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusOf(tt.err); got != tt.want {
			t.Errorf("%s: StatusOf = %d, want %d", tt.name, got, tt.want)
		}
	}
}
