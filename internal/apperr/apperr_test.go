package apperr

import (
	"errors"
	"testing"
)

func TestWrappersMatchKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"validation", Validationf("budget must be positive"), ErrValidation},
		{"forbidden", Forbiddenf("not the campaign owner"), ErrForbidden},
		{"not found", NotFoundf("campaign %s", "abc"), ErrNotFound},
		{"conflict", Conflictf("email already registered"), ErrConflict},
		{"invalid state", InvalidStatef("application already responded"), ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.kind)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"strips kind suffix", Validationf("budget must be positive"), "budget must be positive"},
		{"with format args", NotFoundf("campaign %s", "abc"), "campaign abc"},
		{"plain error untouched", errors.New("boom"), "boom"},
		{"bare kind untouched", ErrNotFound, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
