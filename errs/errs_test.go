package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorConstants(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "ErrPlayerNotFound",
			err:      ErrPlayerNotFound,
			expected: "player element not found",
		},
		{
			name:     "ErrBrowserStart",
			err:      ErrBrowserStart,
			expected: "browser start failed",
		},
		{
			name:     "ErrNavigation",
			err:      ErrNavigation,
			expected: "navigation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message '%s', got '%s'", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestErrorUniqueness(t *testing.T) {
	errorList := []error{
		ErrPlayerNotFound,
		ErrBrowserStart,
		ErrNavigation,
	}

	for i, err1 := range errorList {
		for j, err2 := range errorList {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Error %d and %d should not be equal", i, j)
			}
		}
	}
}

func TestWrappedErrorsMatch(t *testing.T) {
	wrapped := fmt.Errorf("browser session: %w", ErrPlayerNotFound)
	if !errors.Is(wrapped, ErrPlayerNotFound) {
		t.Error("Wrapped ErrPlayerNotFound should match with errors.Is")
	}
}
