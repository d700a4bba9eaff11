package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDuplicateTarget, "duplicate target %q", "app")

	if err.Code != ErrCodeDuplicateTarget {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeDuplicateTarget)
	}

	if err.Message != `duplicate target "app"` {
		t.Errorf("Message = %v, want %v", err.Message, `duplicate target "app"`)
	}

	expected := `DUPLICATE_TARGET: duplicate target "app"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, cause, "stat out.txt")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeCycle, "test"),
			code:     ErrCodeCycle,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeCycle, "test"),
			code:     ErrCodeMissingTarget,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeParse, New(ErrCodeInvalidTarget, "inner"), "outer"),
			code:     ErrCodeParse,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeCycle,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeCycle,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeCommandFailed, "test"),
			expected: ErrCodeCommandFailed,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeMissingTarget, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExitStatusError(t *testing.T) {
	t.Run("error string", func(t *testing.T) {
		err := &ExitStatusError{Status: 2}
		expected := "exit status 2"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("extract from chain", func(t *testing.T) {
		err := Wrap(ErrCodeCommandFailed, &ExitStatusError{Status: 1}, "command failed")
		status, ok := ExitStatus(err)
		if !ok {
			t.Fatal("ExitStatus() ok = false, want true")
		}
		if status != 1 {
			t.Errorf("ExitStatus() = %d, want 1", status)
		}
	})

	t.Run("absent from chain", func(t *testing.T) {
		if _, ok := ExitStatus(errors.New("plain")); ok {
			t.Error("ExitStatus() ok = true for plain error, want false")
		}
	})
}
