// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", -1, "--progress-threshold"),
			expected: "invalid value -1 for flag --progress-threshold",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns formatted message",
			err:      ValidationError{Field: "terms", Message: "must be a positive integer"},
			expected: `validation error for "terms": must be a positive integer`,
		},
		{
			name:     "NewValidationError formats message",
			err:      NewValidationError("sentence", "last character %q is not terminal punctuation", ','),
			expected: `validation error for "sentence": last character ',' is not terminal punctuation`,
		},
		{
			name:        "errors.As works with ValidationError",
			err:         ValidationError{Field: "sentence", Message: "empty"},
			expected:    `validation error for "sentence": empty`,
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs && !IsValidationError(tt.err) {
				t.Error("expected error to be ValidationError type")
			}
		})
	}
}

func TestInputError(t *testing.T) {
	t.Parallel()

	t.Run("EOF cause reads as closed input", func(t *testing.T) {
		t.Parallel()
		err := InputError{Prompt: "Enter a sentence: ", Cause: io.EOF}
		want := `input closed while waiting for "Enter a sentence: "`
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
		if !errors.Is(err, io.EOF) {
			t.Error("errors.Is should find io.EOF through InputError")
		}
	})

	t.Run("other causes are reported verbatim", func(t *testing.T) {
		t.Parallel()
		err := InputError{Prompt: "q", Cause: errors.New("bad descriptor")}
		want := `reading answer to "q": bad descriptor`
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load config",
			expectedMsg: "failed to load config: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "generation stopped",
			expectedMsg: "generation stopped: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("permission denied"),
			format:      "writing %s",
			args:        []any{"/tmp/metrics.prom"},
			expectedMsg: "writing /tmp/metrics.prom: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestWrapConfigError(t *testing.T) {
	t.Parallel()
	if err := WrapConfigError(nil, "loading %s", ".env"); err != nil {
		t.Errorf("WrapConfigError(nil) = %v, want nil", err)
	}

	cause := fs.ErrNotExist
	err := WrapConfigError(cause, "loading env file %s", ".env")
	if got, want := err.Error(), "loading env file .env: file does not exist"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Error("ConfigError should unwrap to its cause")
	}
	if code := ExitCode(err); code != ExitErrorConfig {
		t.Errorf("ExitCode = %d, want %d", code, ExitErrorConfig)
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"closed input", InputError{Prompt: "p", Cause: io.EOF}, ExitErrorInput},
		{"wrapped closed input", fmt.Errorf("session: %w", InputError{Prompt: "p", Cause: io.EOF}), ExitErrorInput},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"other", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorInput":    ExitErrorInput,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
