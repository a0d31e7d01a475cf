package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeSyntax, "unexpected token: %s", "--")

	if err.Code != ErrCodeSyntax {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSyntax)
	}

	if err.Message != "unexpected token: --" {
		t.Errorf("Message = %v, want %v", err.Message, "unexpected token: --")
	}

	expected := "SYNTAX: unexpected token: --"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidSpec, cause, "side front")

	if err.Code != ErrCodeInvalidSpec {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidSpec)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

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
			err:      New(ErrCodeSyntax, "test"),
			code:     ErrCodeSyntax,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeSyntax, "test"),
			code:     ErrCodeResolution,
			expected: false,
		},
		{
			name:     "outer code of wrapped error",
			err:      Wrap(ErrCodeInvalidSpec, New(ErrCodeSyntax, "inner"), "outer"),
			code:     ErrCodeInvalidSpec,
			expected: true,
		},
		{
			name:     "inner code of wrapped error",
			err:      Wrap(ErrCodeInvalidSpec, New(ErrCodeSyntax, "inner"), "outer"),
			code:     ErrCodeSyntax,
			expected: true,
		},
		{
			name:     "through fmt wrapping",
			err:      fmt.Errorf("build: %w", New(ErrCodeResolution, "too wide")),
			code:     ErrCodeResolution,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeSyntax,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeSyntax,
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
		{"Error type", New(ErrCodeUnknownFloor, "test"), ErrCodeUnknownFloor},
		{"outermost wins", Wrap(ErrCodeInvalidSpec, New(ErrCodeSyntax, "x"), "y"), ErrCodeInvalidSpec},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
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
		{"Error type", New(ErrCodeSyntax, "friendly message"), "friendly message"},
		{"nested", Wrap(ErrCodeInvalidSpec, New(ErrCodeSyntax, "bad token"), "side front"), "side front: bad token"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeSyntax,
		ErrCodeResolution,
		ErrCodeUnknownFloor,
		ErrCodeInvalidInput,
		ErrCodeInvalidSpec,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}

func TestAnnotate(t *testing.T) {
	if Annotate(nil, "ctx") != nil {
		t.Error("Annotate(nil) should return nil")
	}

	base := New(ErrCodeSyntax, "unexpected token")
	err := Annotate(base, "line %d", 3)
	if GetCode(err) != ErrCodeSyntax {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), ErrCodeSyntax)
	}
	if want := "SYNTAX: line 3: unexpected token"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	plain := errors.New("boom")
	err = Annotate(plain, "floor %s", "Ground")
	if !errors.Is(err, plain) {
		t.Error("Annotate should wrap plain errors")
	}
	if err.Error() != "floor Ground: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}
