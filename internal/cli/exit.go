package cli

import (
	"context"
	stderrors "errors"

	"github.com/matzehuels/facadegen/pkg/errors"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitBadInput  = 2 // grammar, spec or resolution problems in user input
	ExitInterrupt = 130
)

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupt
	case stderrors.Is(err, errValidation):
		return ExitBadInput
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeSyntax, errors.ErrCodeResolution, errors.ErrCodeUnknownFloor,
		errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSpec, errors.ErrCodeInvalidPath,
		errors.ErrCodeNotFound:
		return ExitBadInput
	}
	return ExitFailure
}
