package commands

import (
	"fmt"

	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

// Error codes a caller might need to branch on, carried by ComplexError.
const (
	ErrSubprocessMissing = iota
	ErrPermissionDenied
)

// WrapError wraps an error for the sake of showing a stack trace in logs.
// the go-errors package, for some reason, does not return nil when you try
// to wrap a non-error, so we're just doing it here.
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 0)
}

// ComplexError is an error which carries a code so that calling code has an
// easier job distinguishing e.g. "collaborator binary missing" from
// "permission denied" without string-matching the message.
type ComplexError struct {
	Message string
	Code    int
	frame   xerrors.Frame
}

func NewComplexError(code int, message string) ComplexError {
	return ComplexError{Message: message, Code: code, frame: xerrors.Caller(1)}
}

func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Printf("%d %s", ce.Code, ce.Message)
	ce.frame.Format(p)
	return nil
}

func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return fmt.Sprint(ce)
}

// HasErrorCode reports whether err is (or wraps) a ComplexError with the
// given code.
func HasErrorCode(err error, code int) bool {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code == code
	}
	return false
}
