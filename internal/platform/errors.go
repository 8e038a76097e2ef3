package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned for operations a backend cannot perform.
	ErrUnsupported = errors.New("operation not supported by this backend")

	// ErrNotFound is returned when a selector matches no display.
	ErrNotFound = errors.New("no display matched")

	// ErrAmbiguous is returned when a selector matches more than one display.
	ErrAmbiguous = errors.New("display selector is ambiguous")
)

// BackendError reports a failed native call or helper process.
type BackendError struct {
	Context string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func backendErr(context string, err error) error {
	return &BackendError{Context: context, Err: err}
}
