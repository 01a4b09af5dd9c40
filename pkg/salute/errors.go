package salute

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/status"
)

// ProviderError is a failure reported by the remote speech platform or the
// transport underneath it.
type ProviderError struct {
	// Op names the operation that failed ("recognize", "synthesize").
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if st, ok := status.FromError(e.Err); ok {
		return fmt.Sprintf("salute %s: %s: %s", e.Op, st.Code(), st.Message())
	}
	return fmt.Sprintf("salute %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Message returns the provider's error description, suitable for forwarding
// to a client as an error event.
func (e *ProviderError) Message() string {
	if st, ok := status.FromError(e.Err); ok && st.Message() != "" {
		return st.Message()
	}
	return e.Err.Error()
}

// ErrorMessage extracts a client-presentable description from err,
// unwrapping a ProviderError when present.
func ErrorMessage(err error) string {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Message()
	}
	return err.Error()
}

func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Op: op, Err: err}
}
