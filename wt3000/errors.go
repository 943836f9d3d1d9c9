package wt3000

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned by every operation on an analyzer that has not
// been bound to a transport with SetTransport.
var ErrNotConnected = errors.New("wt3000: analyzer is not bound to a transport")

// TransportError wraps a failure reported by the underlying transport.
// It is surfaced unchanged; the driver never retries on its own, since
// re-issuing a query on a half-read bulk channel risks reading from a
// desynchronized stream.
type TransportError struct {
	// Op is "write" or "read"
	Op string

	// Err is the error reported by the transport
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TruncatedError indicates a response read ended before the terminator was
// seen. The bytes received so far are carried in Data so the caller can still
// inspect them.
type TruncatedError struct {
	// Data is the partial response
	Data []byte

	// Max is the length bound the read was issued with
	Max int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("response truncated: no terminator within %d bytes (%d received)", e.Max, len(e.Data))
}

// IsTruncated returns true if the error is a TruncatedError.
func IsTruncated(err error) bool {
	var te *TruncatedError
	return errors.As(err, &te)
}
