package protocol

import (
	"errors"
	"fmt"
)

// InvalidCommandError indicates a malformed local request that was rejected
// before anything reached the wire.
type InvalidCommandError struct {
	// Reason describes what was wrong with the request
	Reason string
}

func (e *InvalidCommandError) Error() string {
	return fmt.Sprintf("invalid command: %s", e.Reason)
}

// IsInvalidCommand returns true if the error is an InvalidCommandError.
func IsInvalidCommand(err error) bool {
	var ice *InvalidCommandError
	return errors.As(err, &ice)
}

// DecodeError indicates a numeric response payload was present but could not
// be interpreted under the configured format. Decoding aborts on the first
// failure; no partial values are returned.
type DecodeError struct {
	// Format is the numeric format the decode was attempted under
	Format NumericFormat

	// Position is the 1-based index of the offending ASCII token, or 0 when
	// the failure is not tied to a token
	Position int

	// Token is the offending ASCII token, if any
	Token string

	// Reason describes the failure
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("decode %s response: %s: token %q at position %d",
			e.Format, e.Reason, e.Token, e.Position)
	}
	return fmt.Sprintf("decode %s response: %s", e.Format, e.Reason)
}

// IsDecodeError returns true if the error is a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
