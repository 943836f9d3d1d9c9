package protocol

import (
	"fmt"
	"strings"
)

// NumericFormat selects the on-wire representation the instrument uses for
// numeric measurement responses. It must match what the device is actually
// configured to emit; the decoder performs no autodetection.
type NumericFormat int

const (
	// FormatUnknown is the zero value; decoding under it always fails
	FormatUnknown NumericFormat = iota

	// FormatASCII: comma-separated decimal text, scientific notation allowed
	FormatASCII

	// FormatFloat: IEEE 488.2 block of packed IEEE-754 single-precision values
	FormatFloat
)

// Token returns the wire parameter for the format, or "" if the format is
// not a valid selection.
func (f NumericFormat) Token() string {
	switch f {
	case FormatASCII:
		return FormatTokenASCII
	case FormatFloat:
		return FormatTokenFloat
	default:
		return ""
	}
}

func (f NumericFormat) String() string {
	switch f {
	case FormatASCII:
		return "ASCII"
	case FormatFloat:
		return "FLOAT"
	default:
		return "UNKNOWN"
	}
}

// ParseNumericFormat converts a textual format name into a NumericFormat.
// It accepts the wire tokens ("ASCii", "FLOat") and plain spellings in any
// case. This is the only place raw strings enter the typed format state.
func ParseNumericFormat(s string) (NumericFormat, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASCII":
		return FormatASCII, nil
	case "FLOAT":
		return FormatFloat, nil
	default:
		return FormatUnknown, fmt.Errorf("unknown numeric format %q", s)
	}
}

// Transition selects which edge of a status register bit raises an event.
type Transition int

const (
	TransitionRise Transition = iota
	TransitionFall
	TransitionBoth
	TransitionNever
)

// Token returns the wire parameter for the transition condition, or "" if
// the value is out of range.
func (t Transition) Token() string {
	switch t {
	case TransitionRise:
		return "RISE"
	case TransitionFall:
		return "FALL"
	case TransitionBoth:
		return "BOTH"
	case TransitionNever:
		return "NEVER"
	default:
		return ""
	}
}

func (t Transition) String() string {
	if tok := t.Token(); tok != "" {
		return tok
	}
	return fmt.Sprintf("Transition(%d)", int(t))
}

// ParseTransition converts a textual condition name into a Transition.
func ParseTransition(s string) (Transition, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RISE":
		return TransitionRise, nil
	case "FALL":
		return TransitionFall, nil
	case "BOTH":
		return TransitionBoth, nil
	case "NEVER":
		return TransitionNever, nil
	default:
		return 0, fmt.Errorf("unknown transition condition %q", s)
	}
}
