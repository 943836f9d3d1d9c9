package protocol

import (
	"fmt"
	"strings"
)

// Mode determines how a command line is terminated and whether a response
// read follows it.
type Mode int

const (
	// ModeSet writes a setting: "<path> <parameter>"
	ModeSet Mode = iota

	// ModeQuery reads a value: "<path>?"
	ModeQuery

	// ModeEvent sends a bare common command such as *CLS
	ModeEvent
)

func (m Mode) String() string {
	switch m {
	case ModeSet:
		return "set"
	case ModeQuery:
		return "query"
	case ModeEvent:
		return "event"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Encode builds one complete command line from a path of GPIB segments, a
// mode, and an optional parameter. Segments are given without colons; the
// encoder joins them with ":" separators and prefixes the line with ":".
// The returned line always ends with exactly one Terminator and contains no
// other terminator bytes.
//
// For ModeEvent the single segment is taken as the literal command string
// (e.g. CmdClearStatus) and param must be empty.
func Encode(mode Mode, param string, segments ...string) (string, error) {
	switch mode {
	case ModeEvent:
		if len(segments) != 1 || segments[0] == "" {
			return "", &InvalidCommandError{Reason: "event command requires exactly one literal"}
		}
		if param != "" {
			return "", &InvalidCommandError{Reason: "event command takes no parameter"}
		}
		return segments[0] + string(Terminator), nil

	case ModeSet, ModeQuery:
		if len(segments) == 0 {
			return "", &InvalidCommandError{Reason: "command path is empty"}
		}
		for _, seg := range segments {
			if seg == "" {
				return "", &InvalidCommandError{Reason: "command path contains an empty segment"}
			}
			if strings.ContainsAny(seg, ":? \r\n") {
				return "", &InvalidCommandError{
					Reason: fmt.Sprintf("segment %q contains a reserved character", seg),
				}
			}
		}
		path := ":" + strings.Join(segments, ":")
		if mode == ModeQuery {
			if param != "" {
				return "", &InvalidCommandError{Reason: "query command takes no parameter"}
			}
			return path + "?" + string(Terminator), nil
		}
		if param == "" {
			return "", &InvalidCommandError{Reason: "set command requires a parameter"}
		}
		if strings.ContainsRune(param, rune(Terminator)) {
			return "", &InvalidCommandError{Reason: "parameter contains a terminator"}
		}
		return path + " " + param + string(Terminator), nil

	default:
		return "", &InvalidCommandError{Reason: fmt.Sprintf("unknown mode %d", int(mode))}
	}
}

// BuildSet encodes a setting command for the given path and parameter.
func BuildSet(param string, segments ...string) (string, error) {
	return Encode(ModeSet, param, segments...)
}

// BuildQuery encodes a query command for the given path.
func BuildQuery(segments ...string) (string, error) {
	return Encode(ModeQuery, "", segments...)
}

// BuildEvent returns the complete line for a fixed literal command such as
// CmdClearStatus or CmdIdentify.
func BuildEvent(literal string) string {
	return literal + string(Terminator)
}

// FormatBool renders a boolean setting parameter the way the instrument
// expects it.
func FormatBool(on bool) string {
	if on {
		return "1"
	}
	return "0"
}

// ParseBool is the inverse of FormatBool. It also accepts the ON/OFF
// spellings the instrument tolerates.
func ParseBool(token string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "1", "ON":
		return true, nil
	case "0", "OFF":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean token: %q", token)
	}
}
