// Package protocol implements the GPIB command grammar of the Yokogawa
// WT3000 power analyzer.
//
// This package provides the static command catalog, an encoder that composes
// complete command lines, and a decoder for numeric measurement payloads.
//
// # Command Structure
//
// Commands are colon-delimited hierarchical paths, optionally followed by a
// parameter (set) or a '?' suffix (query), always terminated by a newline:
//
//	Set:   :COMMunicate:REMote 1
//	Query: :NUMeric:VALue?
//	Event: *CLS
//
// # Building Commands
//
// Compose paths from the catalog constants:
//
//	line, err := protocol.BuildSet(protocol.FormatBool(true),
//	    protocol.GroupCommunicate, protocol.CommRemote)
//	// line == ":COMMunicate:REMote 1\n"
//
// Parameterized leaves take the caller-supplied identifier appended to the
// segment:
//
//	line, err := protocol.BuildQuery(protocol.GroupInput, protocol.InputModule+"2")
//	// line == ":INPut:MODUle2?\n"
//
// # Decoding Measurements
//
// Responses to :NUMeric:VALue? arrive either as comma-separated ASCII
// decimals or as an IEEE 488.2 block of packed IEEE-754 single-precision
// values, depending on the configured NumericFormat:
//
//	values, err := protocol.DecodeNumericValues(raw, protocol.FormatASCII)
//
// The decoder is a pure function of (bytes, format); it never guesses the
// format from the payload.
//
// # Error Handling
//
// Malformed local requests fail with InvalidCommandError before reaching the
// wire. Unparseable payloads fail with DecodeError carrying the offending
// token and its position.
package protocol
