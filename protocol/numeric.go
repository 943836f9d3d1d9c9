package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DecodeNumericValues interprets a raw :NUMeric:VALue? payload as an ordered
// sequence of measurement values under the given format. Order matches the
// instrument's reporting order and is preserved.
//
// Decoding is all-or-nothing: a single malformed element invalidates the
// batch, since consumers rely on per-channel positional correctness.
func DecodeNumericValues(data []byte, format NumericFormat) ([]float64, error) {
	switch format {
	case FormatASCII:
		return decodeASCII(data)
	case FormatFloat:
		return decodeFloatBlock(data)
	default:
		return nil, &DecodeError{Format: format, Reason: "numeric format not configured"}
	}
}

// decodeASCII parses comma-separated decimal tokens, each a floating-point
// literal. Instrument output commonly uses scientific notation.
func decodeASCII(data []byte) ([]float64, error) {
	text := strings.TrimRight(string(data), "\r\n")
	if text == "" {
		return nil, &DecodeError{Format: FormatASCII, Reason: "empty payload"}
	}

	tokens := strings.Split(text, ",")
	values := make([]float64, 0, len(tokens))
	for i, token := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return nil, &DecodeError{
				Format:   FormatASCII,
				Position: i + 1,
				Token:    token,
				Reason:   "malformed numeric token",
			}
		}
		values = append(values, v)
	}
	return values, nil
}

// decodeFloatBlock parses an IEEE 488.2 block of packed big-endian IEEE-754
// single-precision values.
//
// Definite-length form: '#' <d> <length digits> <payload>, where <d> is the
// number of length digits. Indefinite-length form: "#0" <payload> terminated
// by a final Terminator. A payload with no '#' header at all is treated as
// bare packed floats (with a single trailing terminator tolerated), so
// captures taken past the header still decode.
func decodeFloatBlock(data []byte) ([]float64, error) {
	payload, err := stripBlockHeader(data)
	if err != nil {
		return nil, err
	}

	if len(payload)%4 != 0 {
		return nil, &DecodeError{
			Format: FormatFloat,
			Reason: fmt.Sprintf("misaligned payload: %d bytes is not a multiple of 4", len(payload)),
		}
	}

	values := make([]float64, 0, len(payload)/4)
	for i := 0; i < len(payload); i += 4 {
		bits := binary.BigEndian.Uint32(payload[i : i+4])
		values = append(values, float64(math.Float32frombits(bits)))
	}
	return values, nil
}

func stripBlockHeader(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Format: FormatFloat, Reason: "empty payload"}
	}

	if data[0] != '#' {
		// Bare packed floats. A 0x0A byte can legitimately occur inside a
		// float, so only drop a trailing terminator when it is the odd byte
		// out.
		if len(data)%4 == 1 && data[len(data)-1] == Terminator {
			return data[:len(data)-1], nil
		}
		return data, nil
	}

	if len(data) < 2 {
		return nil, &DecodeError{Format: FormatFloat, Reason: "truncated block header"}
	}

	digits := int(data[1] - '0')
	if digits < 0 || digits > 9 {
		return nil, &DecodeError{
			Format: FormatFloat,
			Reason: fmt.Sprintf("malformed block header: bad digit count byte 0x%02X", data[1]),
		}
	}

	if digits == 0 {
		// Indefinite length: data runs to the final terminator.
		payload := data[2:]
		if len(payload) > 0 && payload[len(payload)-1] == Terminator {
			payload = payload[:len(payload)-1]
		}
		return payload, nil
	}

	if len(data) < 2+digits {
		return nil, &DecodeError{Format: FormatFloat, Reason: "truncated block header"}
	}

	length, err := strconv.Atoi(string(data[2 : 2+digits]))
	if err != nil {
		return nil, &DecodeError{
			Format: FormatFloat,
			Reason: fmt.Sprintf("malformed block header: length field %q", data[2:2+digits]),
		}
	}

	payload := data[2+digits:]
	if len(payload) < length {
		return nil, &DecodeError{
			Format: FormatFloat,
			Reason: fmt.Sprintf("block shorter than header promises: got %d bytes, header says %d", len(payload), length),
		}
	}
	return payload[:length], nil
}
