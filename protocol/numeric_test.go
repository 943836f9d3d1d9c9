package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeASCII(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []float64
	}{
		{
			name:    "two channels scientific notation",
			payload: "1.250000E+02,-3.400000E-01\n",
			want:    []float64{125.0, -0.34},
		},
		{
			name:    "single value",
			payload: "42\n",
			want:    []float64{42},
		},
		{
			name:    "plain decimals with spaces",
			payload: " 1.5, 2.5 ,3.5",
			want:    []float64{1.5, 2.5, 3.5},
		},
		{
			name:    "overrange marker is still a number",
			payload: "9.91E+37\n",
			want:    []float64{9.91e+37},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeNumericValues([]byte(tt.payload), FormatASCII)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.InDelta(t, tt.want[i], got[i], 1e-12)
			}
		})
	}
}

func TestDecodeASCIIMalformedToken(t *testing.T) {
	values, err := DecodeNumericValues([]byte("1.2,abc,3.4"), FormatASCII)

	require.Error(t, err)
	assert.Nil(t, values, "a corrupted element must invalidate the whole batch")

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Position)
	assert.Equal(t, "abc", de.Token)
	assert.Equal(t, FormatASCII, de.Format)
}

func TestDecodeASCIIEmpty(t *testing.T) {
	_, err := DecodeNumericValues([]byte("\n"), FormatASCII)
	assert.True(t, IsDecodeError(err))
}

// ASCII decode must invert a reference encoder: rendering floats the way the
// instrument does, then decoding, recovers them within float tolerance.
func TestDecodeASCIIRoundTrip(t *testing.T) {
	inputs := [][]float64{
		{0},
		{1, -1, 0.5},
		{125.0, -0.34, 1e-9, 6.022e23},
		{-2.5e-7, 3.14159265358979, 999999.875},
	}

	for _, want := range inputs {
		tokens := make([]string, len(want))
		for i, v := range want {
			tokens[i] = strconv.FormatFloat(v, 'E', 6, 64)
		}
		payload := strings.Join(tokens, ",") + "\n"

		got, err := DecodeNumericValues([]byte(payload), FormatASCII)
		require.NoError(t, err, "payload %q", payload)
		require.Len(t, got, len(want))
		for i := range want {
			tol := math.Abs(want[i]) * 1e-6
			if tol == 0 {
				tol = 1e-12
			}
			assert.InDelta(t, want[i], got[i], tol)
		}
	}
}

// packFloats renders values as consecutive big-endian IEEE-754 singles, the
// instrument's on-wire layout.
func packFloats(values ...float32) []byte {
	buf := make([]byte, 0, len(values)*4)
	for _, v := range values {
		buf = binary.BigEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

func TestDecodeFloatBlock(t *testing.T) {
	payload := packFloats(1.5, -2.25, 3.0)

	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "definite-length block",
			data: append([]byte(fmt.Sprintf("#2%02d", len(payload))), payload...),
		},
		{
			name: "indefinite-length block",
			data: append(append([]byte("#0"), payload...), '\n'),
		},
		{
			name: "bare payload without header",
			data: payload,
		},
		{
			name: "bare payload with trailing terminator",
			data: append(append([]byte{}, payload...), '\n'),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeNumericValues(tt.data, FormatFloat)
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, []float64{1.5, -2.25, 3.0}, got)
		})
	}
}

func TestDecodeFloatMisaligned(t *testing.T) {
	// Any byte count that is not a multiple of four after header removal
	// must fail outright, never return a partial sequence.
	for _, n := range []int{1, 2, 3, 5, 6, 7, 9} {
		data := append([]byte(fmt.Sprintf("#1%d", n)), make([]byte, n)...)

		values, err := DecodeNumericValues(data, FormatFloat)
		require.Error(t, err, "%d bytes should not decode", n)
		assert.Nil(t, values)

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.Contains(t, de.Reason, "misaligned")
	}
}

func TestDecodeFloatHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "empty payload", data: nil, want: "empty payload"},
		{name: "lone hash", data: []byte("#"), want: "truncated block header"},
		{name: "non-digit count", data: []byte("#X1234"), want: "bad digit count"},
		{name: "length field cut short", data: []byte("#41"), want: "truncated block header"},
		{name: "non-numeric length field", data: []byte("#2AB\x00\x00\x00\x00"), want: "length field"},
		{name: "block shorter than header promises", data: []byte("#208\x3f\xc0\x00\x00"), want: "shorter than header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNumericValues(tt.data, FormatFloat)
			require.Error(t, err)
			assert.True(t, IsDecodeError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	values, err := DecodeNumericValues([]byte("1.0,2.0"), FormatUnknown)

	require.Error(t, err)
	assert.Nil(t, values)
	assert.Contains(t, err.Error(), "not configured")
}
