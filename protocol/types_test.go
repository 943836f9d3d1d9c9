package protocol

import "testing"

func TestParseNumericFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    NumericFormat
		wantErr bool
	}{
		{input: "ASCII", want: FormatASCII},
		{input: "ASCii", want: FormatASCII},
		{input: "ascii", want: FormatASCII},
		{input: "FLOat", want: FormatFloat},
		{input: "float", want: FormatFloat},
		{input: " FLOAT \n", want: FormatFloat},
		{input: "binary", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseNumericFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseNumericFormat(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNumericFormat(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNumericFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNumericFormatToken(t *testing.T) {
	if got := FormatASCII.Token(); got != "ASCii" {
		t.Errorf("FormatASCII.Token() = %q", got)
	}
	if got := FormatFloat.Token(); got != "FLOat" {
		t.Errorf("FormatFloat.Token() = %q", got)
	}
	if got := FormatUnknown.Token(); got != "" {
		t.Errorf("FormatUnknown.Token() = %q, want empty", got)
	}
}

func TestTransitionToken(t *testing.T) {
	tests := []struct {
		transition Transition
		want       string
	}{
		{TransitionRise, "RISE"},
		{TransitionFall, "FALL"},
		{TransitionBoth, "BOTH"},
		{TransitionNever, "NEVER"},
	}

	for _, tt := range tests {
		if got := tt.transition.Token(); got != tt.want {
			t.Errorf("%v.Token() = %q, want %q", tt.transition, got, tt.want)
		}
	}

	if got := Transition(99).Token(); got != "" {
		t.Errorf("out-of-range transition Token() = %q, want empty", got)
	}
}

func TestParseTransition(t *testing.T) {
	for _, want := range []Transition{TransitionRise, TransitionFall, TransitionBoth, TransitionNever} {
		got, err := ParseTransition(want.Token())
		if err != nil {
			t.Fatalf("ParseTransition(%q): %v", want.Token(), err)
		}
		if got != want {
			t.Errorf("ParseTransition(%q) = %v, want %v", want.Token(), got, want)
		}
	}

	if _, err := ParseTransition("EDGE"); err == nil {
		t.Error("ParseTransition(\"EDGE\") should fail")
	}
}
