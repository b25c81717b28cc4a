package units

import (
	"math"
	"testing"
)

func TestParseSystem(t *testing.T) {
	tests := []struct {
		in   string
		want System
	}{
		{"metric", Metric},
		{"imperial", Imperial},
		{"IMPERIAL", Imperial},
		{"  imperial  ", Imperial},
		{"", Metric},
		{"furlongs", Metric},
	}
	for _, tt := range tests {
		if got := ParseSystem(tt.in); got != tt.want {
			t.Errorf("ParseSystem(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestConversionsRoundTrip(t *testing.T) {
	for _, v := range []float64{0.5, 1, 2.44, 100, 420} {
		if got := FromCm(ToCm(v, Imperial), Imperial); math.Abs(got-v) > 1e-9 {
			t.Errorf("cm round trip of %v gave %v", v, got)
		}
		if got := FromM(ToM(v, Imperial), Imperial); math.Abs(got-v) > 1e-9 {
			t.Errorf("m round trip of %v gave %v", v, got)
		}
		if got := FromM2(ToM2(v, Imperial), Imperial); math.Abs(got-v) > 1e-9 {
			t.Errorf("m2 round trip of %v gave %v", v, got)
		}
	}
}

func TestConversionFactors(t *testing.T) {
	if got := ToCm(1, Imperial); math.Abs(got-30.48) > 1e-9 {
		t.Errorf("1 ft = %v cm, want 30.48", got)
	}
	if got := ToM(1, Imperial); math.Abs(got-0.3048) > 1e-9 {
		t.Errorf("1 ft = %v m, want 0.3048", got)
	}
	if got := ToM2(1, Imperial); math.Abs(got-0.09290304) > 1e-12 {
		t.Errorf("1 ft2 = %v m2, want 0.09290304", got)
	}
	// Metric is the identity.
	if got := ToCm(123.4, Metric); got != 123.4 {
		t.Errorf("metric ToCm changed the value: %v", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.40, "2.4"},
		{3.00, "3"},
		{1.25, "1.25"},
		{0.5, "0.5"},
		{10, "10"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePositive(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr string
	}{
		{"plain number", "4.2", 4.2, ""},
		{"comma decimal", "4,2", 4.2, ""},
		{"whitespace trimmed", "  3.5 ", 3.5, ""},
		{"empty", "", 0, "please enter room length"},
		{"non-numeric", "abc", 0, "room length must be a number"},
		{"zero", "0", 0, "room length must be greater than 0"},
		{"negative", "-2", 0, "room length must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePositive(tt.raw, "room length")
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("expected error %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePositive(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParsePositive(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
