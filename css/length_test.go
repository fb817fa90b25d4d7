package css

import (
	"math"
	"testing"
)

func TestFormatPx(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0px"},
		{math.Copysign(0, -1), "0px"},
		{10, "10px"},
		{-2, "-2px"},
		{1.5, "1.50px"},
		{1.005, "1.00px"},
		{2.0 / 3.0, "0.67px"},
		{123456, "123456px"},
	}
	for _, tt := range tests {
		if got := FormatPx(tt.in); got != tt.want {
			t.Errorf("FormatPx(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		value   float64
		unit    string
		wantErr bool
	}{
		{"10", 10, "", false},
		{"10px", 10, "px", false},
		{" 2.5MM ", 2.5, "mm", false},
		{"-1.25in", -1.25, "in", false},
		{"50%", 50, "%", false},
		{"", 0, "", true},
		{"px", 0, "", true},
		{"10px solid", 0, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, u, err := ParseLength(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if v != tt.value || u != tt.unit {
				t.Errorf("ParseLength(%q) = %v %q, want %v %q", tt.in, v, u, tt.value, tt.unit)
			}
		})
	}
}

func TestParsePx(t *testing.T) {
	if got := ParsePx("12px", 0); got != 12 {
		t.Errorf("ParsePx(12px) = %v", got)
	}
	if got := ParsePx("-3.50px", 0); got != -3.5 {
		t.Errorf("ParsePx(-3.50px) = %v", got)
	}
	if got := ParsePx("1em", 7); got != 7 {
		t.Errorf("ParsePx(1em) = %v, want default", got)
	}
	if got := ParsePx("", 7); got != 7 {
		t.Errorf("ParsePx(\"\") = %v, want default", got)
	}
}
