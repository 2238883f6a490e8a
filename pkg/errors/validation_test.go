package errors

import (
	"strings"
	"testing"
)

func TestValidateSourceID(t *testing.T) {
	valid := []string{
		"pi",
		"covid",
		"mandelbrot-spiral",
		"stock_aapl",
		"gw150914",
	}
	for _, id := range valid {
		if err := ValidateSourceID(id); err != nil {
			t.Errorf("ValidateSourceID(%q) = %v, want nil", id, err)
		}
	}

	invalid := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"traversal", "../etc/passwd"},
		{"slash", "a/b"},
		{"backslash", `a\b`},
		{"null byte", "a\x00b"},
		{"control char", "a\x07b"},
		{"too long", strings.Repeat("x", 129)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceID(tt.id)
			if err == nil {
				t.Fatalf("ValidateSourceID(%q) = nil, want error", tt.id)
			}
			if !Is(err, ErrCodeInvalidSource) {
				t.Errorf("wrong code: %v", err)
			}
		})
	}
}

func TestValidateDataFilename(t *testing.T) {
	valid := []string{
		"genome.fasta",
		"audio.wav",
		"prices.json",
		"strain.txt.gz",
	}
	for _, f := range valid {
		if err := ValidateDataFilename(f); err != nil {
			t.Errorf("ValidateDataFilename(%q) = %v, want nil", f, err)
		}
	}

	invalid := []struct {
		name string
		f    string
	}{
		{"empty", ""},
		{"path", "data/genome.fasta"},
		{"traversal", "../genome.fasta"},
		{"hidden", ".env"},
		{"too long", strings.Repeat("x", 257)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateDataFilename(tt.f); err == nil {
				t.Errorf("ValidateDataFilename(%q) = nil, want error", tt.f)
			}
		})
	}
}

func TestValidateNDigits(t *testing.T) {
	if err := ValidateNDigits(5000); err != nil {
		t.Errorf("ValidateNDigits(5000) = %v", err)
	}
	if err := ValidateNDigits(0); err != nil {
		t.Errorf("zero means default, should be valid: %v", err)
	}
	if err := ValidateNDigits(-1); err == nil {
		t.Error("negative should fail")
	}
	if err := ValidateNDigits(2_000_000); err == nil {
		t.Error("over the cap should fail")
	}
}
