package format

import (
	"math/big"
	"testing"
	"time"
)

func TestJoinTerms(t *testing.T) {
	t.Parallel()
	huge, _ := new(big.Int).SetString("354224848179261915075", 10)

	tests := []struct {
		name  string
		terms []*big.Int
		want  string
	}{
		{"empty", nil, ""},
		{"single", []*big.Int{big.NewInt(0)}, "0"},
		{"several", []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(1), big.NewInt(2), big.NewInt(3)}, "0, 1, 1, 2, 3"},
		{"beyond uint64", []*big.Int{big.NewInt(7), huge}, "7, 354224848179261915075"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := JoinTerms(tt.terms); got != tt.want {
				t.Errorf("JoinTerms() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrequencyLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		word  string
		count int
		want  string
	}{
		{"the", 2, "the: 2"},
		{"", 1, ": 1"},
	}
	for _, tt := range tests {
		if got := FrequencyLine(tt.word, tt.count); got != tt.want {
			t.Errorf("FrequencyLine(%q, %d) = %q, want %q", tt.word, tt.count, got, tt.want)
		}
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
