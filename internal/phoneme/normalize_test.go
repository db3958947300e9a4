package phoneme

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only spaces", input: "        ", want: ""},
		{name: "stress marks and allophones", input: "ʌbɹiˌviejˈʃʌnz", want: "abriviejʃanz"},
		{name: "spaced with palatalization", input: "m ʌ nʲ ɪ t o rʲ ɪ n k", want: "manitorink"},
		{name: "length mark", input: "biːt", want: "bit"},
		{name: "collapse after folding", input: "ɪi", want: "i"},
		{name: "collapse doubled consonants", input: "kkqa", want: "ka"},
		{name: "unknown symbols kept", input: "ʔa", want: "ʔa"},
		{name: "combining tilde removed", input: "ɑ̃", want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"ʌbɹiˌviejˈʃʌnz",
		"m ʌ nʲ ɪ t o rʲ ɪ n k",
		"ˈæpəl",
		"ɐbˈlokə",
		"χaχa hɦħ",
		"aäɐɑʌ eæɛœɜ",
		"ʃtʃʂç ʒʐ θð",
		"abć̂def",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCanonicalFixedPoints(t *testing.T) {
	for to := range allophones {
		if got := Canonical(to); got != to {
			t.Errorf("Canonical(%q) = %q, canonical symbols must map to themselves", to, got)
		}
	}
}

func TestIsModifier(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'ˈ', true},
		{'ː', true},
		{'ʲ', true},
		{'̃', true},
		{'ͯ', true},
		{'Ͱ', false},
		{'ʯ', false},
		{'a', false},
	}

	for _, tt := range tests {
		if got := IsModifier(tt.r); got != tt.want {
			t.Errorf("IsModifier(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
