package internal

import "testing"

func TestWordLength(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"ябълка", 6},
		{"éte", 3},
		{"🇩🇪", 1},
	}

	for _, tt := range tests {
		if got := WordLength(tt.word); got != tt.want {
			t.Errorf("WordLength(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestLengthFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter LengthFilter
		word   string
		want   bool
	}{
		{"no bounds", LengthFilter{}, "anything", true},
		{"min inclusive", LengthFilter{Min: 2}, "bb", true},
		{"below min", LengthFilter{Min: 2}, "c", false},
		{"max inclusive", LengthFilter{Max: 3}, "ddd", true},
		{"above max", LengthFilter{Max: 3}, "eeee", false},
		{"within range", LengthFilter{Min: 2, Max: 3}, "bb", true},
		{"graphemes not bytes", LengthFilter{Max: 2}, "яб", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Keep(tt.word); got != tt.want {
				t.Errorf("Keep(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestLengthFilterIsZero(t *testing.T) {
	if !(LengthFilter{}).IsZero() {
		t.Error("empty filter must be zero")
	}
	if (LengthFilter{Min: 1}).IsZero() {
		t.Error("filter with min must not be zero")
	}
}
