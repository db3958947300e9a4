package processor

import (
	"testing"

	"codeberg.org/snonux/similarwords/internal/cli"
	"codeberg.org/snonux/similarwords/internal/testutil"
)

func TestMergeStdin(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"aa bb cc\n bb b\n a c\n", "a c\naa b bb cc\n"},
	}

	for _, tt := range tests {
		p, stdout, _, _ := newTestProcessor(t, cli.NewFlags(), tt.input, &testutil.MockPhonemizer{})

		if err := p.Merge(nil); err != nil {
			t.Fatalf("Merge() error = %v", err)
		}
		if stdout.String() != tt.want {
			t.Errorf("Merge(%q) = %q, want %q", tt.input, stdout.String(), tt.want)
		}
	}
}

func TestMergeFiles(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		input2 string
		want   string
	}{
		{"empty", "", "", ""},
		{"linked by shared words", "aa bb cc\n bb b\n a c\n", "d c e\nbb f\n", "a c d e\naa b bb cc f\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := testutil.WriteTempFile(t, "first.txt", tt.input)
			second := testutil.WriteTempFile(t, "second.txt", tt.input2)
			p, stdout, _, _ := newTestProcessor(t, cli.NewFlags(), "", &testutil.MockPhonemizer{})

			if err := p.Merge([]string{first, second}); err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			if stdout.String() != tt.want {
				t.Errorf("output = %q, want %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestMergeMissingFile(t *testing.T) {
	p, _, _, _ := newTestProcessor(t, cli.NewFlags(), "", &testutil.MockPhonemizer{})
	if err := p.Merge([]string{"/nonexistent/groups.txt"}); err == nil {
		t.Error("Expected error for missing file")
	}
}
