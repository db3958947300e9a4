package phonetic

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ESpeakPhonemizer transcribes text with the espeak-ng command line tool
type ESpeakPhonemizer struct {
	binary string
	voice  string
	ascii  bool
}

// NewESpeakPhonemizer creates an espeak-ng backend. An empty voice uses
// espeak's default.
func NewESpeakPhonemizer(config *Config) *ESpeakPhonemizer {
	binary := config.Binary
	if binary == "" {
		binary = "espeak-ng"
	}
	return &ESpeakPhonemizer{binary: binary, voice: config.Voice, ascii: config.ASCII}
}

func (e *ESpeakPhonemizer) args() []string {
	args := []string{"-q"}
	if e.voice != "" {
		args = append(args, "-v", e.voice)
	}
	if e.ascii {
		args = append(args, "-x")
	} else {
		args = append(args, "--ipa")
	}
	return append(args, "--stdin")
}

// Phonemize runs espeak-ng on text. Clauses printed on separate lines are
// joined with single spaces.
func (e *ESpeakPhonemizer) Phonemize(ctx context.Context, text string) (string, error) {
	cmd := exec.CommandContext(ctx, e.binary, e.args()...)
	cmd.Stdin = strings.NewReader(text)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", e.binary, err)
	}
	return joinLines(string(output)), nil
}

// Name returns the backend name
func (e *ESpeakPhonemizer) Name() string {
	return "espeak-ng"
}

// IsAvailable verifies that espeak-ng is installed
func (e *ESpeakPhonemizer) IsAvailable() error {
	if err := exec.Command(e.binary, "--version").Run(); err != nil {
		return fmt.Errorf("%s is not installed or not in PATH: %w", e.binary, err)
	}
	return nil
}

func joinLines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
