package language

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// ErrInsufficientData is returned when the whole input was read without a
// reliable detection
var ErrInsufficientData = errors.New("not enough text for language detection")

// Detected is the result of DetectReader
type Detected struct {
	// Language is the ISO 639-1 code
	Language string
	// Consumed holds the text read from the input during detection
	Consumed string
}

// Detect returns the ISO 639-1 code of the language of text if the
// detection is reliable
func Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "", false
	}
	code := info.Lang.Iso6391()
	return code, code != ""
}

// DetectReader reads r line by line until the accumulated text is enough
// for a reliable detection. The consumed text is returned so callers can
// process it again. At the end of input the result holds everything read
// together with ErrInsufficientData.
func DetectReader(r *bufio.Reader) (*Detected, error) {
	var consumed strings.Builder
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			consumed.WriteString(line)
			if code, ok := Detect(consumed.String()); ok {
				return &Detected{Language: code, Consumed: consumed.String()}, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return &Detected{Consumed: consumed.String()}, ErrInsufficientData
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}
}
