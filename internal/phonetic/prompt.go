package phonetic

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a phonetics expert. Reply with the broad IPA transcription " +
	"of the given text only. Do not add slashes, brackets, quotes or explanations."

func userPrompt(language, text string) string {
	if language == "" {
		return fmt.Sprintf("Transcribe: %s", text)
	}
	return fmt.Sprintf("Transcribe (language %s): %s", language, text)
}

// cleanTranscription strips the decoration models tend to add around a
// transcription and keeps only the first line
func cleanTranscription(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "/[]`\"' \t")
	return joinLines(s)
}
