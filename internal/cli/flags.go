package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile string
	Verbose bool
	Output  string

	// create-ipa-dict flags
	ListLanguages bool
	ListModels    bool
	Language      string
	Voice         string
	ASCII         bool
	Provider      string
	Fallback      string
	OpenAIModel   string
	GeminiModel   string

	// find-similar-words flags
	Normalize   bool
	MinLength   int
	MaxLength   int
	MaxDistance int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Provider:    "espeak",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}
