package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/similarwords/internal"
)

// NewCreateDictCommand creates the root command of create-ipa-dict
func NewCreateDictCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-ipa-dict [input]",
		Short: "Create IPA dictionary from a word list",
		Long: `create-ipa-dict transcribes a word list, one word per line, into a
dictionary of WORD<TAB>PHONEMES lines.

The espeak voice is taken from --voice, or else the highest priority voice
of --language. Without either the language of the input is detected.

Examples:
  create-ipa-dict -L                      # List languages and voices
  create-ipa-dict -l en words.txt         # Transcribe English words
  create-ipa-dict -o dict.tsv < words.txt # Detect language, write to file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupGlobalFlags(cmd, flags)
	cmd.Flags().BoolVarP(&flags.ListLanguages, "list-languages", "L", false, "Print supported languages and exit")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "", "Set language (default: detect)")
	cmd.Flags().StringVarP(&flags.Voice, "voice", "v", "", "Set espeak voice file (default: highest priority voice for language)")
	cmd.Flags().BoolVarP(&flags.ASCII, "ascii", "a", false, "Use espeak's ascii phoneme names")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Set output file (default: stdout)")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Phonemizer: espeak, openai or gemini")
	cmd.Flags().StringVar(&flags.Fallback, "fallback", "", "Phonemizer used when the primary one fails")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the openai phonemizer")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI chat models for the current API key and exit")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for the gemini phonemizer")

	bindFlagsToViper(cmd, map[string]string{
		"phonemizer.provider":     "provider",
		"phonemizer.fallback":     "fallback",
		"phonemizer.voice":        "voice",
		"phonemizer.ascii":        "ascii",
		"phonemizer.openai_model": "openai-model",
		"phonemizer.gemini_model": "gemini-model",
	})
	return cmd
}

// NewFindSimilarCommand creates the root command of find-similar-words
func NewFindSimilarCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find-similar-words [file [file2]]",
		Short: "Find words with similar pronunciation",
		Long: `find-similar-words reads one or two WORD<TAB>PHONEMES dictionaries and
prints groups of words that sound alike, one group per line.

With two dictionaries only groups containing words of both are printed.
With --max-distance 0 transcriptions must match exactly.

Examples:
  find-similar-words dict.tsv              # Homophones
  find-similar-words -n -d 1 dict.tsv      # Near homophones
  find-similar-words en.tsv de.tsv         # Homophones across languages`,
		Args:    cobra.MaximumNArgs(2),
		Version: internal.Version,
	}

	setupGlobalFlags(cmd, flags)
	cmd.Flags().BoolVarP(&flags.Normalize, "normalize", "n", false, "Normalize phonemes")
	cmd.Flags().IntVarP(&flags.MinLength, "min-length", "l", 0, "Minimum word length")
	cmd.Flags().IntVarP(&flags.MaxLength, "max-length", "L", 0, "Maximum word length (0: unlimited)")
	cmd.Flags().IntVarP(&flags.MaxDistance, "max-distance", "d", 0, "Maximum Levenshtein distance between transcriptions")

	bindFlagsToViper(cmd, map[string]string{
		"search.normalize":    "normalize",
		"search.min_length":   "min-length",
		"search.max_length":   "max-length",
		"search.max_distance": "max-distance",
	})
	return cmd
}

// NewMergeGroupsCommand creates the root command of merge-word-groups
func NewMergeGroupsCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge-word-groups [file...]",
		Short: "Merge word groups",
		Long: `merge-word-groups reads files of word groups, one group per line, and
prints the groups that result from merging all groups sharing a word.`,
		Version: internal.Version,
	}

	setupGlobalFlags(cmd, flags)
	return cmd
}

func setupGlobalFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.similarwords.yaml)")
	cmd.PersistentFlags().BoolVar(&flags.Verbose, "verbose", false, "Enable debug logging")
	cmd.SilenceUsage = true
}

// bindFlagsToViper binds config keys to the named flags
func bindFlagsToViper(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		viper.BindPFlag(key, cmd.Flags().Lookup(name))
	}
}

// ApplyConfig copies config file and environment values into flags. Flags
// set on the command line take precedence through their viper binding.
func ApplyConfig(flags *Flags) {
	setString(&flags.Provider, "phonemizer.provider")
	setString(&flags.Fallback, "phonemizer.fallback")
	setString(&flags.Voice, "phonemizer.voice")
	setString(&flags.OpenAIModel, "phonemizer.openai_model")
	setString(&flags.GeminiModel, "phonemizer.gemini_model")
	setBool(&flags.ASCII, "phonemizer.ascii")

	setBool(&flags.Normalize, "search.normalize")
	setInt(&flags.MinLength, "search.min_length")
	setInt(&flags.MaxLength, "search.max_length")
	setInt(&flags.MaxDistance, "search.max_distance")
}

func setString(dst *string, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

func setBool(dst *bool, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetBool(key)
	}
}

func setInt(dst *int, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetInt(key)
	}
}
