package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/tubequiz/internal/app"
	"github.com/abhisek/tubequiz/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "tubequiz",
	Short: "Quiz yourself on any YouTube video",
	Long:  "Tubequiz — terminal app that turns a YouTube video's captions into a multiple-choice quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("provider", "", "LLM provider: gemini, openai, anthropic, openrouter (overrides TUBEQUIZ_LLM_PROVIDER)")
	rootCmd.PersistentFlags().String("model", "", "Model name for the selected provider")
	rootCmd.PersistentFlags().String("lang", "", "Preferred caption language code (default \"en\")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log one line per LLM call to stderr")

	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the provider config from the environment, with
// discovery of bare API key variables as a fallback and flags taking
// the final word.
func resolveConfig(cmd *cobra.Command) llm.Config {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}

	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.Provider = p
	}
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		cfg = cfg.WithModel(m)
	}

	return cfg
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	lang, _ := cmd.Flags().GetString("lang")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return app.Run(app.Options{
		Config:   resolveConfig(cmd),
		Language: lang,
		Verbose:  verbose,
	})
}
