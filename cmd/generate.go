package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tubequiz/internal/llm"
	"github.com/abhisek/tubequiz/internal/quizgen"
	"github.com/abhisek/tubequiz/internal/youtube"
)

var generateCmd = &cobra.Command{
	Use:   "generate <url>",
	Short: "Generate a quiz and print it as JSON",
	Long:  "Generate fetches the video's captions, asks the model for questions, and prints the quiz to stdout. Useful for piping into other tools.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := youtube.ExtractVideoID(args[0])
		if id == "" {
			return fmt.Errorf("no video ID found in %q", args[0])
		}

		count, _ := cmd.Flags().GetInt("questions")

		cfg := resolveConfig(cmd)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return err
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			provider = llm.WithLogging(provider, os.Stderr)
		}

		lang, _ := cmd.Flags().GetString("lang")
		var opts []youtube.Option
		if lang != "" {
			opts = append(opts, youtube.WithLanguage(lang))
		}

		transcript, err := youtube.NewClient(opts...).Transcript(ctx, id)
		if err != nil {
			return err
		}

		generator := quizgen.New(provider, quizgen.DefaultConfig())
		quiz, err := generator.Generate(ctx, transcript, count)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(quiz, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("questions", "n", quizgen.DefaultQuestionCount, "Number of questions to generate")
}
