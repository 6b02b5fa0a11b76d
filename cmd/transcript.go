package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tubequiz/internal/youtube"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript <url>",
	Short: "Print the caption transcript for a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := youtube.ExtractVideoID(args[0])
		if id == "" {
			return fmt.Errorf("no video ID found in %q", args[0])
		}

		lang, _ := cmd.Flags().GetString("lang")
		var opts []youtube.Option
		if lang != "" {
			opts = append(opts, youtube.WithLanguage(lang))
		}

		transcript, err := youtube.NewClient(opts...).Transcript(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Println(transcript)
		return nil
	},
}
