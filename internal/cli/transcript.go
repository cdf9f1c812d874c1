package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(transcriptCmd)
}

var transcriptCmd = &cobra.Command{
	Use:     "transcript <video>",
	Short:   "Print a video's transcript",
	Args:    cobra.ExactArgs(1),
	Example: "  ytscribe transcript https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		text, err := c.FetchTranscript(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}
