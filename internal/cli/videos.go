package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(videosCmd)
	videosCmd.Flags().Bool("transcripts", false, "Include transcript text in the output")
}

var videosCmd = &cobra.Command{
	Use:     "videos",
	Short:   "List cached videos",
	Args:    cobra.NoArgs,
	Example: "  ytscribe videos",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, closeStore, err := newCachedClient()
		if err != nil {
			return err
		}
		defer closeStore()

		records, err := c.SavedVideos(cmd.Context())
		if err != nil {
			return err
		}
		if withText, _ := cmd.Flags().GetBool("transcripts"); !withText {
			for i := range records {
				records[i].Transcript = ""
			}
		}
		return printJSON(records)
	},
}
