package cli

import (
	"github.com/spf13/cobra"

	"github.com/famomatic/ytscribe/client"
)

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("continue", "", "Continuation token from a previous page")
	listCmd.Flags().Int("pages", 1, "Number of pages to fetch")
}

var listCmd = &cobra.Command{
	Use:   "list <channel|playlist>",
	Short: "List a channel's uploads or a playlist's videos",
	Long: `List videos for a channel (id, URL, or @handle) or a playlist (id or URL).
Each page carries a continuation token; pass it back with --continue or
fetch several pages at once with --pages.`,
	Args:    cobra.ExactArgs(1),
	Example: "  ytscribe list @somecreator --pages 3",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("continue")
		pages, _ := cmd.Flags().GetInt("pages")
		if pages < 1 {
			pages = 1
		}

		c := newClient()
		out := struct {
			Videos       []client.VideoRecord `json:"videos"`
			Continuation string               `json:"continuation,omitempty"`
		}{}
		for page := 0; page < pages; page++ {
			listing, err := c.ListVideos(cmd.Context(), args[0], token)
			if err != nil {
				return err
			}
			out.Videos = append(out.Videos, listing.Videos...)
			token = listing.Continuation
			if token == "" {
				break
			}
		}
		out.Continuation = token
		return printJSON(out)
	},
}
