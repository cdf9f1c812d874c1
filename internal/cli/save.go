package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().Bool("peek", false, "Fetch without writing to the cache")
}

var saveCmd = &cobra.Command{
	Use:   "save <video>...",
	Short: "Fetch videos with transcripts into the local cache",
	Long: `Fetch each video's metadata and transcript and write the record to the
cache database. Already-cached videos are skipped. With several ids the
batch continues past individual failures.`,
	Args:    cobra.MinimumNArgs(1),
	Example: "  ytscribe save dQw4w9WgXcQ abcdefghijk",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, closeStore, err := newCachedClient()
		if err != nil {
			return err
		}
		defer closeStore()

		peek, _ := cmd.Flags().GetBool("peek")
		if peek || len(args) == 1 {
			var record any
			if peek {
				record, err = c.PeekVideo(cmd.Context(), args[0])
			} else {
				record, err = c.SaveVideo(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(record)
		}

		results, err := c.SaveVideos(cmd.Context(), args)
		if err != nil {
			return err
		}
		type entry struct {
			ID     string `json:"id"`
			Status string `json:"status,omitempty"`
			Error  string `json:"error,omitempty"`
		}
		out := make([]entry, 0, len(results))
		for _, r := range results {
			e := entry{ID: r.ID}
			if r.Err != nil {
				e.Error = r.Err.Error()
			} else {
				e.Status = string(r.Record.Status)
			}
			out = append(out, e)
		}
		return printJSON(out)
	},
}
