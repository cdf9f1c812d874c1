package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete <video>...",
	Short:   "Remove videos from the cache",
	Args:    cobra.MinimumNArgs(1),
	Example: "  ytscribe delete dQw4w9WgXcQ",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, closeStore, err := newCachedClient()
		if err != nil {
			return err
		}
		defer closeStore()

		for _, id := range args {
			if err := c.DeleteVideo(cmd.Context(), id); err != nil {
				return err
			}
		}
		return nil
	},
}
