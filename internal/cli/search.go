package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search for videos",
	Args:    cobra.MinimumNArgs(1),
	Example: "  ytscribe search rick astley",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		videos, err := c.SearchVideos(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(videos)
	},
}
