package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:     "resolve <channel>",
	Short:   "Resolve a channel query to its canonical ids",
	Args:    cobra.ExactArgs(1),
	Example: "  ytscribe resolve @somecreator",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		ref, err := c.ResolveChannel(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(ref)
	},
}
