package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().String("client", "", "Impersonation profile to query with (web, android)")
}

var infoCmd = &cobra.Command{
	Use:     "info <video>",
	Short:   "Print a video's metadata",
	Args:    cobra.ExactArgs(1),
	Example: "  ytscribe info dQw4w9WgXcQ",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, _ := cmd.Flags().GetString("client")
		c := newClient()
		record, err := c.FetchVideoDetailAs(cmd.Context(), args[0], profile)
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}
