package cli

import (
	"github.com/spf13/cobra"

	"github.com/mediashelf/mediashelf/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the collection in an interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newClient()
		if err != nil {
			return err
		}
		return tui.Run(api)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
