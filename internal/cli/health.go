package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Print the server's health descriptor",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newClient()
		if err != nil {
			return err
		}
		status, err := api.Health(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "status:      %s\n", status.Status)
		fmt.Fprintf(out, "database:    %s\n", status.Database)
		fmt.Fprintf(out, "environment: %s\n", status.Environment)
		fmt.Fprintf(out, "timestamp:   %s\n", status.Timestamp)
		if status.Status != "OK" {
			return fmt.Errorf("server degraded: %s", status.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
