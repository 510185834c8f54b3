// Package cli implements the mediactl command tree.
package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mediashelf/mediashelf/internal/client"
)

var (
	apiBaseURL     string
	requestTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "mediactl",
	Short: "Terminal client for the Media Shelf API",
	Long: `mediactl talks to a running Media Shelf server.

Examples:
  mediactl browse
  mediactl seed --api http://localhost:5000/api
  mediactl health
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "http://localhost:5000/api", "base URL of the media API")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 10*time.Second, "request timeout")
}

func newClient() (*client.Client, error) {
	return client.New(apiBaseURL, requestTimeout, zap.NewNop().Sugar())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
