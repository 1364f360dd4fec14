/*
Package main is the entry point for the meetgate token gateway.

The serve command loads configuration, initializes the global logging system, sets up the
HTTP server and gracefully handles operating system interrupt signals (SIGINT, SIGTERM).
The issue command signs a meeting token locally with the same configuration, which is handy
when testing a conferencing deployment without the classroom front-end.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meetgate",
	Short: "Meeting token gateway for the virtual classroom",
	Long: `meetgate issues signed room tokens for an embedded conferencing widget.
Teachers join as moderators. Registered users may authenticate with email and password.

Configuration is read from environment variables (PORT, JWT_SECRET, MEET_DOMAIN, ...).`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}
