package main

import (
	"os"

	"github.com/spf13/cobra"

	"certdesk/internal/interfaces/cli/migrate"
	"certdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "certdesk",
		Short: "Certdesk - certification task tracking service",
		Long:  `Certdesk tracks certification requests against regional daily capacity, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
