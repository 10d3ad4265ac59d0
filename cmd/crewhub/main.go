package main

import (
	"os"

	"github.com/spf13/cobra"

	"crewhub/internal/interfaces/cli/migrate"
	"crewhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crewhub",
		Short: "CrewHub workforce management backend",
		Long:  `CrewHub is a multi-tenant workforce management backend with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
