package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrdesk/hr-backend/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hr-service",
		Short:        "HR records backend",
		SilenceUsage: true,
		Long: `hr-service serves staff, section, place and employment records over HTTP.

Configuration is read from config/hr-service.yaml, a .env file and
HR_* environment variables, in increasing order of precedence.`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
