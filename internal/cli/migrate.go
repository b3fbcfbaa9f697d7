package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hrdesk/hr-backend/internal/hr/schema"
	"github.com/hrdesk/hr-backend/pkg/config"
	"github.com/hrdesk/hr-backend/pkg/database"
	"github.com/hrdesk/hr-backend/pkg/logger"
)

// MigrateCmd returns the migrate command
func MigrateCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the HR tables",
		Long: `Apply the HR schema to the configured database.

With --seed the sample organisation (sections, places, staff and
employment history) is loaded as well. Both steps are idempotent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithValidation(ServiceName)
			if err != nil {
				return err
			}

			log := logger.New(ServiceName, cfg.Server.Environment)
			db, err := database.New(&cfg.Database, log)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			return runMigrate(cmd, db, seed)
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "load sample data after creating the schema")

	return cmd
}

func runMigrate(cmd *cobra.Command, db *database.DB, seed bool) error {
	out := cmd.OutOrStdout()

	if err := schema.Apply(cmd.Context(), db, seed); err != nil {
		printStatus(out, color.FgRed, "FAILED", err.Error())
		return err
	}

	printStatus(out, color.FgGreen, "OK", "schema applied")
	if seed {
		printStatus(out, color.FgGreen, "OK", "sample data loaded")
	}
	return nil
}

func printStatus(w io.Writer, attr color.Attribute, label, msg string) {
	fmt.Fprintf(w, "%s %s\n", color.New(attr).Sprintf("%-6s", label), msg)
}
