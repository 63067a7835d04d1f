package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/SscSPs/finstatements/internal/repositories/database/pgsql"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(false)
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL must be set to run migrations")
			}
			if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Database is up to date")
			return nil
		},
	}
}
