package cli

import (
	"fmt"

	"auditpro/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	stepsFlagName        = "steps"
	allFlagName          = "all"
	migrateUpSuccess     = "Migrations applied successfully!"
	migrateDownAllDone   = "Successfully rolled back all migrations"
	migrateDownTemplate  = "Successfully rolled back %d migration(s)\n"
	migrateVersionFormat = "version=%d dirty=%t\n"
)

func newMigrateCommand(deps Dependencies) *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(deps, func(m *database.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), migrateUpSuccess)
				return nil
			})
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations (one step by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt(stepsFlagName)
			all, _ := cmd.Flags().GetBool(allFlagName)
			if !all && steps < 1 {
				return fmt.Errorf("--%s must be at least 1", stepsFlagName)
			}
			return withMigrator(deps, func(m *database.Migrator) error {
				if all {
					if err := m.Down(0); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), migrateDownAllDone)
					return nil
				}
				if err := m.Down(steps); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), migrateDownTemplate, steps)
				return nil
			})
		},
	}
	down.Flags().Int(stepsFlagName, 1, "Number of migrations to roll back")
	down.Flags().Bool(allFlagName, false, "Roll back every migration")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(deps, func(m *database.Migrator) error {
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), migrateVersionFormat, v, dirty)
				return nil
			})
		},
	}

	command.AddCommand(up, down, version)
	return command
}

func withMigrator(deps Dependencies, fn func(*database.Migrator) error) error {
	cfg, log, err := loadConfig(deps)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		return err
	}
	m, err := database.NewMigrator(db.DB, cfg.Migrations.Table)
	if err != nil {
		db.Close()
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			log.Warn("Failed to close migrator", zap.Error(closeErr))
		}
	}()
	return fn(m)
}
