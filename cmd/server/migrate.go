package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"superheroes-api/internal/infrastructure/database"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(
		newMigrateSubCmd("up", "Apply all pending migrations", func(cmd *cobra.Command, mg *database.Migrator) error {
			if err := mg.Up(); err != nil {
				return err
			}
			return printVersion(cmd, mg)
		}),
		newMigrateSubCmd("down", "Roll back the most recent migration", func(cmd *cobra.Command, mg *database.Migrator) error {
			if err := mg.Down(); err != nil {
				return err
			}
			return printVersion(cmd, mg)
		}),
		newMigrateSubCmd("version", "Print the current schema version", printVersion),
	)

	return migrateCmd
}

func newMigrateSubCmd(use, short string, run func(*cobra.Command, *database.Migrator) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd)

			s, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			mg, err := newMigrator(cfg, s)
			if err != nil {
				return err
			}
			defer mg.Close()

			return run(cmd, mg)
		},
	}
}

func printVersion(cmd *cobra.Command, mg *database.Migrator) error {
	version, dirty, ok, err := mg.Version()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
		return nil
	}
	if dirty {
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty)\n", version)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version %d\n", version)
	return nil
}
