package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationsDir = "migrations"

// migrate's mysql driver executes a migration file as a single query
func migrationDSN(dsn string) string {
	if strings.Contains(dsn, "multiStatements=") {
		return "mysql://" + dsn
	}
	if strings.Contains(dsn, "?") {
		return "mysql://" + dsn + "&multiStatements=true"
	}
	return "mysql://" + dsn + "?multiStatements=true"
}

func newMigrate(rootDir string, dsn string) (*migrate.Migrate, error) {
	source := "file://" + path.Join(rootDir, migrationsDir)
	return migrate.New(source, migrationDSN(dsn))
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the cobra command tree for migrating from the current directory.
// The drivers must be imported by the main package.
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrate(".", dsn)
				if err != nil {
					return err
				}
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "roll back N migrations (default 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) > 0 {
					n, err := strconv.Atoi(args[0])
					if err != nil {
						return fmt.Errorf("invalid steps: %w", err)
					}
					steps = n
				}

				m, err := newMigrate(".", dsn)
				if err != nil {
					return err
				}
				return ignoreNoChange(m.Steps(-steps))
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "set version without running migrations, to recover from a dirty state",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version: %w", err)
				}

				m, err := newMigrate(".", dsn)
				if err != nil {
					return err
				}
				return m.Force(version)
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting drops everything then migrates up, panics on error
func MigrateUpForTesting(rootDir string, dsn string) {
	m, err := newMigrate(rootDir, dsn)
	if err != nil {
		panic(err)
	}

	err = ignoreNoChange(m.Drop())
	if err != nil {
		panic(err)
	}

	m, err = newMigrate(rootDir, dsn)
	if err != nil {
		panic(err)
	}

	err = ignoreNoChange(m.Up())
	if err != nil {
		panic(err)
	}
}
