package main

import (
	"fmt"
	"os"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/telemetry"

	"github.com/spf13/cobra"
)

// catalog migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the products table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DBDriver == config.DriverMemory {
			return fmt.Errorf("migrate needs a SQL database, DB_DRIVER is %q", cfg.DBDriver)
		}

		_, db, err := openRepository(cfg, true)
		if err != nil {
			return err
		}
		defer database.Close(db)

		fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s database\n", cfg.DBDriver)
		return nil
	},
}

// catalog seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample products",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DBDriver == config.DriverMemory {
			return fmt.Errorf("seed needs a SQL database, DB_DRIVER is %q", cfg.DBDriver)
		}

		repo, db, err := openRepository(cfg, true)
		if err != nil {
			return err
		}
		defer database.Close(db)

		inserted, err := database.Seed(cmd.Context(), repo, telemetry.NewLogger(cfg, os.Stderr))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d of %d products\n", inserted, len(database.SampleProducts))
		return nil
	},
}
