package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"autobloggerx/internal/config"
	"autobloggerx/internal/database"
)

func newMigrateCommand(a *app) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the website_data schema in DATABASE_URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.migrate(cmd.Context(), status)
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "print the applied schema version without migrating")
	return cmd
}

func (a *app) migrate(ctx context.Context, status bool) error {
	if a.cfg.DatabaseURL == "" {
		return &config.MissingError{Vars: []string{"DATABASE_URL"}}
	}

	db, err := database.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if !status {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	version, err := database.Version(ctx, db)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "schema version %d\n", version)
	return nil
}
