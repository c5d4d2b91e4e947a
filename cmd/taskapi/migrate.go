package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, db, cleanup, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}
