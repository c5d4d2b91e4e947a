package main

import (
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/app/seed"
	"github.com/NeuralTrust/TaskAPI/pkg/infra/repository"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all users, api keys and tasks with the demo fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, db, cleanup, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			seeder := seed.NewSeeder(
				logger,
				repository.NewUserRepository(db.DB),
				repository.NewApiKeyRepository(db.DB),
				repository.NewTaskRepository(db.DB),
			)
			if err := seeder.Run(cmd.Context()); err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}
			for _, account := range seed.Accounts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", account.Name, account.Key)
			}
			return nil
		},
	}
}
