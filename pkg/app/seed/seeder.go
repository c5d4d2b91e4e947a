package seed

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/domain/apikey"
	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/NeuralTrust/TaskAPI/pkg/domain/user"
	"github.com/sirupsen/logrus"
)

// Account is one fixed demo user with its well-known API key.
type Account struct {
	Key    string
	UserID string
	Name   string
}

var Accounts = []Account{
	{Key: "8b4fae2b91c44b6d9d2e1b0d97e3a4d1", UserID: "7c1cc1d7-34c2-4f0e-9c2f-3fdab0e2f241", Name: "Aurora Labs"},
	{Key: "e8c15e9917c64df3afeafbb56b32c987", UserID: "4a97fb23-36c4-4642-84fa-cb11020b7ee8", Name: "Vertex Cloud"},
	{Key: "ab77efac9320467bb84c64af0e0e7951", UserID: "f5e95e71-d683-48ea-a3c8-296cdcb22cc1", Name: "Quantum API"},
}

type Seeder struct {
	logger *logrus.Logger
	users  user.Repository
	keys   apikey.Repository
	tasks  task.Repository
}

func NewSeeder(logger *logrus.Logger, users user.Repository, keys apikey.Repository, tasks task.Repository) *Seeder {
	return &Seeder{
		logger: logger,
		users:  users,
		keys:   keys,
		tasks:  tasks,
	}
}

// Run wipes users, api keys and tasks and inserts the demo accounts with one
// sample task each.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.tasks.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if err := s.keys.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear api keys: %w", err)
	}
	if err := s.users.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear users: %w", err)
	}

	for i, account := range Accounts {
		if err := s.users.Create(ctx, &user.User{UserID: account.UserID, Name: account.Name}); err != nil {
			return fmt.Errorf("seed user %s: %w", account.Name, err)
		}
		if err := s.keys.Create(ctx, &apikey.APIKey{Key: account.Key, UserID: account.UserID}); err != nil {
			return fmt.Errorf("seed api key for %s: %w", account.Name, err)
		}
		description := fmt.Sprintf("This is a sample task for %s.", account.Name)
		sample := &task.Task{
			UserID:      account.UserID,
			Title:       fmt.Sprintf("Task %d for %s", i+1, account.Name),
			Description: &description,
		}
		if err := s.tasks.Create(ctx, sample); err != nil {
			return fmt.Errorf("seed task for %s: %w", account.Name, err)
		}
	}

	s.logger.WithField("accounts", len(Accounts)).Info("seed data inserted")
	return nil
}
