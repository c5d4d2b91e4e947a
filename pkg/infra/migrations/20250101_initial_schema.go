package migrations

import (
	"github.com/NeuralTrust/TaskAPI/pkg/infra/database"
	"gorm.io/gorm"
)

// Tables: users, api_keys, tasks
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250101_initial_schema",
		Name: "Create core tables: users, api_keys, tasks",

		Up: func(db *gorm.DB) error {
			statements := []string{
				`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
				`CREATE TABLE IF NOT EXISTS public.users (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id    TEXT NOT NULL UNIQUE,
					name       VARCHAR(200) NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE TABLE IF NOT EXISTS public.api_keys (
					id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					key        TEXT NOT NULL UNIQUE,
					user_id    TEXT NOT NULL REFERENCES public.users(user_id) ON DELETE CASCADE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE INDEX IF NOT EXISTS idx_api_keys_user_id ON public.api_keys (user_id);`,
				`CREATE TABLE IF NOT EXISTS public.tasks (
					id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					user_id     TEXT NOT NULL,
					title       VARCHAR(200) NOT NULL,
					description VARCHAR(1000),
					done        BOOLEAN NOT NULL DEFAULT FALSE,
					created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON public.tasks (user_id);`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_done ON public.tasks (done);`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_user_id_done ON public.tasks (user_id, done);`,
				`CREATE INDEX IF NOT EXISTS idx_tasks_user_id_created_at ON public.tasks (user_id, created_at DESC);`,
			}
			for _, stmt := range statements {
				if err := db.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},

		Down: func(db *gorm.DB) error {
			for _, table := range []string{"public.tasks", "public.api_keys", "public.users"} {
				if err := db.Exec(`DROP TABLE IF EXISTS ` + table + `;`).Error; err != nil {
					return err
				}
			}
			return nil
		},
	})
}
