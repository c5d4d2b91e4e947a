package database

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

type Migration struct {
	ID   string
	Name string
	Up   func(db *gorm.DB) error
	Down func(db *gorm.DB) error
}

var migrationsRegistry = make(map[string]Migration)

// RegisterMigration is called from init functions in the migrations package.
// Duplicate IDs panic.
func RegisterMigration(m Migration) {
	if _, exists := migrationsRegistry[m.ID]; exists {
		panic(fmt.Sprintf("migration with ID %s already registered", m.ID))
	}
	migrationsRegistry[m.ID] = m
}

// Registered returns the registered migrations ordered by ID.
func Registered() []Migration {
	ids := make([]string, 0, len(migrationsRegistry))
	for id := range migrationsRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Migration, 0, len(ids))
	for _, id := range ids {
		out = append(out, migrationsRegistry[id])
	}
	return out
}

type MigrationsManager struct {
	db *gorm.DB
}

func NewMigrationsManager(db *gorm.DB) *MigrationsManager {
	return &MigrationsManager{db: db}
}

func (m *MigrationsManager) ensureMigrationsTable() error {
	const createTableSQL = `
CREATE TABLE IF NOT EXISTS public.migration_version (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`
	return m.db.Exec(createTableSQL).Error
}

func (m *MigrationsManager) appliedMigrations() (map[string]struct{}, error) {
	var ids []string
	if err := m.db.Raw("SELECT id FROM public.migration_version").Scan(&ids).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		applied[id] = struct{}{}
	}
	return applied, nil
}

// ApplyPending runs each unapplied migration in its own transaction together
// with its migration_version row.
func (m *MigrationsManager) ApplyPending() error {
	if err := m.ensureMigrationsTable(); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}

	applied, err := m.appliedMigrations()
	if err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	for _, mig := range Registered() {
		if _, ok := applied[mig.ID]; ok {
			continue
		}
		if mig.Up == nil {
			return fmt.Errorf("migration %s has no Up function", mig.ID)
		}
		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Exec(
				"INSERT INTO public.migration_version (id, name, applied_at) VALUES (?, ?, ?)",
				mig.ID, mig.Name, time.Now(),
			).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s (%s): %w", mig.ID, mig.Name, err)
		}
	}
	return nil
}
