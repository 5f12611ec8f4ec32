package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/farellandr/gigbook/internal/models"
	"gorm.io/gorm"
)

// Migration represents a database migration
type Migration struct {
	Version     int
	Description string
	Up          func(*gorm.DB) error
	Down        func(*gorm.DB) error
}

// migrationHistory tracks applied migrations
type migrationHistory struct {
	ID          uint   `gorm:"primaryKey"`
	Version     int    `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	AppliedAt   time.Time
}

func (migrationHistory) TableName() string {
	return "schema_migrations"
}

// MigrationStatus represents the status of a migration
type MigrationStatus struct {
	Version     int
	Description string
	Applied     bool
}

type Migrator struct {
	db         *gorm.DB
	migrations []Migration
}

func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{
		db:         db,
		migrations: allMigrations(),
	}
}

func (m *Migrator) applied(ctx context.Context) (map[int]bool, error) {
	if err := m.db.WithContext(ctx).AutoMigrate(&migrationHistory{}); err != nil {
		return nil, fmt.Errorf("failed to create migration history table: %w", err)
	}

	var history []migrationHistory
	if err := m.db.WithContext(ctx).Find(&history).Error; err != nil {
		return nil, fmt.Errorf("failed to query migration history: %w", err)
	}

	versions := make(map[int]bool, len(history))
	for _, h := range history {
		versions[h.Version] = true
	}
	return versions, nil
}

// Migrate runs all pending migrations and returns how many were applied.
func (m *Migrator) Migrate(ctx context.Context) (int, error) {
	applied, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, migration := range m.migrations {
		if applied[migration.Version] {
			continue
		}

		if err := m.runMigration(ctx, migration); err != nil {
			return count, fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Description, err)
		}
		count++
	}

	return count, nil
}

// Rollback rolls back the last applied migration
func (m *Migrator) Rollback(ctx context.Context) (*MigrationStatus, error) {
	if _, err := m.applied(ctx); err != nil {
		return nil, err
	}

	var last migrationHistory
	if err := m.db.WithContext(ctx).Order("version DESC").First(&last).Error; err != nil {
		return nil, fmt.Errorf("no migrations to rollback: %w", err)
	}

	var migration *Migration
	for i := range m.migrations {
		if m.migrations[i].Version == last.Version {
			migration = &m.migrations[i]
			break
		}
	}
	if migration == nil {
		return nil, fmt.Errorf("migration %d not found", last.Version)
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := migration.Down(tx); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		if err := tx.Delete(&last).Error; err != nil {
			return fmt.Errorf("failed to update migration history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &MigrationStatus{Version: migration.Version, Description: migration.Description}, nil
}

func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	var statuses []MigrationStatus
	for _, migration := range m.migrations {
		statuses = append(statuses, MigrationStatus{
			Version:     migration.Version,
			Description: migration.Description,
			Applied:     applied[migration.Version],
		})
	}

	return statuses, nil
}

func (m *Migrator) runMigration(ctx context.Context, migration Migration) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := migration.Up(tx); err != nil {
			return err
		}

		history := migrationHistory{
			Version:     migration.Version,
			Description: migration.Description,
			AppliedAt:   time.Now().UTC(),
		}
		return tx.Create(&history).Error
	})
}

func allMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create venues, artists, genres and shows",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(
					&models.Genre{},
					&models.Venue{},
					&models.Artist{},
					&models.Show{},
				)
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(
					&models.Show{},
					"artist_genres",
					"venue_genres",
					&models.Artist{},
					&models.Venue{},
					&models.Genre{},
				)
			},
		},
	}
}
