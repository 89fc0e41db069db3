// Package postgres implements the relational repositories on GORM.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/citysphere/citysphere-api/internal/core/domain"
)

// Connect opens the Postgres database and migrates the relational schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the auto-migration for all relational models. Split from
// Connect so tests can run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Location{},
		&domain.Review{},
		&domain.FootpathAssessment{},
		&domain.Filter{},
	); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}
