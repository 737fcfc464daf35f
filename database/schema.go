package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"leadcapture/database/entities"
)

// InitializeSchema creates the leads table and its email unique index when absent.
// Safe to run on every start.
func InitializeSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&entities.Lead{}); err != nil {
		return fmt.Errorf("migrate leads: %w", err)
	}
	return nil
}
