// Package dbtest backs database.C with a private in-memory SQLite database
// for the duration of a test.
package dbtest

import (
	"fmt"
	"testing"

	"git.solsynth.dev/hypernet/journal/pkg/internal/cache"
	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Setup(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access test database: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	if err := database.RunMigration(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := cache.NewStore(); err != nil {
		t.Fatalf("Failed to initialize cache: %v", err)
	}

	previous := database.C
	database.C = db
	t.Cleanup(func() {
		database.C = previous
		_ = sqlDB.Close()
	})

	return db
}
