// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cropplan/entities"
)

// Open connects to the sqlite file at path and migrates every table.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Field{},
		&entities.Crop{},
		&entities.FieldCropHistory{},
		&entities.MarketPrice{},
		&entities.Plan{},
		&entities.ReplanLog{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// OpenSQLite is Open for entrypoints: any failure is fatal.
func OpenSQLite(path string) *gorm.DB {
	db, err := Open(path)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return db
}

// OpenMemory opens a private in-memory database, mostly for tests. Databases
// with the same name share state.
func OpenMemory(name string) (*gorm.DB, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
