package storage

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sourav-18/realtor-platform-sourav-fullstack/config"
	"github.com/sourav-18/realtor-platform-sourav-fullstack/models"
)

// Connect opens the database described by the config and runs migrations.
// The handle is returned to the caller and threaded into the handlers; there
// is no package-level connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error connecting to db: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("database connected:", cfg.DB.Name)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Owner{},
		&models.Customer{},
		&models.Property{},
	)
}
