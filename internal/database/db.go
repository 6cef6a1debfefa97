package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recipecost-backend/internal/config"
	"recipecost-backend/internal/models"
)

var DB *gorm.DB

func Init(cfg *config.Config) *gorm.DB {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connection established. Migration complete.")
	return DB
}

// Migrate is shared with the test suites, which run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Recipe{},
		&models.RecipePart{},
		&models.RecipeLabor{},
		&models.AuditLog{},
	)
}
