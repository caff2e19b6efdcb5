package migration

import (
	"foodloop/entities"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.GroceryItem{}); err != nil {
		log.Errorf("Error migrating groceries table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UsedItem{}); err != nil {
		log.Errorf("Error migrating used items table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}, &entities.DonationItem{}); err != nil {
		log.Errorf("Error migrating donations tables: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
