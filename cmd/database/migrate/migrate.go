package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"sustainable-bao-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryItem{}); err != nil {
		log.Fatalf("Error migrating grocery item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WasteSnapshot{}); err != nil {
		log.Fatalf("Error migrating waste snapshot database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
