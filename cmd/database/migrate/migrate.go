package migration

import (
	"fmt"
	"log"

	"github.com/doyoonear/motsulmoo/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.PurchaseReceipt{}); err != nil {
		log.Fatalf("Error migrating purchase receipt database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeItem{}); err != nil {
		log.Fatalf("Error migrating fridge item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeVariant{}); err != nil {
		log.Fatalf("Error migrating recipe variant database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
