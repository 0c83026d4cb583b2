package initializers

import (
	"fmt"
	"log"

	"github.com/sehatku/sehatku-api/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Article{},
		&models.Doctor{},
		&models.Webinar{},
		&models.Partner{},
	)
	if err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
