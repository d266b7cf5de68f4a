package postgres

import (
	"log"

	"github.com/dalligo/delivery-service/internal/config"
	"github.com/dalligo/delivery-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.DeliveryConfig) *gorm.DB {
	dsn := cfg.DeliveryDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.CardModel{},
		&models.StoreModel{},
		&models.OrderModel{},
		&models.OrderProductModel{},
		&models.PaymentModel{},
		&models.ReviewModel{},
	)

	return db
}
