package postgres

import (
	"log"

	"github.com/finwatch/payments-analytics-service/internal/config"
	"github.com/finwatch/payments-analytics-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.AnalyticsConfig) *gorm.DB {
	dsn := cfg.AnalyticsDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.CustomerModel{}, &models.MerchantModel{}, &models.PaymentModel{}, &models.SettlementModel{})

	return db
}
