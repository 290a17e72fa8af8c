package database

import (
	"log"

	"github.com/SimPaypl/simpay-payment-gateway/config"
	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"gorm.io/gorm"
)

// SeedSettings populates the merchant settings table from the environment on
// first boot. Existing rows win, so values edited at runtime (for example a
// rotated IPN key) survive restarts.
func SeedSettings(db *gorm.DB, cfg *config.Config) error {
	checkIP := "0"
	if cfg.SimPay.IPNCheckIP {
		checkIP = "1"
	}

	settings := []models.Setting{
		{Key: "service_id", Value: cfg.SimPay.ServiceID},
		{Key: "service_api_password", Value: cfg.SimPay.APIPassword},
		{Key: "service_ipn_signature_key", Value: cfg.SimPay.IPNSignatureKey},
		{Key: "ipn_check_ip", Value: checkIP},
	}

	for _, setting := range settings {
		result := db.Where(models.Setting{Key: setting.Key}).FirstOrCreate(&setting)
		if result.Error != nil {
			return result.Error
		}
	}

	log.Println("Merchant settings seeded successfully")
	return nil
}
