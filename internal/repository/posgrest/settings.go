package posgrest

import (
	"context"
	"errors"

	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"gorm.io/gorm"
)

// SettingsRepository is the GORM-backed merchant settings store.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{
		db,
	}
}

// Get returns the value stored for key, or defaultValue when the key does
// not exist.
func (r *SettingsRepository) Get(ctx context.Context, key, defaultValue string) (string, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultValue, nil
		}
		return defaultValue, err
	}
	return setting.Value, nil
}

// Set upserts a setting value.
func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).Save(&setting).Error
}
