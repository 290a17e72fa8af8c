package service

import (
	"context"

	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
)

// Setting keys, mirroring the merchant panel configuration.
const (
	SettingServiceID       = "service_id"
	SettingAPIPassword     = "service_api_password"
	SettingIPNSignatureKey = "service_ipn_signature_key"
	SettingIPNCheckIP      = "ipn_check_ip"
)

// SettingsStore reads merchant configuration values.
type SettingsStore interface {
	Get(ctx context.Context, key, defaultValue string) (string, error)
}

// CredentialsService loads merchant credentials from the settings store.
// Values are read fresh on every call and never cached across calls, so a
// rotated IPN key or API password applies to the next notification.
type CredentialsService struct {
	Settings SettingsStore
}

func NewCredentialsService(settings SettingsStore) *CredentialsService {
	return &CredentialsService{Settings: settings}
}

func (s *CredentialsService) Load(ctx context.Context) (models.MerchantCredentials, error) {
	var creds models.MerchantCredentials
	var err error

	if creds.ServiceID, err = s.Settings.Get(ctx, SettingServiceID, ""); err != nil {
		return creds, err
	}
	if creds.BearerToken, err = s.Settings.Get(ctx, SettingAPIPassword, ""); err != nil {
		return creds, err
	}
	if creds.IPNSignatureKey, err = s.Settings.Get(ctx, SettingIPNSignatureKey, ""); err != nil {
		return creds, err
	}

	checkIP, err := s.Settings.Get(ctx, SettingIPNCheckIP, "0")
	if err != nil {
		return creds, err
	}
	creds.ValidateIP = checkIP == "1"

	return creds, nil
}

// APICredentials satisfies the SimPay client's credential source.
func (s *CredentialsService) APICredentials(ctx context.Context) (string, string, error) {
	creds, err := s.Load(ctx)
	if err != nil {
		return "", "", err
	}

	return creds.ServiceID, creds.BearerToken, nil
}
