package handlers

import (
	"context"
	"net/http"

	"github.com/SimPaypl/simpay-payment-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SettingsWriter persists merchant configuration values.
type SettingsWriter interface {
	Set(ctx context.Context, key, value string) error
}

// SettingsHandler is the admin surface for rotating merchant credentials.
// Updates take effect on the next inbound call because credentials are read
// fresh per notification.
type SettingsHandler struct {
	Store SettingsWriter
}

func NewSettingsHandler(store SettingsWriter) *SettingsHandler {
	return &SettingsHandler{Store: store}
}

type settingsRequest struct {
	ServiceID       *string `json:"service_id"`
	APIPassword     *string `json:"api_password"`
	IPNSignatureKey *string `json:"ipn_signature_key"`
	IPNCheckIP      *bool   `json:"ipn_check_ip"`
}

// PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updates := map[string]*string{
		service.SettingServiceID:       req.ServiceID,
		service.SettingAPIPassword:     req.APIPassword,
		service.SettingIPNSignatureKey: req.IPNSignatureKey,
	}
	if req.IPNCheckIP != nil {
		checkIP := "0"
		if *req.IPNCheckIP {
			checkIP = "1"
		}
		updates[service.SettingIPNCheckIP] = &checkIP
	}

	for key, value := range updates {
		if value == nil {
			continue
		}
		if err := h.Store.Set(c.Request.Context(), key, *value); err != nil {
			logrus.Errorf("Error updating setting %s: %s", key, err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
