package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SimPaypl/simpay-payment-gateway/internal/handlers"
	"github.com/SimPaypl/simpay-payment-gateway/internal/handlers/mocks"
	"github.com/SimPaypl/simpay-payment-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSettingsRouter(store *mocks.MockSettingsWriter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/settings", handlers.NewSettingsHandler(store).Update)
	return router
}

func putSettings(router *gin.Engine, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestSettingsUpdate_RotatesSignatureKey(t *testing.T) {
	store := mocks.NewMockSettingsWriter(t)
	router := newSettingsRouter(store)

	store.EXPECT().
		Set(mock.Anything, service.SettingIPNSignatureKey, "new-key").
		Return(nil).
		Once()

	recorder := putSettings(router, `{"ipn_signature_key": "new-key"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	store.AssertNotCalled(t, "Set", mock.Anything, service.SettingServiceID, mock.Anything)
}

func TestSettingsUpdate_CheckIPFlag(t *testing.T) {
	store := mocks.NewMockSettingsWriter(t)
	router := newSettingsRouter(store)

	store.EXPECT().
		Set(mock.Anything, service.SettingIPNCheckIP, "1").
		Return(nil).
		Once()

	recorder := putSettings(router, `{"ipn_check_ip": true}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSettingsUpdate_InvalidBody(t *testing.T) {
	store := mocks.NewMockSettingsWriter(t)
	router := newSettingsRouter(store)

	recorder := putSettings(router, `{"service_id":`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettingsUpdate_StoreError(t *testing.T) {
	store := mocks.NewMockSettingsWriter(t)
	router := newSettingsRouter(store)

	store.EXPECT().
		Set(mock.Anything, service.SettingServiceID, "srv-2").
		Return(errors.New("database connection failed")).
		Once()

	recorder := putSettings(router, `{"service_id": "srv-2"}`)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
