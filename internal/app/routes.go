package app

import (
	"net/http"

	"github.com/SimPaypl/simpay-payment-gateway/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(ipnHandler *handlers.IPNHandler, checkoutHandler *handlers.CheckoutHandler, settingsHandler *handlers.SettingsHandler) {
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ipnGroup := a.Router.Group("/ipn")
	ipnGroup.POST("/v2", ipnHandler.Handle)

	a.Router.POST("/checkout", checkoutHandler.CreateTransaction)
	a.Router.PUT("/settings", settingsHandler.Update)
}
