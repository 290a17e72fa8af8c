package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/SimPaypl/simpay-payment-gateway/config"
	"github.com/SimPaypl/simpay-payment-gateway/internal/database"
	"github.com/SimPaypl/simpay-payment-gateway/internal/handlers"
	"github.com/SimPaypl/simpay-payment-gateway/internal/ipallowlist"
	"github.com/SimPaypl/simpay-payment-gateway/internal/ipn"
	"github.com/SimPaypl/simpay-payment-gateway/internal/metrics"
	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"github.com/SimPaypl/simpay-payment-gateway/internal/publisher"
	"github.com/SimPaypl/simpay-payment-gateway/internal/repository/posgrest"
	"github.com/SimPaypl/simpay-payment-gateway/internal/service"
	"github.com/SimPaypl/simpay-payment-gateway/internal/simpay"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

// Initialize wires every dependency explicitly: store → credentials →
// SimPay client → services → handlers. Nothing is a package-level
// singleton, so the reconciliation logic stays testable in isolation.
func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Order{},
		&models.Refund{},
		&models.OrderNote{},
		&models.Setting{},
	); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if err := database.SeedSettings(db, cfg); err != nil {
		log.Fatalf("failed to seed settings: %v", err)
	}

	orderRepo := posgrest.NewOrderRepository(db)
	settingsRepo := posgrest.NewSettingsRepository(db)
	credentials := service.NewCredentialsService(settingsRepo)

	httpClient := simpay.NewHTTPClient()
	apiClient := simpay.NewClient(httpClient, cfg.SimPay.APIBaseURL, credentials)
	allowlist := ipallowlist.NewService(apiClient)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	kafkaPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	orderService := service.NewOrderService(orderRepo, kafkaPublisher)
	paymentsService := service.NewPaymentsService(apiClient, orderRepo, kafkaPublisher)
	dispatcher := ipn.NewDispatcher(orderService)

	ipnHandler := handlers.NewIPNHandler(credentials, allowlist, dispatcher)
	checkoutHandler := handlers.NewCheckoutHandler(paymentsService)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)

	metrics.RegisterMetrics()

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(ipnHandler, checkoutHandler, settingsHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
