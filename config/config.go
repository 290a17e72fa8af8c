package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	SimPay
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"orders.payment_pending,orders.paid,orders.refunded"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// SimPay holds the merchant credentials used to seed the settings store on
// first boot. At runtime credentials are read from the settings table on
// every inbound call, so a rotated key takes effect without a restart.
type SimPay struct {
	APIBaseURL      string `env:"SIMPAY_API_BASE_URL" envDefault:"https://api.simpay.pl"`
	ServiceID       string `env:"SIMPAY_SERVICE_ID"`
	APIPassword     string `env:"SIMPAY_API_PASSWORD"`
	IPNSignatureKey string `env:"SIMPAY_IPN_SIGNATURE_KEY"`
	IPNCheckIP      bool   `env:"SIMPAY_IPN_CHECK_IP" envDefault:"false"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
