package config

import (
	"os"
	"strings"
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
	Provider
	Pipeline
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
	Brokers              string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PaymentConsumerGroup string `env:"KAFKA_PAYMENT_GROUP_ID" envDefault:"payment-pipeline"`
	PublishTopics        string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.processed,payments.dlq"`
	SubscriberTopics     string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"payments.created"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Provider configures the external payment provider boundary: where it
// lives, which logical service submits to it, and which of its declared
// accounts this deployment is allowed to use.
type Provider struct {
	HostPort        string `env:"PROVIDER_HOST_PORT" envDefault:"localhost:1234"`
	ServiceName     string `env:"PROVIDER_SERVICE_NAME" envDefault:"onlineStore"`
	AllowedAccounts string `env:"PROVIDER_ALLOWED_ACCOUNTS" envDefault:"acc-9"`
}

// Pipeline configures the dispatch admission budget and the per-account
// resilience chain.
type Pipeline struct {
	DispatchConcurrency int64         `env:"DISPATCH_CONCURRENCY" envDefault:"50"`
	DispatchWorkers     int           `env:"DISPATCH_WORKERS" envDefault:"50"`
	RetryAttempts       int           `env:"PIPELINE_RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay          time.Duration `env:"PIPELINE_RETRY_DELAY" envDefault:"20ms"`
	HedgeDelay          time.Duration `env:"PIPELINE_HEDGE_DELAY" envDefault:"0"`
	CallTimeout         time.Duration `env:"PIPELINE_CALL_TIMEOUT" envDefault:"1s"`
}

func (p Provider) AllowedAccountList() []string {
	return strings.Split(p.AllowedAccounts, ",")
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
