package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/M34031-1/high-load-course/config"
	"github.com/M34031-1/high-load-course/internal/accounts"
	"github.com/M34031-1/high-load-course/internal/discovery"
	"github.com/M34031-1/high-load-course/internal/dispatcher"
	handlers "github.com/M34031-1/high-load-course/internal/handlers"
	"github.com/M34031-1/high-load-course/internal/ledger"
	"github.com/M34031-1/high-load-course/internal/orders"
	"github.com/M34031-1/high-load-course/internal/provider"
	"github.com/M34031-1/high-load-course/internal/publisher"
	"github.com/M34031-1/high-load-course/internal/subscriber"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type App struct {
	config     *config.Config
	Router     *gin.Engine
	dispatcher *dispatcher.Dispatcher
	cancel     context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&orders.Order{}, &ledger.PaymentRecord{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	providerClient := provider.NewClient(cfg.Provider.HostPort)
	ledgerStore := ledger.New(db)
	orderRepo := orders.New(db)

	discoveryCtx, cancelDiscovery := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelDiscovery()

	discovered, err := discovery.NewClient(cfg.Provider.HostPort).FetchAccounts(discoveryCtx, cfg.Provider.ServiceName)
	if err != nil {
		log.Fatalf("failed to fetch payment accounts: %v", err)
	}

	registry, err := accounts.NewRegistry(
		discovered,
		cfg.Provider.AllowedAccountList(),
		accounts.PipelineConfig{
			RetryAttempts: cfg.Pipeline.RetryAttempts,
			RetryDelay:    cfg.Pipeline.RetryDelay,
			HedgeDelay:    cfg.Pipeline.HedgeDelay,
			CallTimeout:   cfg.Pipeline.CallTimeout,
		},
		ledgerStore,
		providerClient,
	)
	if err != nil {
		log.Fatalf("failed to build payment pipelines: %v", err)
	}

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	kafkaPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.GetRetryConfig())

	a.dispatcher = dispatcher.New(
		orderRepo,
		registry,
		kafkaPublisher,
		cfg.Pipeline.DispatchConcurrency,
		cfg.Pipeline.DispatchWorkers,
	)
	a.dispatcher.Start()

	paymentHandler := handlers.NewPaymentHandler(a.dispatcher, ledgerStore)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)

	a.initSubscribers(paymentHandler, kafkaPublisher, cfg.GetRetryConfig())
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) Shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.dispatcher != nil {
		a.dispatcher.Stop()
	}
}

func (a *App) initSubscribers(paymentHandler *handlers.PaymentHandler, publisher *publisher.KafkaPublisher, retryConfig config.RetryConfig) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.PaymentConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, publisher, retryConfig)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		if err := paymentHandler.HandleEvents(ctx, topic, value); err != nil {
			logrus.Error(err.Error())
			return err
		}
		return nil
	})
}
