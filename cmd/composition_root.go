package cmd

import (
	"log/slog"

	"orders/internal/adapters/in/http"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/adapters/out/productclient"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	validator  ports.ProductValidator
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	m := metrics.New()

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		validator: productclient.New(productclient.Config{
			BaseURL:          config.ProductServiceURL,
			Timeout:          config.ProductServiceTimeout,
			FailureThreshold: config.ProductBreakerFailures,
			OpenTimeout:      config.ProductBreakerOpenTimeout,
		}, m, logger),
		metrics: m,
		logger:  logger,
	}
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f, c.validator, c.logger)
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewChangeOrderStatusCommandHandler(c.CreateGetOrderQueryHandler(), f, c.logger)
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler(publisher ports.MessagePublisher) *commands.RelayOutboxCommandHandler {
	h := commands.NewRelayOutboxCommandHandler(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		publisher,
		c.metrics,
		c.logger,
	)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader(), c.validator, c.config.DegradedReads, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader())
}

// CreateHTTPServer wires the API handlers into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.config.MaxOrderItems,
		c.logger,
	)
}

// CreateJobManager wires the outbox relay. Without Kafka brokers the relay
// writes events to the log instead.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var publisher interface {
		ports.MessagePublisher
		Close() error
	}

	brokers := kafka.ParseBrokers(c.config.KafkaBrokers)
	if len(brokers) > 0 {
		publisher = kafka.NewPublisher(brokers, c.config.KafkaOrderEventsTopic)
	} else {
		c.logger.Warn("KAFKA_BROKERS is empty, outbox events are written to the log")
		publisher = kafka.NewLogPublisher(c.logger)
	}

	cmd, err := commands.NewRelayOutboxCommand(c.config.OutboxBatchSize)
	if err != nil {
		return nil, err
	}

	relay := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(publisher),
		c.config.OutboxRelaySchedule,
		cmd,
		c.logger,
	)
	return jobs.NewJobManager(relay, publisher, c.logger), nil
}

// Reads run outside a transaction.
func (c *CompositionRoot) orderReader() queries.OrderReader {
	return c.uowFactory.Create().OrderRepository()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
