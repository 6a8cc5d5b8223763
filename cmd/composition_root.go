package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "grubdash/internal/adapters/in/http"
	"grubdash/internal/adapters/out/events"
	"grubdash/internal/adapters/out/memory"
	postgres_adapter "grubdash/internal/adapters/out/postgres"
	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"
	"grubdash/internal/adapters/out/rabbitmq"
	"grubdash/internal/adapters/out/seed"
	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/ports"
	"grubdash/internal/jobs"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	uowFactory  ports.UnitOfWorkFactory
	dishReader  ports.DishReader
	orderReader ports.OrderReader
	publisher   ports.OrderEventPublisher
	closers     []func() error
}

// NewCompositionRoot opens the configured store and event publisher.
func NewCompositionRoot(config Config, log *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{config: config, logger: log}

	switch config.StoreDriver {
	case StoreDriverPostgres:
		if err := c.openPostgres(); err != nil {
			_ = c.Close()
			return nil, err
		}
	default:
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.dishReader = memory.NewDishReader(store)
		c.orderReader = memory.NewOrderReader(store)
	}

	if config.AMQPURL != "" {
		publisher, err := rabbitmq.Dial(config.AMQPURL, config.AMQPExchange)
		if err != nil {
			_ = c.Close()
			return nil, err
		}
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
	} else {
		c.publisher = events.NewLogPublisher(log)
	}

	return c, nil
}

func (c *CompositionRoot) openPostgres() error {
	db, err := gorm.Open(gorm_postgres.Open(c.config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err = postgres_adapter.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	c.uowFactory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	c.dishReader = dishrepo.NewGormDishReader(db)
	c.orderReader = orderrepo.NewGormOrderReader(db)
	return nil
}

// Seed loads the fixtures into an empty store.
func (c *CompositionRoot) Seed(ctx context.Context) (bool, error) {
	return seed.Run(ctx, c.uowFactory, c.dishReader, c.orderReader)
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.dishReader)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.dishReader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetOrderStatusSummaryQueryHandler() queries.GetOrderStatusSummaryQueryHandler {
	return queries.NewGetOrderStatusSummaryQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateDishCommandHandler(),
		c.CreateUpdateDishCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateListDishesQueryHandler(),
		c.CreateGetDishQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.config.ReportSchedule, c.CreateGetOrderStatusSummaryQueryHandler(), c.logger)
}

// Close releases the broker connection and the database pool, in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) dishUoWFactory() commands.DishUoWFactory {
	return FuncDishUoWFactory(func() commands.DishUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncDishUoWFactory func() commands.DishUoW

func (f FuncDishUoWFactory) Create() commands.DishUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
