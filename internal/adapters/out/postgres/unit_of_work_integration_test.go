package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "grubdash/internal/adapters/out/postgres"
	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_line_items, orders, dishes").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newDish(id string) *dish.Dish {
	d, err := dish.NewDish(kernel.MustNewID(id), "Pasta "+id, "Fresh pasta", 12, "https://example.com/pasta.jpg")
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(id string) *order.Order {
	first, err := order.NewLineItem("1", 2)
	suite.Require().NoError(err)
	second, err := order.NewLineItem("2", 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.MustNewID(id), "1 Main St", "555-0100", order.Unknown,
		[]order.LineItem{first, second})
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx), "Deferred rollback after commit reports no transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DishRepository().Add(ctx, suite.newDish("1")))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder("1")))
	suite.Require().NoError(uow.Rollback(ctx))

	dishes, err := dishrepo.NewGormDishReader(suite.db).List(ctx)
	suite.Require().NoError(err)
	suite.Empty(dishes)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycle() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	id, err := uow.OrderRepository().NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal("1", id.String())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newOrder(id.String())))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Require().Len(o.Items(), 2)
	suite.Equal("1", o.Items()[0].DishID())

	only, err := order.NewLineItem("9", 4)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Replace("2 Side St", "555-0199", order.OutForDelivery, []order.LineItem{only}))
	suite.Require().NoError(repo.Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	reloaded, err := uow.OrderRepository().Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("2 Side St", reloaded.DeliverTo())
	suite.Equal(order.OutForDelivery, reloaded.Status())
	suite.Require().Len(reloaded.Items(), 1)
	suite.Equal(4, reloaded.Items()[0].Quantity())

	suite.Require().NoError(uow.OrderRepository().Remove(ctx, id))
	suite.Require().ErrorIs(uow.OrderRepository().Remove(ctx, id), errs.ErrObjectNotFound)
	suite.Require().NoError(uow.Commit(ctx))

	var items int64
	suite.Require().NoError(suite.db.Table("order_line_items").Count(&items).Error)
	suite.Zero(items)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentNextIDIsUnique() {
	ctx := context.Background()
	const workers = 8

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			repo := uow.DishRepository()
			id, err := repo.NextID(ctx)
			if err != nil {
				return
			}
			d, err := dish.NewDish(id, "Dish", "Description", 5, "https://example.com/d.jpg")
			if err != nil {
				return
			}
			if err = repo.Add(ctx, d); err != nil {
				return
			}
			_ = uow.Commit(ctx)
		}()
	}
	wg.Wait()

	dishes, err := dishrepo.NewGormDishReader(suite.db).List(ctx)
	suite.Require().NoError(err)
	suite.Len(dishes, workers)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
