package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"buttery/internal/adapters/out/sqlstore"
	"buttery/internal/core/domain/model/conversation"
	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/core/domain/model/order"
	"buttery/internal/core/ports"
	"buttery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// PostgresIntegrationTestSuite runs the repositories against a real Postgres
// to check the server schema behaves like the embedded one.
type PostgresIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *PostgresIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := sqlstore.OpenPostgres(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(sqlstore.Migrate(ctx, db))
	suite.factory = sqlstore.NewGormUnitOfWorkFactory(db)
}

func (suite *PostgresIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, menu, conversations RESTART IDENTITY CASCADE").Error)
}

func (suite *PostgresIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PostgresIntegrationTestSuite) TestMenuAndOrderRoundTrip() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	roll, err := menu.NewItem("Mandarin Fresh Cream Roll", 10, kernel.MustMoney("2.50"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MenuRepository().Add(ctx, roll))

	o, err := order.NewOrder("alice", 1001, time.Now().UTC().Truncate(time.Second))
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddLine(roll.ID(), kernel.MustQuantity(2)))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	storedItem, err := reader.MenuRepository().Get(ctx, roll.ID())
	suite.Require().NoError(err)
	suite.Equal("2.50", storedItem.Price().String())

	stored, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, stored.Status())
	suite.Require().Len(stored.Lines(), 1)
	suite.Equal(2, stored.Lines()[0].Quantity().Int())

	var contents string
	suite.Require().NoError(suite.db.Raw("SELECT order_contents FROM order_details WHERE order_id = ?", o.ID().Int64()).Scan(&contents).Error)
	suite.Equal("Mandarin Fresh Cream Roll (2)", contents)
}

func (suite *PostgresIntegrationTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	item, _ := menu.NewItem("Egg (for noodles)", 15, kernel.MustMoney("0.5"))
	suite.Require().NoError(uow.MenuRepository().Add(ctx, item))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().MenuRepository().Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostgresIntegrationTestSuite) TestConversationUpsert() {
	ctx := context.Background()
	repo := suite.factory.Create().ConversationRepository()

	c, err := conversation.New("bob", 42, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Save(ctx, c))

	c.StartSelecting(time.Now().UTC())
	suite.Require().NoError(repo.Save(ctx, c))

	stored, err := repo.Get(ctx, "bob")
	suite.Require().NoError(err)
	suite.Equal(conversation.SelectingItem, stored.Step())
}

func TestPostgresIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	suite.Run(t, new(PostgresIntegrationTestSuite))
}
