package productrepo_test

import (
	"context"
	"testing"
	"time"

	"caramelt/internal/adapters/out/postgres/orderrepo"
	"caramelt/internal/adapters/out/postgres/productrepo"
	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/product"
	"caramelt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ProductRepositoryIntegrationTestSuite provides integration tests for
// ProductRepository using PostgreSQL containers.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// order_items is needed for the referenced-by-orders check.
	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(name string, isActive bool) *product.Product {
	price, err := kernel.NewMoneyFromFloat(9.75)
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), name, "Rich and sticky", price, nil, isActive)
	suite.Require().NoError(err)
	return p
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsProduct() {
	ctx := context.Background()
	imageURL := "https://cdn.example.com/brownie.jpg"

	price, err := kernel.NewMoneyFromFloat(4.20)
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), "Salted Brownie", "Dark chocolate, sea salt", price, &imageURL, true)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Salted Brownie", loaded.Name())
	suite.Equal("4.20", loaded.Price().String())
	suite.Require().NotNil(loaded.ImageURL())
	suite.Equal(imageURL, *loaded.ImageURL())
	suite.True(loaded.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_UnknownID_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	p := suite.createTestProduct("Fudge Square", true)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	newPrice, err := kernel.NewMoneyFromFloat(11.00)
	suite.Require().NoError(err)
	suite.Require().NoError(p.Rename("Fudge Slab"))
	suite.Require().NoError(p.ChangePrice(newPrice))
	p.SetActive(false)

	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Fudge Slab", loaded.Name())
	suite.Equal("11.00", loaded.Price().String())
	suite.False(loaded.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetByIDs_SkipsMissing() {
	ctx := context.Background()
	first := suite.createTestProduct("Caramel Tart", true)
	second := suite.createTestProduct("Praline Bite", false)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	found, err := suite.repository.GetByIDs(ctx, []kernel.UUID{first.ID(), second.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Len(found, 2)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	p := suite.createTestProduct("Toffee Crunch", true)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p.ID()))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestIsReferencedByOrders() {
	ctx := context.Background()
	p := suite.createTestProduct("Hazelnut Bar", true)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	referenced, err := suite.repository.IsReferencedByOrders(ctx, p.ID())
	suite.Require().NoError(err)
	suite.False(referenced)

	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO order_items (id, order_id, product_id, product_name, unit_price, quantity, line_total) VALUES (gen_random_uuid(), gen_random_uuid(), ?, ?, 9.75, 1, 9.75)",
		p.ID().Bytes(), p.Name(),
	).Error)

	referenced, err = suite.repository.IsReferencedByOrders(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(referenced)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
