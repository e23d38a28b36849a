package customerrepo_test

import (
	"context"
	"testing"
	"time"

	"caramelt/internal/adapters/out/postgres/customerrepo"
	"caramelt/internal/core/domain/model/customer"
	"caramelt/internal/core/domain/model/kernel"
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

// CustomerRepositoryIntegrationTestSuite provides integration tests for
// CustomerRepository using PostgreSQL containers.
type CustomerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *customerrepo.GormCustomerRepository
	tracker    *MockAggregateTracker
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&customerrepo.CustomerDTO{}))
}

func (suite *CustomerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE customers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = customerrepo.NewGormCustomerRepository(suite.db, suite.tracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *CustomerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CustomerRepositoryIntegrationTestSuite) createTestCustomer() *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), "Grace Hopper", "grace@example.com", "+31687654321", nil)
	suite.Require().NoError(err)
	return c
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsCustomer() {
	ctx := context.Background()
	c := suite.createTestCustomer()

	suite.Require().NoError(suite.repository.Add(ctx, c))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Grace Hopper", loaded.FullName())
	suite.Equal("grace@example.com", loaded.Email())
	suite.Equal("+31687654321", loaded.Phone())
	suite.Nil(loaded.Whatsapp())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestUpdate_PersistsContactRefresh() {
	ctx := context.Background()
	c := suite.createTestCustomer()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	whatsapp := "+31600000001"
	suite.Require().NoError(c.RefreshContact("Grace B. Hopper", &whatsapp))
	suite.Require().NoError(suite.repository.Update(ctx, c))

	loaded, err := suite.repository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Grace B. Hopper", loaded.FullName())
	suite.Require().NotNil(loaded.Whatsapp())
	suite.Equal(whatsapp, *loaded.Whatsapp())
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmailAndPhone_IgnoresEmailCase() {
	ctx := context.Background()
	c := suite.createTestCustomer()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	loaded, err := suite.repository.GetByEmailAndPhone(ctx, "GRACE@Example.COM", "+31687654321")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(c.ID()))
}

func (suite *CustomerRepositoryIntegrationTestSuite) TestGetByEmailAndPhone_RequiresBothToMatch() {
	ctx := context.Background()
	c := suite.createTestCustomer()
	suite.Require().NoError(suite.repository.Add(ctx, c))

	_, err := suite.repository.GetByEmailAndPhone(ctx, "grace@example.com", "+31600000000")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByEmailAndPhone(ctx, "other@example.com", "+31687654321")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCustomerRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(CustomerRepositoryIntegrationTestSuite))
}
