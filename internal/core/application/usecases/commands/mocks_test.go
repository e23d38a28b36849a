package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"caramelt/internal/core/application/usecases/commands"
	"caramelt/internal/core/domain/model/customer"
	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/core/domain/model/order"
	"caramelt/internal/core/domain/model/product"
	"caramelt/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) IsReferencedByOrders(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByEmailAndPhone(ctx context.Context, email, phone string) (*customer.Customer, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

// MockUoW implements every unit-of-work shape the handlers use, so one mock
// serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderCustomerUoWFactory struct{ mock.Mock }

func (m *MockOrderCustomerUoWFactory) Create() commands.OrderCustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCustomerUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockNotificationSender struct{ mock.Mock }

func (m *MockNotificationSender) SendPaymentConfirmation(ctx context.Context, o *order.Order, c *customer.Customer) error {
	args := m.Called(ctx, o, c)
	return args.Error(0)
}

type MockBlobStorage struct{ mock.Mock }

func (m *MockBlobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// futureDate is comfortably beyond any configured preparation lead time.
func futureDate() time.Time {
	return time.Now().UTC().AddDate(0, 0, 30).Truncate(24 * time.Hour)
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func newStoredProduct(t *testing.T, name string, price float64, isActive bool) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "a dessert", mustMoney(t, price), nil, isActive)
	require.NoError(t, err)
	return p
}

func newStoredCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada Lovelace", "ada@example.com", "+31612345678", nil)
	require.NoError(t, err)
	return c
}

func newStoredOrder(t *testing.T, p *product.Product) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), p.ID(), p.Name(), p.Price(), 2)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.GenerateCode(),
		futureDate(), nil, order.PaymentMethodCash, []*order.Item{item},
	)
	require.NoError(t, err)
	return o
}
