package cmd

import (
	"log/slog"

	"caramelt/internal/adapters/out/postgres"
	"caramelt/internal/core/application/usecases/commands"
	"caramelt/internal/core/application/usecases/queries"
	"caramelt/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each Create method
// builds a handler with the narrow unit of work interface it depends on.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	sender      ports.NotificationSender
	blobs       ports.BlobStorage
	logger      *slog.Logger
	minPrepDays int
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	sender ports.NotificationSender,
	blobs ports.BlobStorage,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		sender:      sender,
		blobs:       blobs,
		logger:      logger,
		minPrepDays: config.MinPrepDays,
	}
}

func (c *CompositionRoot) BlobStorage() ports.BlobStorage {
	return c.blobs
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.minPrepDays)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.minPrepDays)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	var f commands.OrderCustomerUoWFactory = FuncOrderCustomerUoWFactory(func() commands.OrderCustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderPaidCommandHandler(f, c.sender, c.logger)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUncancelOrderCommandHandler() commands.UncancelOrderCommandHandler {
	return commands.NewUncancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	var f commands.OrderCustomerUoWFactory = FuncOrderCustomerUoWFactory(func() commands.OrderCustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateEditOrderItemCommandHandler() commands.EditOrderItemCommandHandler {
	return commands.NewEditOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory(), c.blobs, c.logger)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderCustomerUoWFactory func() commands.OrderCustomerUoW

func (f FuncOrderCustomerUoWFactory) Create() commands.OrderCustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
