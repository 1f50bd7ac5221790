package cmd

import (
	"log/slog"

	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"
	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/ports"
	"shop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the application object graph. The publisher may be
// nil when event publishing is disabled.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.OrderEventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAddPaymentCommandHandler() commands.AddPaymentCommandHandler {
	return commands.NewAddPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddDeliveryEventCommandHandler() commands.AddDeliveryEventCommandHandler {
	return commands.NewAddDeliveryEventCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrderQueryHandler() queries.GetCustomerOrderQueryHandler {
	return queries.NewGetCustomerOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerAddressesQueryHandler() queries.GetCustomerAddressesQueryHandler {
	return queries.NewGetCustomerAddressesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every use case handler for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		AddPayment:        c.CreateAddPaymentCommandHandler(),
		AddDeliveryEvent:  c.CreateAddDeliveryEventCommandHandler(),

		ListOrders:           c.CreateListOrdersQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetCustomerOrders:    c.CreateGetCustomerOrdersQueryHandler(),
		GetCustomerOrder:     c.CreateGetCustomerOrderQueryHandler(),
		GetCustomerAddresses: c.CreateGetCustomerAddressesQueryHandler(),
		GetDashboardSummary:  c.CreateGetDashboardSummaryQueryHandler(),
	}
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDashboardSummaryQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
