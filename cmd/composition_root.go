package cmd

import (
	"log/slog"

	httpin "backhouse/internal/adapters/in/http"
	"backhouse/internal/adapters/out/memstore"
	"backhouse/internal/core/application/usecases/commands"
	"backhouse/internal/core/application/usecases/queries"
	"backhouse/internal/jobs"
)

// CompositionRoot owns the application-scoped stores and wires every
// command and query handler onto them. The stores live for the process
// lifetime; nothing is persisted across restarts.
type CompositionRoot struct {
	config     Config
	dishStore  *memstore.DishStore
	orderStore *memstore.OrderStore
}

func NewCompositionRoot(config Config) CompositionRoot {
	return CompositionRoot{
		config:     config,
		dishStore:  memstore.NewDishStore(),
		orderStore: memstore.NewOrderStore(),
	}
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishStore)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishStore)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderStore)
}

func (c *CompositionRoot) CreateListDishesQueryHandler() queries.ListDishesQueryHandler {
	return queries.NewListDishesQueryHandler(c.dishStore)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.dishStore)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderStore)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderStore)
}

// CreateHTTPServer assembles the inbound HTTP adapter over the full set of
// command and query handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
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

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListOrdersQueryHandler(), c.config.StatsSchedule, logger)
}
