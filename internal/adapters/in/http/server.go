// Package http is the inbound HTTP adapter. It exposes the resource-oriented
// JSON surface over the command and query handlers and maps domain failures
// onto response status codes.
package http

import (
	"errors"
	"net/http"

	"backhouse/internal/core/application/usecases/commands"
	"backhouse/internal/core/application/usecases/queries"
	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface for dishes and orders.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDishHandler  commands.CreateDishCommandHandler
	updateDishHandler  commands.UpdateDishCommandHandler
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	// Query handlers
	listDishesHandler queries.ListDishesQueryHandler
	getDishHandler    queries.GetDishQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createDishHandler commands.CreateDishCommandHandler,
	updateDishHandler commands.UpdateDishCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	listDishesHandler queries.ListDishesQueryHandler,
	getDishHandler queries.GetDishQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createDishHandler:  createDishHandler,
		updateDishHandler:  updateDishHandler,
		createOrderHandler: createOrderHandler,
		updateOrderHandler: updateOrderHandler,
		deleteOrderHandler: deleteOrderHandler,
		listDishesHandler:  listDishesHandler,
		getDishHandler:     getDishHandler,
		listOrdersHandler:  listOrdersHandler,
		getOrderHandler:    getOrderHandler,
	}
}

// RegisterRoutes attaches the resource routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/dishes", s.ListDishes)
	e.POST("/dishes", s.CreateDish)
	e.GET("/dishes/:dishId", s.GetDish)
	e.PUT("/dishes/:dishId", s.UpdateDish)

	e.GET("/orders", s.ListOrders)
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:orderId", s.GetOrder)
	e.PUT("/orders/:orderId", s.UpdateOrder)
	e.DELETE("/orders/:orderId", s.DeleteOrder)
}

// writeError renders a domain failure: not-found as 404, any input failure
// as 400, everything else as 500. The message carries the offending field,
// index, or identifier.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}
	return ctx.JSON(status, errorResponse{Error: err.Error()})
}

func writeBadBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
}

// ListDishes handles GET /dishes - retrieves the full menu.
func (s *Server) ListDishes(ctx echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(ctx.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataEnvelope[[]dishResponse]{Data: toDishResponses(dishes)})
}

// CreateDish handles POST /dishes - adds a dish to the menu.
func (s *Server) CreateDish(ctx echo.Context) error {
	var req dataEnvelope[dishPayloadRequest]
	if err := ctx.Bind(&req); err != nil {
		return writeBadBody(ctx)
	}

	cmd, err := commands.NewCreateDishCommand(req.Data.toPayload())
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dataEnvelope[dishResponse]{Data: toDishResponse(created)})
}

// GetDish handles GET /dishes/:dishId - retrieves one dish.
func (s *Server) GetDish(ctx echo.Context) error {
	dishID, err := kernel.IDFromString(ctx.Param("dishId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDishQuery(dishID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getDishHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataEnvelope[dishResponse]{Data: toDishResponse(found)})
}

// UpdateDish handles PUT /dishes/:dishId - overwrites a dish's fields.
func (s *Server) UpdateDish(ctx echo.Context) error {
	dishID, err := kernel.IDFromString(ctx.Param("dishId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req dataEnvelope[dishPayloadRequest]
	if err = ctx.Bind(&req); err != nil {
		return writeBadBody(ctx)
	}

	cmd, err := commands.NewUpdateDishCommand(dishID, req.Data.ID, req.Data.toPayload())
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataEnvelope[dishResponse]{Data: toDishResponse(updated)})
}

// ListOrders handles GET /orders - retrieves all orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataEnvelope[[]orderResponse]{Data: toOrderResponses(orders)})
}

// CreateOrder handles POST /orders - places an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req dataEnvelope[orderPayloadRequest]
	if err := ctx.Bind(&req); err != nil {
		return writeBadBody(ctx)
	}

	cmd, err := commands.NewCreateOrderCommand(req.Data.toPayload())
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, dataEnvelope[orderResponse]{Data: toOrderResponse(created)})
}

// GetOrder handles GET /orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataEnvelope[orderResponse]{Data: toOrderResponse(found)})
}

// UpdateOrder handles PUT /orders/:orderId - overwrites an order's fields.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req dataEnvelope[orderPayloadRequest]
	if err = ctx.Bind(&req); err != nil {
		return writeBadBody(ctx)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.Data.ID, req.Data.toPayload())
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dataEnvelope[orderResponse]{Data: toOrderResponse(updated)})
}

// DeleteOrder handles DELETE /orders/:orderId - removes a pending order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.IDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
