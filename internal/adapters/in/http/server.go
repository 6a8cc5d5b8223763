package http

import (
	"net/http"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server exposes dish and order operations over HTTP. Handlers return errors to echo;
// ErrorHandler turns them into responses.
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

// NewServer creates a new HTTP server with the required command and query handlers.
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

// ListDishes handles GET /dishes.
//
//	@Summary	List dishes
//	@Tags		dishes
//	@Produce	json
//	@Success	200	{object}	DishListResponse
//	@Router		/dishes [get]
func (s *Server) ListDishes(ctx echo.Context) error {
	dishes, err := s.listDishesHandler.Handle(ctx.Request().Context(), queries.NewListDishesQuery())
	if err != nil {
		return err
	}

	response := make([]Dish, len(dishes))
	for i, d := range dishes {
		response[i] = toDish(d)
	}
	return ctx.JSON(http.StatusOK, DishListResponse{Data: response})
}

// CreateDish handles POST /dishes.
//
//	@Summary	Create a dish
//	@Tags		dishes
//	@Accept		json
//	@Produce	json
//	@Param		body	body		DishRequest	true	"New dish"
//	@Success	201		{object}	DishResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/dishes [post]
func (s *Server) CreateDish(ctx echo.Context) error {
	data, err := readPayload(ctx)
	if err != nil {
		return err
	}

	created, err := s.createDishHandler.Handle(ctx.Request().Context(), commands.NewCreateDishCommand(data))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, DishResponse{Data: toDish(created)})
}

// GetDish handles GET /dishes/:dishId.
//
//	@Summary	Read a dish
//	@Tags		dishes
//	@Produce	json
//	@Param		dishId	path		string	true	"Dish id"
//	@Success	200		{object}	DishResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/dishes/{dishId} [get]
func (s *Server) GetDish(ctx echo.Context) error {
	found, err := s.getDishHandler.Handle(ctx.Request().Context(), queries.NewGetDishQuery(ctx.Param("dishId")))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DishResponse{Data: toDish(found)})
}

// UpdateDish handles PUT /dishes/:dishId.
//
//	@Summary	Replace a dish
//	@Tags		dishes
//	@Accept		json
//	@Produce	json
//	@Param		dishId	path		string		true	"Dish id"
//	@Param		body	body		DishRequest	true	"Replacement dish"
//	@Success	200		{object}	DishResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/dishes/{dishId} [put]
func (s *Server) UpdateDish(ctx echo.Context) error {
	data, err := readPayload(ctx)
	if err != nil {
		return err
	}

	cmd := commands.NewUpdateDishCommand(ctx.Param("dishId"), data)
	updated, err := s.updateDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, DishResponse{Data: toDish(updated)})
}

// ListOrders handles GET /orders.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	OrderListResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, OrderListResponse{Data: response})
}

// CreateOrder handles POST /orders.
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body		OrderRequest	true	"New order; status defaults to pending"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	data, err := readPayload(ctx)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), commands.NewCreateOrderCommand(data))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, OrderResponse{Data: toOrder(created)})
}

// GetOrder handles GET /orders/:orderId.
//
//	@Summary	Read an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order id"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(ctx.Param("orderId")))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, OrderResponse{Data: toOrder(found)})
}

// UpdateOrder handles PUT /orders/:orderId.
//
//	@Summary	Replace an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string			true	"Order id"
//	@Param		body	body		OrderRequest	true	"Replacement order"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{orderId} [put]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	data, err := readPayload(ctx)
	if err != nil {
		return err
	}

	cmd := commands.NewUpdateOrderCommand(ctx.Param("orderId"), data)
	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, OrderResponse{Data: toOrder(updated)})
}

// DeleteOrder handles DELETE /orders/:orderId.
//
//	@Summary	Cancel a pending order
//	@Tags		orders
//	@Param		orderId	path	string	true	"Order id"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{orderId} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	cmd := commands.NewDeleteOrderCommand(ctx.Param("orderId"))
	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health.
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
