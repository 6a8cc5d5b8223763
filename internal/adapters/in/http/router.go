package http

import (
	"context"
	"log/slog"

	_ "grubdash/docs" // registers the swagger document

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance: middleware, error handling and routes.
func NewRouter(server *Server, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))

	e.GET("/health", server.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	dishes := e.Group("/dishes")
	dishes.GET("", server.ListDishes)
	dishes.POST("", server.CreateDish)
	dishes.GET("/:dishId", server.GetDish)
	dishes.PUT("/:dishId", server.UpdateDish)

	orders := e.Group("/orders")
	orders.GET("", server.ListOrders)
	orders.POST("", server.CreateOrder)
	orders.GET("/:orderId", server.GetOrder)
	orders.PUT("/:orderId", server.UpdateOrder)
	orders.DELETE("/:orderId", server.DeleteOrder)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}
