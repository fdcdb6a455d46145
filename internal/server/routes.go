package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Product   *handler.ProductHandler
	Profile   *handler.ProfileHandler
	Dashboard *handler.DashboardHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Auth.RegisterRoutes(e)
	h.Order.RegisterRoutes(e, cfg)
	h.Product.RegisterRoutes(e, cfg)
	h.Profile.RegisterRoutes(e, cfg)
	h.Dashboard.RegisterRoutes(e, cfg)
}
