package server

import (
	"app/internal/config"

	"github.com/labstack/echo/v4"
)

func Start(addr string, cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	RegisterRoutes(e, cfg, h)
	return e.Start(addr)
}
