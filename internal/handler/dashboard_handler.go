package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ダッシュボードの読み取り専用サマリ
type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

// DI
func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/owner/dashboard")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.OwnerGuard())

	g.GET("", h.summary)
}

func (h *DashboardHandler) summary(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Summary(c.Request().Context(), sess)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
