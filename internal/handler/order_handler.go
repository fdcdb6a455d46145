package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/feed"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /owner/orders をまとめる
type OrderHandler struct {
	uc   *usecase.OrderUsecase
	feed *feed.OrderFeed
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase, feed *feed.OrderFeed) *OrderHandler {
	return &OrderHandler{uc: uc, feed: feed}
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/owner/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.OwnerGuard())

	g.GET("", h.list)
	g.GET("/stream", h.stream)
	g.PUT("/:id/status", h.updateStatus)
}

func (h *OrderHandler) list(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var statusFilter *model.OrderStatus
	if s := c.QueryParam("status"); s != "" {
		st := model.OrderStatus(s)
		statusFilter = &st
	}

	out, err := h.uc.List(c.Request().Context(), sess, statusFilter, c.QueryParam("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.TransitionStatus(c.Request().Context(), sess, c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "status updated"})
}

// SSEで注文スナップショットを流す。
// 接続直後に現在の全件、以後は変更のたびに全件を1イベントで送る。
func (h *OrderHandler) stream(c echo.Context) error {
	if _, ok := sessionFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	ctx := c.Request().Context()

	snapshots := make(chan []model.Order, 1)
	unsubscribe, err := h.feed.Subscribe(ctx, func(orders []model.Order) {
		select {
		case snapshots <- orders:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return writeError(c, err)
	}
	defer unsubscribe()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case orders := <-snapshots:
			data, err := json.Marshal(orders)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			w.Flush()
		}
	}
}
