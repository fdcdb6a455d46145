package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /owner/products をまとめる
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 数値はテキストのまま受けてusecase側でパースする
type ProductCreateRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           string `json:"price"`
	DiscountedPrice string `json:"discounted_price"`
	Quantity        string `json:"quantity"`
	Unit            string `json:"unit"`
	ImageURL        string `json:"image_url"`
	InStock         *bool  `json:"in_stock"`
	IsHotDeal       bool   `json:"is_hot_deal"`
}

// 部分更新。省略(null)のフィールドは触らない。
type ProductUpdateRequest struct {
	Name            *string `json:"name"`
	Category        *string `json:"category"`
	Price           *string `json:"price"`
	DiscountedPrice *string `json:"discounted_price"`
	Quantity        *string `json:"quantity"`
	Unit            *string `json:"unit"`
	ImageURL        *string `json:"image_url"`
	InStock         *bool   `json:"in_stock"`
	IsHotDeal       *bool   `json:"is_hot_deal"`
}

type ProductCreatedResponse struct {
	ID string `json:"id"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/owner/products")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.OwnerGuard())

	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *ProductHandler) list(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	//show_out_of_stockは省略時true（チェックを外したときだけ隠す）
	showOutOfStock := c.QueryParam("show_out_of_stock") != "false"
	hotDealsOnly := c.QueryParam("hot_deals_only") == "true"

	out, err := h.uc.List(c.Request().Context(), sess, usecase.CatalogFilter{
		Query:          c.QueryParam("q"),
		Category:       c.QueryParam("category"),
		ShowOutOfStock: showOutOfStock,
		HotDealsOnly:   hotDealsOnly,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) create(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.AddProduct(c.Request().Context(), sess, usecase.AddProductInput{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		ImageURL:        req.ImageURL,
		InStock:         req.InStock,
		IsHotDeal:       req.IsHotDeal,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProductCreatedResponse{ID: id})
}

func (h *ProductHandler) update(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.UpdateProduct(c.Request().Context(), sess, c.Param("id"), usecase.UpdateProductInput{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		ImageURL:        req.ImageURL,
		InStock:         req.InStock,
		IsHotDeal:       req.IsHotDeal,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *ProductHandler) delete(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), sess, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
