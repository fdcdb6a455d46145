package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /owner/profile をまとめる
type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

// DI
func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type ProfileUpdateRequest struct {
	Name            string `json:"name"`
	OwnerName       string `json:"owner_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PinCode         string `json:"pin_code"`
	ShopType        string `json:"shop_type"`
	Description     string `json:"description"`
	Address         string `json:"address"`
	LogoURL         string `json:"logo_url"`
	BannerURL       string `json:"banner_url"`
	PickupAvailable bool   `json:"pickup_available"`
}

func (h *ProfileHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/owner/profile")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.OwnerGuard())

	g.GET("", h.get)
	g.PUT("", h.update)
}

func (h *ProfileHandler) get(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	p, err := h.uc.Get(c.Request().Context(), sess)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) update(c echo.Context) error {
	sess, ok := sessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ProfileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.Update(c.Request().Context(), sess, usecase.UpdateProfileInput{
		Name:            req.Name,
		OwnerName:       req.OwnerName,
		Email:           req.Email,
		Phone:           req.Phone,
		PinCode:         req.PinCode,
		ShopType:        req.ShopType,
		Description:     req.Description,
		Address:         req.Address,
		LogoURL:         req.LogoURL,
		BannerURL:       req.BannerURL,
		PickupAvailable: req.PickupAvailable,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "profile updated"})
}
