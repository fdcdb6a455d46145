package handler

import (
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/infra/feed"
	"app/internal/middleware"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// usecaseのエラー分類をHTTPステータスへ寄せる
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, usecase.ErrUnauthorized) {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	if ve, ok := usecase.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Error()})
	}
	if errors.Is(err, repo.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	var se *feed.SubscriptionError
	if errors.As(err, &se) {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "live feed unavailable"})
	}

	//StoreWriteErrorを含む残りは500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

//middleware.AuthJWT がcontextに入れた値からSessionを組み立てる

func sessionFromContext(c echo.Context) (usecase.Session, bool) {
	userID, _ := c.Get(middleware.CtxUserIDKey).(string)
	shopID, _ := c.Get(middleware.CtxShopIDKey).(string)
	role, _ := c.Get(middleware.CtxUserRoleKey).(string)

	sess := usecase.Session{
		UserID: userID,
		ShopID: shopID,
		Role:   model.Role(role),
	}
	return sess, sess.Valid()
}
