package middleware

import (
	"net/http"

	"app/internal/domain/model"

	"github.com/labstack/echo/v4"
)

//contextに入っているroleがOWNERかどうかを確認します。

func OwnerGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxUserRoleKey)
			role, ok := rawRole.(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//店舗オーナーだけ許可
			if role != string(model.RoleOwner) {
				return c.JSON(http.StatusForbidden, errorJSON("owner only"))
			}

			return next(c)
		}
	}
}
