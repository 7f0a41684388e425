package middleware

import (
	"net/http"
	"strings"

	"taskdeck/internal/database"
	"taskdeck/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// 測試可覆寫下列變數
var (
	verifyAccessToken = service.VerifyAccessToken
	resolveUser       = service.ResolveUser
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := verifyAccessToken(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

// RequireAuth 逐請求驗證 Bearer 令牌並解析令牌主體
// 令牌有效但使用者已不存在（例如帳號被刪除）同樣視為未授權
func RequireAuth(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			if _, err := resolveUser(c.Request().Context(), db, claims.UserID); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
