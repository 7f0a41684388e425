// File: internal/handler/auth/auth.go
package auth

import (
	"errors"
	"net/http"

	"taskdeck/internal/api"
	"taskdeck/internal/database"
	"taskdeck/internal/model"
	"taskdeck/internal/service"

	"github.com/labstack/echo/v4"
)

// 測試可覆寫下列變數
var (
	registerUser = service.RegisterUser
	loginUser    = service.LoginUser
)

func userResponse(u *model.User) api.UserResponse {
	return api.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// @Summary     Register a new account
// @Description 建立帳號並回傳使用者資訊與存取令牌；Email 已存在時回傳 409
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, token, err := registerUser(c.Request().Context(), db, req.Name, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrDuplicateAccount) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			User:  userResponse(user),
			Token: token,
		})
	}
}

// @Summary     Log in
// @Description 以 Email 與密碼登入；未知 Email 與密碼錯誤回傳相同的 401 訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, token, err := loginUser(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			User:  userResponse(user),
			Token: token,
		})
	}
}
