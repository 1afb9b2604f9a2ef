package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"easy-shop/internal/apperr"
	"easy-shop/internal/service"
	"easy-shop/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid body", err)
	}

	if err := h.Svc.Register(ctx, req.Name, req.Email, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, transport.MessageResponse{
		Message: "Registration successful",
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid body", err)
	}

	user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.LoginResponse{
		Message: "Login successful",
		User: transport.PublicProfile{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
