package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	user, err := h.auth.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.Created(c, user)
}

func (h *Handler) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	signed, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return presenter.Unauthorized(c, "invalid credentials")
	}
	return presenter.OK(c, relata.TokenResponse{Token: signed})
}
