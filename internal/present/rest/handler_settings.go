package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleSettingsGet(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.settings.Get(ctx, requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, settings)
}

func (h *Handler) handleSettingsUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Settings
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.Owner = requesterID(c)

	settings, err := h.settings.Update(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindSettings, relata.EventActionUpdated, settings.Owner, settings)
	return presenter.OK(c, settings)
}
