package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleCompetitorCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Competitor
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.Owner = requesterID(c)

	comp, err := h.competitors.Create(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindCompetitor, relata.EventActionCreated, comp.ID, comp)
	return presenter.Created(c, comp)
}

func (h *Handler) handleCompetitorList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := parsePage(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	filter := domain.CompetitorFilter{
		Search: c.QueryParam("q"),
		Page:   page,
	}

	items, total, err := h.competitors.List(ctx, requesterID(c), filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, relata.ListResult[domain.Competitor]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) handleCompetitorGet(c echo.Context) error {
	ctx := c.Request().Context()

	comp, err := h.competitors.Get(ctx, c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, comp)
}

func (h *Handler) handleCompetitorUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Competitor
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.ID = c.Param("id")
	input.Owner = requesterID(c)

	comp, err := h.competitors.Update(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindCompetitor, relata.EventActionUpdated, comp.ID, comp)
	return presenter.OK(c, comp)
}

func (h *Handler) handleCompetitorDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.competitors.Delete(ctx, id, requesterID(c)); err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindCompetitor, relata.EventActionDeleted, id, nil)
	return presenter.NoContent(c)
}
