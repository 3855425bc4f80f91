package rest

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleActivityCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Activity
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.Owner = requesterID(c)

	act, err := h.activities.Create(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindActivity, relata.EventActionCreated, act.ID, act)
	return presenter.Created(c, act)
}

func (h *Handler) handleActivityList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := parsePage(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	filter := domain.ActivityFilter{
		Search:    c.QueryParam("q"),
		Type:      c.QueryParam("type"),
		ContactID: c.QueryParam("contactId"),
		Page:      page,
	}
	if doneStr := c.QueryParam("done"); doneStr != "" {
		done, err := strconv.ParseBool(doneStr)
		if err != nil {
			return presenter.BadRequestMessage(c, "invalid done parameter")
		}
		filter.Done = &done
	}

	items, total, err := h.activities.List(ctx, requesterID(c), filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, relata.ListResult[domain.Activity]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) handleActivityGet(c echo.Context) error {
	ctx := c.Request().Context()

	act, err := h.activities.Get(ctx, c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, act)
}

func (h *Handler) handleActivityUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Activity
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.ID = c.Param("id")
	input.Owner = requesterID(c)

	act, err := h.activities.Update(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindActivity, relata.EventActionUpdated, act.ID, act)
	return presenter.OK(c, act)
}

func (h *Handler) handleActivityDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.activities.Delete(ctx, id, requesterID(c)); err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindActivity, relata.EventActionDeleted, id, nil)
	return presenter.NoContent(c)
}
