package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleOpportunityCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Opportunity
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.Owner = requesterID(c)

	opp, err := h.opportunities.Create(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindOpportunity, relata.EventActionCreated, opp.ID, opp)
	return presenter.Created(c, opp)
}

func (h *Handler) handleOpportunityList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := parsePage(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	filter := domain.OpportunityFilter{
		Search:    c.QueryParam("q"),
		Stage:     c.QueryParam("stage"),
		CompanyID: c.QueryParam("companyId"),
		ContactID: c.QueryParam("contactId"),
		Page:      page,
	}

	items, total, err := h.opportunities.List(ctx, requesterID(c), filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, relata.ListResult[domain.Opportunity]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) handleOpportunityGet(c echo.Context) error {
	ctx := c.Request().Context()

	opp, err := h.opportunities.Get(ctx, c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, opp)
}

func (h *Handler) handleOpportunityUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Opportunity
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.ID = c.Param("id")
	input.Owner = requesterID(c)

	opp, err := h.opportunities.Update(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindOpportunity, relata.EventActionUpdated, opp.ID, opp)
	return presenter.OK(c, opp)
}

func (h *Handler) handleOpportunityDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.opportunities.Delete(ctx, id, requesterID(c)); err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindOpportunity, relata.EventActionDeleted, id, nil)
	return presenter.NoContent(c)
}
