package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleLeadCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Lead
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.Owner = requesterID(c)

	lead, err := h.leads.Create(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindLead, relata.EventActionCreated, lead.ID, lead)
	return presenter.Created(c, lead)
}

func (h *Handler) handleLeadList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := parsePage(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	filter := domain.LeadFilter{
		Search: c.QueryParam("q"),
		Status: c.QueryParam("status"),
		Source: c.QueryParam("source"),
		Page:   page,
	}

	items, total, err := h.leads.List(ctx, requesterID(c), filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, relata.ListResult[domain.Lead]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) handleLeadGet(c echo.Context) error {
	ctx := c.Request().Context()

	lead, err := h.leads.Get(ctx, c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, lead)
}

func (h *Handler) handleLeadUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Lead
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.ID = c.Param("id")
	input.Owner = requesterID(c)

	lead, err := h.leads.Update(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindLead, relata.EventActionUpdated, lead.ID, lead)
	return presenter.OK(c, lead)
}

func (h *Handler) handleLeadDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.leads.Delete(ctx, id, requesterID(c)); err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindLead, relata.EventActionDeleted, id, nil)
	return presenter.NoContent(c)
}

type convertResponse struct {
	Contact domain.Contact `json:"contact"`
	Lead    domain.Lead    `json:"lead"`
}

func (h *Handler) handleLeadConvert(c echo.Context) error {
	ctx := c.Request().Context()

	contact, lead, err := h.leads.Convert(ctx, c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindContact, relata.EventActionCreated, contact.ID, contact)
	h.publish(c, domain.KindLead, relata.EventActionUpdated, lead.ID, lead)
	return presenter.Created(c, convertResponse{Contact: contact, Lead: lead})
}
