package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleContactCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Contact
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.Owner = requesterID(c)

	contact, err := h.contacts.Create(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindContact, relata.EventActionCreated, contact.ID, contact)
	return presenter.Created(c, contact)
}

func (h *Handler) handleContactList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := parsePage(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	filter := domain.ContactFilter{
		Search:    c.QueryParam("q"),
		CompanyID: c.QueryParam("companyId"),
		Page:      page,
	}

	items, total, err := h.contacts.List(ctx, requesterID(c), filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, relata.ListResult[domain.Contact]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) handleContactGet(c echo.Context) error {
	ctx := c.Request().Context()

	contact, err := h.contacts.Get(ctx, c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, contact)
}

func (h *Handler) handleContactUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Contact
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.ID = c.Param("id")
	input.Owner = requesterID(c)

	contact, err := h.contacts.Update(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindContact, relata.EventActionUpdated, contact.ID, contact)
	return presenter.OK(c, contact)
}

func (h *Handler) handleContactDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.contacts.Delete(ctx, id, requesterID(c)); err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindContact, relata.EventActionDeleted, id, nil)
	return presenter.NoContent(c)
}

type reassignCompanyRequest struct {
	CompanyID *string `json:"companyId"`
}

type relationshipResponse struct {
	Contact domain.Contact  `json:"contact"`
	Company *domain.Company `json:"company"`
}

func (h *Handler) handleContactReassignCompany(c echo.Context) error {
	ctx := c.Request().Context()

	var req reassignCompanyRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	contact, company, err := h.relationship.ReassignContactCompany(ctx, c.Param("id"), req.CompanyID, requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}

	action := relata.EventActionLinked
	if req.CompanyID == nil {
		action = relata.EventActionUnlinked
	}
	h.publish(c, domain.KindContact, action, contact.ID, contact)

	return presenter.OK(c, relationshipResponse{Contact: contact, Company: company})
}
