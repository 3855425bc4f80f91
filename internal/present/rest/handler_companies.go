package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleCompanyCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Company
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.Owner = requesterID(c)

	company, err := h.companies.Create(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindCompany, relata.EventActionCreated, company.ID, company)
	return presenter.Created(c, company)
}

func (h *Handler) handleCompanyList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := parsePage(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	filter := domain.CompanyFilter{
		Search:   c.QueryParam("q"),
		Industry: c.QueryParam("industry"),
		Page:     page,
	}

	items, total, err := h.companies.List(ctx, requesterID(c), filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, relata.ListResult[domain.Company]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) handleCompanyGet(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.companies.Get(ctx, c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, company)
}

func (h *Handler) handleCompanyUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Company
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.ID = c.Param("id")
	input.Owner = requesterID(c)

	company, err := h.companies.Update(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindCompany, relata.EventActionUpdated, company.ID, company)
	return presenter.OK(c, company)
}

func (h *Handler) handleCompanyDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.companies.Delete(ctx, id, requesterID(c)); err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindCompany, relata.EventActionDeleted, id, nil)
	return presenter.NoContent(c)
}

type replaceMembersRequest struct {
	ContactIDs []string `json:"contactIds"`
}

func (h *Handler) handleCompanyReplaceMembers(c echo.Context) error {
	ctx := c.Request().Context()

	var req replaceMembersRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.ContactIDs == nil {
		return presenter.BadRequestMessage(c, "contactIds is required")
	}

	company, err := h.relationship.ReplaceCompanyMembers(ctx, c.Param("id"), req.ContactIDs, requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindCompany, relata.EventActionUpdated, company.ID, company)
	return presenter.OK(c, company)
}

func (h *Handler) handleCompanyLinkContact(c echo.Context) error {
	ctx := c.Request().Context()

	contact, company, err := h.relationship.Link(ctx, c.Param("contactId"), c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindContact, relata.EventActionLinked, contact.ID, contact)
	return presenter.OK(c, relationshipResponse{Contact: contact, Company: &company})
}

func (h *Handler) handleCompanyUnlinkContact(c echo.Context) error {
	ctx := c.Request().Context()

	contact, company, err := h.relationship.Unlink(ctx, c.Param("contactId"), c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindContact, relata.EventActionUnlinked, contact.ID, contact)
	return presenter.OK(c, relationshipResponse{Contact: contact, Company: &company})
}
