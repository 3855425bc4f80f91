package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleExpenseCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Expense
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.Owner = requesterID(c)

	exp, err := h.expenses.Create(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindExpense, relata.EventActionCreated, exp.ID, exp)
	return presenter.Created(c, exp)
}

func (h *Handler) handleExpenseList(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := parsePage(c)
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	filter := domain.ExpenseFilter{
		Search:   c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Page:     page,
	}

	items, total, err := h.expenses.List(ctx, requesterID(c), filter)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, relata.ListResult[domain.Expense]{
		Items:  items,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
}

func (h *Handler) handleExpenseGet(c echo.Context) error {
	ctx := c.Request().Context()

	exp, err := h.expenses.Get(ctx, c.Param("id"), requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, exp)
}

func (h *Handler) handleExpenseUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	var input domain.Expense
	if err := c.Bind(&input); err != nil {
		return presenter.BadRequest(c, err)
	}
	input.ID = c.Param("id")
	input.Owner = requesterID(c)

	exp, err := h.expenses.Update(ctx, input)
	if err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindExpense, relata.EventActionUpdated, exp.ID, exp)
	return presenter.OK(c, exp)
}

func (h *Handler) handleExpenseDelete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := h.expenses.Delete(ctx, id, requesterID(c)); err != nil {
		return presenter.FromError(c, err)
	}

	h.publish(c, domain.KindExpense, relata.EventActionDeleted, id, nil)
	return presenter.NoContent(c)
}
