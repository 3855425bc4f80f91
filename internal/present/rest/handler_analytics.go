package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata/internal/present/rest/presenter"
)

func (h *Handler) handleAnalyticsSummary(c echo.Context) error {
	ctx := c.Request().Context()

	summary, err := h.analytics.Summary(ctx, requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, summary)
}

func (h *Handler) handleAnalyticsStages(c echo.Context) error {
	ctx := c.Request().Context()

	buckets, err := h.analytics.OpportunitiesByStage(ctx, requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, buckets)
}

func (h *Handler) handleAnalyticsCategories(c echo.Context) error {
	ctx := c.Request().Context()

	buckets, err := h.analytics.ExpensesByCategory(ctx, requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, buckets)
}

func (h *Handler) handleAnalyticsFunnel(c echo.Context) error {
	ctx := c.Request().Context()

	buckets, err := h.analytics.LeadFunnel(ctx, requesterID(c))
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.OK(c, buckets)
}
