package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/middleware"
	"github.com/relatahq/relata/internal/service"
	"github.com/relatahq/relata/internal/usecase"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type Handler struct {
	auth          *service.AuthService
	signal        *service.SignalService
	relationship  *usecase.RelationshipUsecase
	contacts      *usecase.ContactUsecase
	companies     *usecase.CompanyUsecase
	opportunities *usecase.OpportunityUsecase
	activities    *usecase.ActivityUsecase
	leads         *usecase.LeadUsecase
	expenses      *usecase.ExpenseUsecase
	competitors   *usecase.CompetitorUsecase
	settings      *usecase.SettingsUsecase
	analytics     *usecase.AnalyticsUsecase
}

func NewHandler(
	auth *service.AuthService,
	signal *service.SignalService,
	relationship *usecase.RelationshipUsecase,
	contacts *usecase.ContactUsecase,
	companies *usecase.CompanyUsecase,
	opportunities *usecase.OpportunityUsecase,
	activities *usecase.ActivityUsecase,
	leads *usecase.LeadUsecase,
	expenses *usecase.ExpenseUsecase,
	competitors *usecase.CompetitorUsecase,
	settings *usecase.SettingsUsecase,
	analytics *usecase.AnalyticsUsecase,
) *Handler {
	return &Handler{
		auth:          auth,
		signal:        signal,
		relationship:  relationship,
		contacts:      contacts,
		companies:     companies,
		opportunities: opportunities,
		activities:    activities,
		leads:         leads,
		expenses:      expenses,
		competitors:   competitors,
		settings:      settings,
		analytics:     analytics,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, auth *middleware.AuthMiddleware) {
	e.POST("/api/v1/auth/register", h.handleRegister)
	e.POST("/api/v1/auth/login", h.handleLogin)

	api := e.Group("/api/v1", auth.RequireAuth)

	api.POST("/contacts", h.handleContactCreate)
	api.GET("/contacts", h.handleContactList)
	api.GET("/contacts/:id", h.handleContactGet)
	api.PUT("/contacts/:id", h.handleContactUpdate)
	api.DELETE("/contacts/:id", h.handleContactDelete)
	api.PUT("/contacts/:id/company", h.handleContactReassignCompany)

	api.POST("/companies", h.handleCompanyCreate)
	api.GET("/companies", h.handleCompanyList)
	api.GET("/companies/:id", h.handleCompanyGet)
	api.PUT("/companies/:id", h.handleCompanyUpdate)
	api.DELETE("/companies/:id", h.handleCompanyDelete)
	api.PUT("/companies/:id/contacts", h.handleCompanyReplaceMembers)
	api.POST("/companies/:id/contacts/:contactId", h.handleCompanyLinkContact)
	api.DELETE("/companies/:id/contacts/:contactId", h.handleCompanyUnlinkContact)

	api.POST("/opportunities", h.handleOpportunityCreate)
	api.GET("/opportunities", h.handleOpportunityList)
	api.GET("/opportunities/:id", h.handleOpportunityGet)
	api.PUT("/opportunities/:id", h.handleOpportunityUpdate)
	api.DELETE("/opportunities/:id", h.handleOpportunityDelete)

	api.POST("/activities", h.handleActivityCreate)
	api.GET("/activities", h.handleActivityList)
	api.GET("/activities/:id", h.handleActivityGet)
	api.PUT("/activities/:id", h.handleActivityUpdate)
	api.DELETE("/activities/:id", h.handleActivityDelete)

	api.POST("/leads", h.handleLeadCreate)
	api.GET("/leads", h.handleLeadList)
	api.GET("/leads/:id", h.handleLeadGet)
	api.PUT("/leads/:id", h.handleLeadUpdate)
	api.DELETE("/leads/:id", h.handleLeadDelete)
	api.POST("/leads/:id/convert", h.handleLeadConvert)

	api.POST("/expenses", h.handleExpenseCreate)
	api.GET("/expenses", h.handleExpenseList)
	api.GET("/expenses/:id", h.handleExpenseGet)
	api.PUT("/expenses/:id", h.handleExpenseUpdate)
	api.DELETE("/expenses/:id", h.handleExpenseDelete)

	api.POST("/competitors", h.handleCompetitorCreate)
	api.GET("/competitors", h.handleCompetitorList)
	api.GET("/competitors/:id", h.handleCompetitorGet)
	api.PUT("/competitors/:id", h.handleCompetitorUpdate)
	api.DELETE("/competitors/:id", h.handleCompetitorDelete)

	api.GET("/settings", h.handleSettingsGet)
	api.PUT("/settings", h.handleSettingsUpdate)

	api.GET("/analytics/summary", h.handleAnalyticsSummary)
	api.GET("/analytics/opportunities/stages", h.handleAnalyticsStages)
	api.GET("/analytics/expenses/categories", h.handleAnalyticsCategories)
	api.GET("/analytics/leads/funnel", h.handleAnalyticsFunnel)

	api.GET("/realtime", h.handleRealtime)
}

// requesterID reads the authenticated user id the auth middleware stored in
// the request context.
func requesterID(c echo.Context) string {
	id, _ := c.Request().Context().Value(domain.RequesterIdCtxKey).(string)
	return id
}

func parsePage(c echo.Context) (domain.Page, error) {
	page := domain.Page{Limit: defaultPageLimit}

	limitStr := c.QueryParam("limit")
	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return domain.Page{}, fmt.Errorf("invalid limit parameter")
		}
		page.Limit = limit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}

	offsetStr := c.QueryParam("offset")
	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return domain.Page{}, fmt.Errorf("invalid offset parameter")
		}
		page.Offset = offset
	}

	return page, nil
}

// publish emits a change event. Event delivery is best effort and never
// fails the request.
func (h *Handler) publish(c echo.Context, kind, action, id string, body any) {
	if h.signal == nil {
		return
	}
	ctx := c.Request().Context()
	err := h.signal.Publish(ctx, relata.Event{
		Kind:     kind,
		Action:   action,
		Owner:    requesterID(c),
		ID:       id,
		Body:     body,
		Occurred: time.Now().UTC(),
	})
	if err != nil {
		slog.ErrorContext(
			ctx, "Error publishing event",
			slog.String("error", err.Error()),
			slog.String("module", "rest"),
		)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleRealtime streams the requester's change events over a websocket.
// Inbound frames are heartbeats only.
func (h *Handler) handleRealtime(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer func() {
		ws.Close()
	}()

	ctx := c.Request().Context()
	owner := requesterID(c)

	output := make(chan relata.Event)
	go func() {
		h.signal.Realtime(ctx, owner, output)
		close(output)
	}()

	quit := make(chan struct{})

	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				wsErr, ok := err.(*websocket.CloseError)
				if ok {
					if !(wsErr.Code == websocket.CloseNormalClosure || wsErr.Code == websocket.CloseGoingAway) {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.ErrorContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}
				close(quit)
				return
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case event, ok := <-output:
			if !ok {
				return nil
			}
			if err := ws.WriteJSON(event); err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
