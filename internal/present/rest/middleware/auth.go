package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// RequireAuth resolves the bearer token into the requester id and stores it
// in the request context. Requests without a valid token are rejected.
func (s *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireAuth")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization header"})
		}

		split := strings.Split(authHeader, " ")
		if len(split) != 2 || split[0] != "Bearer" {
			span.RecordError(errors.New("invalid authentication header"))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "only Bearer is acceptable"})
		}

		result, err := s.auth.Authenticate(ctx, split[1])
		if err != nil {
			span.RecordError(errors.Wrap(err, "AuthMiddleware.RequireAuth: authentication failed"))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		}

		ctx = context.WithValue(ctx, domain.RequesterIdCtxKey, result.UserID)
		span.SetAttributes(attribute.String("RequesterId", result.UserID))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
