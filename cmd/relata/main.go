package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/relatahq/relata/internal/config"
	"github.com/relatahq/relata/internal/infra/database"
	"github.com/relatahq/relata/internal/infra/repository"
	"github.com/relatahq/relata/internal/present/rest"
	"github.com/relatahq/relata/internal/present/rest/middleware"
	"github.com/relatahq/relata/internal/service"
	"github.com/relatahq/relata/internal/token"
	"github.com/relatahq/relata/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error(
			"Failed to load config",
			slog.String("error", err.Error()),
			slog.String("path", *configPath),
		)
		os.Exit(1)
	}

	if conf.Server.EnableTrace {
		cleanup, err := setupTracer(conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error(
				"Failed to setup tracer",
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		defer cleanup()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		slog.Error(
			"Failed to connect database",
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	if err := database.MigratePostgres(db); err != nil {
		slog.Error(
			"Failed to migrate database",
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	competitorRepo := repository.NewCompetitorRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	relationship := usecase.NewRelationshipUsecase(contactRepo, companyRepo)
	contacts := usecase.NewContactUsecase(contactRepo, relationship)
	companies := usecase.NewCompanyUsecase(companyRepo, contactRepo)
	opportunities := usecase.NewOpportunityUsecase(opportunityRepo)
	activities := usecase.NewActivityUsecase(activityRepo)
	leads := usecase.NewLeadUsecase(leadRepo, contactRepo)
	expenses := usecase.NewExpenseUsecase(expenseRepo)
	competitors := usecase.NewCompetitorUsecase(competitorRepo)
	settings := usecase.NewSettingsUsecase(settingsRepo, mc)
	analytics := usecase.NewAnalyticsUsecase(analyticsRepo)

	tokenService := token.New(
		conf.Auth.Secret,
		conf.Auth.Issuer,
		time.Duration(conf.Auth.TokenTTLMins)*time.Minute,
	)
	authService := service.NewAuthService(userRepo, tokenService)
	signalService := service.NewSignalService(rdb)

	handler := rest.NewHandler(
		authService,
		signalService,
		relationship,
		contacts,
		companies,
		opportunities,
		activities,
		leads,
		expenses,
		competitors,
		settings,
		analytics,
	)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("relata"))
	}

	handler.RegisterRoutes(e, authMiddleware)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTracer(endpoint string) (func(), error) {
	ctx := context.Background()

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(semconv.ServiceName("relata")),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Error(
				"Failed to shutdown tracer provider",
				slog.String("error", err.Error()),
			)
		}
	}, nil
}
