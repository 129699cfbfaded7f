package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pricingNavigator/app/echo-server/router"
	"pricingNavigator/business/assessment"
	"pricingNavigator/business/catalog"
	"pricingNavigator/business/classifier"
	"pricingNavigator/business/economics"
	healthService "pricingNavigator/business/health"
	"pricingNavigator/business/pricing"
	"pricingNavigator/business/unitcost"
	"pricingNavigator/business/valuemap"
	"pricingNavigator/domain"
	"pricingNavigator/internal/middleware"
	"pricingNavigator/internal/repository/static"
	"pricingNavigator/internal/rest"
	"pricingNavigator/pkg/config"
	"pricingNavigator/pkg/logger"
	"pricingNavigator/pkg/metrics"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting AI Pricing Navigator", "version", cfg.App.Version)

	metrics.Init()

	// Init repo
	questionRepo := static.NewQuestionRepository()
	compsRepo := static.NewCompsRepository()
	insightRepo := static.NewInsightRepository()

	// Init service
	classifierSvc := classifier.NewService(questionRepo, insightRepo)
	valueMapSvc := valuemap.NewService(questionRepo, insightRepo)
	pricingSvc := pricing.NewService(compsRepo, insightRepo)
	healthSvc := healthService.NewService(questionRepo, insightRepo)
	unitCostSvc := unitcost.NewService(unitcost.DefaultConfig())
	economicsSvc := economics.NewService()
	catalogSvc := catalog.NewService(questionRepo, compsRepo, insightRepo)

	assessmentSvc := assessment.NewService(
		classifierSvc,
		valueMapSvc,
		pricingSvc,
		healthSvc,
		assessment.Config{
			DefaultCostPerUnit:  cfg.Pricing.DefaultCostPerUnit,
			DefaultTargetMargin: cfg.Pricing.DefaultTargetMargin,
			DefaultDealSize:     cfg.Pricing.DefaultDealSize,
			DefaultSegment:      domain.CustomerSegment(cfg.Pricing.DefaultSegment),
			DefaultVariance:     domain.CostVariance(cfg.Pricing.DefaultVariance),
		},
	)

	// Init handler
	assessmentHandler := rest.NewAssessmentHandler(assessmentSvc)
	classifierHandler := rest.NewClassifierHandler(classifierSvc)
	valueMapHandler := rest.NewValueMapHandler(valueMapSvc)
	pricingHandler := rest.NewPricingHandler(pricingSvc)
	healthHandler := rest.NewHealthHandler(healthSvc)
	toolsHandler := rest.NewToolsHandler(unitCostSvc, economicsSvc)
	catalogHandler := rest.NewCatalogHandler(catalogSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupAssessmentRoutes(api, assessmentHandler)
	router.SetupClassifierRoutes(api, classifierHandler)
	router.SetupValueMapRoutes(api, valueMapHandler)
	router.SetupPricingRoutes(api, pricingHandler)
	router.SetHealthCheckRoutes(api, healthHandler)
	router.SetToolsRoutes(api, toolsHandler)
	router.SetupCatalogRoutes(api, catalogHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
