package router

import (
	"pricingNavigator/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupAssessmentRoutes(api *echo.Group, handler *rest.AssessmentHandler) {
	api.POST("/assessments", handler.Run)
}

func SetupClassifierRoutes(api *echo.Group, handler *rest.ClassifierHandler) {
	classifier := api.Group("/classifier")

	classifier.POST("/classify", handler.Classify)
	classifier.POST("/classify/debug", handler.DebugClassify)
	classifier.GET("/profiles/:model", handler.GetProfile)
}

func SetupValueMapRoutes(api *echo.Group, handler *rest.ValueMapHandler) {
	valueMap := api.Group("/value-map")

	valueMap.POST("/position", handler.MapPosition)
	valueMap.GET("/quadrants", handler.GetQuadrants)
}

func SetupPricingRoutes(api *echo.Group, handler *rest.PricingHandler) {
	pricing := api.Group("/pricing")

	pricing.POST("/formula", handler.GenerateFormula)
	pricing.POST("/recommendation", handler.Recommend)
	pricing.POST("/plan", handler.Plan)
}

func SetHealthCheckRoutes(api *echo.Group, handler *rest.HealthHandler) {
	health := api.Group("/health-check")

	health.POST("/score", handler.Score)
	health.POST("/report", handler.Report)
}

func SetToolsRoutes(api *echo.Group, handler *rest.ToolsHandler) {
	tools := api.Group("/tools")

	tools.POST("/unit-cost", handler.CalculateUnitCost)
	tools.GET("/llm-presets", handler.GetPresets)
	tools.POST("/unit-economics", handler.UnitEconomics)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	catalog := api.Group("/catalog")

	catalog.GET("/questions", handler.GetQuestions)
	catalog.GET("/comps", handler.GetComps)
	catalog.GET("/models", handler.GetModels)
}
