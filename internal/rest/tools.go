package rest

import (
	"context"
	"net/http"

	"pricingNavigator/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ToolsHandler struct {
		validate         *validator.Validate
		unitCostService  UnitCostService
		economicsService EconomicsService
	}

	UnitCostService interface {
		Presets(ctx context.Context) ([]domain.LLMPreset, error)
		Calculate(ctx context.Context, in domain.UnitCostInputs) (domain.UnitCostBreakdown, error)
	}

	EconomicsService interface {
		Snapshot(ctx context.Context, in domain.EconomicsInputs) (domain.EconomicsSnapshot, error)
	}

	UnitCostRequest struct {
		UnitDescription string `json:"unit_description"`
		Mode            string `json:"mode" validate:"required,oneof=tokens monthly_bill"`

		Provider             string  `json:"provider"`
		CostPer1KTokens      float64 `json:"cost_per_1k_tokens" validate:"gte=0"`
		TokensPerInteraction float64 `json:"tokens_per_interaction" validate:"gte=0"`
		CallsPerUnit         float64 `json:"calls_per_unit" validate:"gte=0"`

		MonthlySpend  float64 `json:"monthly_spend" validate:"gte=0"`
		UnitsPerMonth float64 `json:"units_per_month" validate:"gte=0"`

		HumanReview      bool    `json:"human_review"`
		ReviewPercent    float64 `json:"review_percent" validate:"gte=0,lte=100"`
		MinutesPerReview float64 `json:"minutes_per_review" validate:"gte=0"`
		HourlyCost       float64 `json:"hourly_cost" validate:"gte=0"`

		MonthlyInfra float64 `json:"monthly_infra" validate:"gte=0"`
		MonthlyUnits float64 `json:"monthly_units" validate:"gte=0"`
	}

	EconomicsRequest struct {
		CostPerUnit      float64 `json:"cost_per_unit" validate:"required,gt=0"`
		PricePerUnit     float64 `json:"price_per_unit" validate:"gte=0"`
		UnitsPerCustomer int     `json:"units_per_customer" validate:"required,gt=0"`
		Customers        int     `json:"customers" validate:"required,gt=0"`
	}
)

func NewToolsHandler(unitCost UnitCostService, economics EconomicsService) *ToolsHandler {
	return &ToolsHandler{
		validate:         validator.New(),
		unitCostService:  unitCost,
		economicsService: economics,
	}
}

func (h *ToolsHandler) GetPresets(c echo.Context) error {
	presets, err := h.unitCostService.Presets(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(presets))
}

func (h *ToolsHandler) CalculateUnitCost(c echo.Context) error {
	var req UnitCostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	breakdown, err := h.unitCostService.Calculate(c.Request().Context(), domain.UnitCostInputs{
		UnitDescription:      req.UnitDescription,
		Mode:                 domain.InferenceMode(req.Mode),
		Provider:             req.Provider,
		CostPer1KTokens:      req.CostPer1KTokens,
		TokensPerInteraction: req.TokensPerInteraction,
		CallsPerUnit:         req.CallsPerUnit,
		MonthlySpend:         req.MonthlySpend,
		UnitsPerMonth:        req.UnitsPerMonth,
		HumanReview:          req.HumanReview,
		ReviewPercent:        req.ReviewPercent,
		MinutesPerReview:     req.MinutesPerReview,
		HourlyCost:           req.HourlyCost,
		MonthlyInfra:         req.MonthlyInfra,
		MonthlyUnits:         req.MonthlyUnits,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(breakdown))
}

func (h *ToolsHandler) UnitEconomics(c echo.Context) error {
	var req EconomicsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	snapshot, err := h.economicsService.Snapshot(c.Request().Context(), domain.EconomicsInputs{
		CostPerUnit:      req.CostPerUnit,
		PricePerUnit:     req.PricePerUnit,
		UnitsPerCustomer: req.UnitsPerCustomer,
		Customers:        req.Customers,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(snapshot))
}
