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
	PricingHandler struct {
		validate       *validator.Validate
		pricingService PricingService
	}

	PricingService interface {
		GenerateFormula(ctx context.Context, in domain.PricingInputs) (domain.PricingFormula, error)
		Recommend(ctx context.Context, model domain.BusinessModel, quadrant domain.Quadrant, variance domain.CostVariance) (domain.PricingRecommendation, error)
		Plan(ctx context.Context, model domain.BusinessModel, quadrant domain.Quadrant, variance domain.CostVariance, in domain.PricingInputs) (domain.PricingPlan, error)
	}

	FormulaRequest struct {
		CostPerUnit     float64 `json:"cost_per_unit" validate:"required,gt=0"`
		TargetMargin    float64 `json:"target_margin" validate:"required,gte=40,lte=85"`
		DealSize        float64 `json:"deal_size" validate:"required,gt=0"`
		FormulaType     string  `json:"formula_type" validate:"required,oneof=hybrid outcome workflow per_seat"`
		CustomerSegment string  `json:"customer_segment" validate:"omitempty,oneof=smb mid_market enterprise"`
	}

	RecommendationRequest struct {
		Model        string `json:"model" validate:"required,oneof=copilot agent service"`
		Quadrant     string `json:"quadrant" validate:"required,oneof=revenue_engine efficiency_machine promise_zone danger_zone"`
		CostVariance string `json:"cost_variance" validate:"required,oneof=low moderate high"`
	}

	PlanRequest struct {
		Model           string  `json:"model" validate:"required,oneof=copilot agent service"`
		Quadrant        string  `json:"quadrant" validate:"required,oneof=revenue_engine efficiency_machine promise_zone danger_zone"`
		CostVariance    string  `json:"cost_variance" validate:"required,oneof=low moderate high"`
		CostPerUnit     float64 `json:"cost_per_unit" validate:"required,gt=0"`
		TargetMargin    float64 `json:"target_margin" validate:"required,gte=40,lte=85"`
		DealSize        float64 `json:"deal_size" validate:"required,gt=0"`
		CustomerSegment string  `json:"customer_segment" validate:"omitempty,oneof=smb mid_market enterprise"`
	}
)

func NewPricingHandler(svc PricingService) *PricingHandler {
	return &PricingHandler{
		validate:       validator.New(),
		pricingService: svc,
	}
}

func (h *PricingHandler) GenerateFormula(c echo.Context) error {
	var req FormulaRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	formula, err := h.pricingService.GenerateFormula(c.Request().Context(), domain.PricingInputs{
		CostPerUnit:     req.CostPerUnit,
		TargetMargin:    req.TargetMargin,
		DealSize:        req.DealSize,
		FormulaType:     domain.FormulaType(req.FormulaType),
		CustomerSegment: domain.CustomerSegment(req.CustomerSegment),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(formula))
}

func (h *PricingHandler) Recommend(c echo.Context) error {
	var req RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	model, _ := businessModelFromSlug(req.Model)
	quadrant, _ := quadrantFromSlug(req.Quadrant)

	recommendation, err := h.pricingService.Recommend(c.Request().Context(), model, quadrant, domain.CostVariance(req.CostVariance))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recommendation))
}

// Plan bundles the recommendation, the concrete formula behind it,
// comparable companies and the per-model pricing principles.
func (h *PricingHandler) Plan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	model, _ := businessModelFromSlug(req.Model)
	quadrant, _ := quadrantFromSlug(req.Quadrant)

	plan, err := h.pricingService.Plan(c.Request().Context(), model, quadrant, domain.CostVariance(req.CostVariance), domain.PricingInputs{
		CostPerUnit:     req.CostPerUnit,
		TargetMargin:    req.TargetMargin,
		DealSize:        req.DealSize,
		CustomerSegment: domain.CustomerSegment(req.CustomerSegment),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(plan))
}
