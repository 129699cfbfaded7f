package rest

import (
	"context"
	"net/http"
	"time"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type (
	AssessmentHandler struct {
		validate          *validator.Validate
		assessmentService AssessmentService
	}

	AssessmentService interface {
		Run(ctx context.Context, input domain.AssessmentInput) (domain.AssessmentReport, error)
	}

	PricingRequest struct {
		CostPerUnit     float64 `json:"cost_per_unit" validate:"omitempty,gt=0"`
		TargetMargin    float64 `json:"target_margin" validate:"omitempty,gte=40,lte=85"`
		DealSize        float64 `json:"deal_size" validate:"omitempty,gt=0"`
		CustomerSegment string  `json:"customer_segment" validate:"omitempty,oneof=smb mid_market enterprise"`
		CostVariance    string  `json:"cost_variance" validate:"omitempty,oneof=low moderate high"`
	}

	AssessmentRequest struct {
		ClassifierAnswers map[string]string `json:"classifier_answers"`
		ValueAnswers      map[string]string `json:"value_answers"`
		Pricing           PricingRequest    `json:"pricing"`
		HealthScores      map[string]int    `json:"health_scores" validate:"omitempty,dive,gte=1,lte=5"`
	}
)

func NewAssessmentHandler(svc AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		validate:          validator.New(),
		assessmentService: svc,
	}
}

// Run executes the full navigator pass: classification, value mapping,
// pricing plan and (when scores are present) the pricing health check.
func (h *AssessmentHandler) Run(c echo.Context) error {
	start := time.Now()
	metrics.AssessmentRequests.Inc()
	defer func() {
		metrics.AssessmentLatency.Observe(time.Since(start).Seconds())
	}()

	var req AssessmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	input := domain.AssessmentInput{
		ClassifierAnswers: req.ClassifierAnswers,
		ValueAnswers:      req.ValueAnswers,
		Pricing: domain.AssessmentPricing{
			CostPerUnit:     req.Pricing.CostPerUnit,
			TargetMargin:    req.Pricing.TargetMargin,
			DealSize:        req.Pricing.DealSize,
			CustomerSegment: domain.CustomerSegment(req.Pricing.CustomerSegment),
			CostVariance:    domain.CostVariance(req.Pricing.CostVariance),
		},
		HealthScores: req.HealthScores,
	}

	report, err := h.assessmentService.Run(c.Request().Context(), input)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}
