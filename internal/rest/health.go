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
	HealthHandler struct {
		validate      *validator.Validate
		healthService HealthService
	}

	HealthService interface {
		Score(ctx context.Context, scores map[string]int) (domain.HealthScore, error)
		Report(ctx context.Context, scores map[string]int) (domain.HealthReport, error)
	}

	HealthScoresRequest struct {
		Scores map[string]int `json:"scores" validate:"required,dive,gte=1,lte=5"`
	}
)

func NewHealthHandler(svc HealthService) *HealthHandler {
	return &HealthHandler{
		validate:      validator.New(),
		healthService: svc,
	}
}

func (h *HealthHandler) Score(c echo.Context) error {
	var req HealthScoresRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	score, err := h.healthService.Score(c.Request().Context(), req.Scores)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(score))
}

// Report adds per-area scores and the improvement actions for the three
// weakest areas on top of the plain score.
func (h *HealthHandler) Report(c echo.Context) error {
	var req HealthScoresRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	report, err := h.healthService.Report(c.Request().Context(), req.Scores)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}
