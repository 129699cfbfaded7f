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
	ValueMapHandler struct {
		validate        *validator.Validate
		valueMapService ValueMapService
	}

	ValueMapService interface {
		MapPosition(ctx context.Context, answers map[string]string) (domain.ValuePosition, error)
		Profiles(ctx context.Context) ([]domain.QuadrantProfile, error)
	}

	PositionRequest struct {
		Answers map[string]string `json:"answers" validate:"required"`
	}
)

func NewValueMapHandler(svc ValueMapService) *ValueMapHandler {
	return &ValueMapHandler{
		validate:        validator.New(),
		valueMapService: svc,
	}
}

// quadrantFromSlug maps the URL-safe quadrant names onto their display
// values.
func quadrantFromSlug(slug string) (domain.Quadrant, bool) {
	switch slug {
	case "revenue_engine":
		return domain.QuadrantRevenueEngine, true
	case "efficiency_machine":
		return domain.QuadrantEfficiencyMachine, true
	case "promise_zone":
		return domain.QuadrantPromiseZone, true
	case "danger_zone":
		return domain.QuadrantDangerZone, true
	}

	return "", false
}

func (h *ValueMapHandler) MapPosition(c echo.Context) error {
	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	position, err := h.valueMapService.MapPosition(c.Request().Context(), req.Answers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(position))
}

func (h *ValueMapHandler) GetQuadrants(c echo.Context) error {
	profiles, err := h.valueMapService.Profiles(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profiles))
}
