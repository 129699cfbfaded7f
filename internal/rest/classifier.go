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
	ClassifierHandler struct {
		validate          *validator.Validate
		classifierService ClassifierService
	}

	ClassifierService interface {
		Classify(ctx context.Context, answers map[string]string) (domain.Classification, error)
		DebugClassify(ctx context.Context, answers map[string]string) (domain.ClassificationBreakdown, error)
		Profile(ctx context.Context, model domain.BusinessModel) (domain.ModelProfile, error)
	}

	ClassifyRequest struct {
		Answers map[string]string `json:"answers" validate:"required"`
	}
)

func NewClassifierHandler(svc ClassifierService) *ClassifierHandler {
	return &ClassifierHandler{
		validate:          validator.New(),
		classifierService: svc,
	}
}

// businessModelFromSlug maps the URL-safe model names onto their
// display values.
func businessModelFromSlug(slug string) (domain.BusinessModel, bool) {
	switch slug {
	case "copilot":
		return domain.ModelCopilot, true
	case "agent":
		return domain.ModelAgent, true
	case "service":
		return domain.ModelService, true
	}

	return "", false
}

func (h *ClassifierHandler) Classify(c echo.Context) error {
	var req ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	classification, err := h.classifierService.Classify(c.Request().Context(), req.Answers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(classification))
}

// DebugClassify exposes the per-question score contributions behind a
// classification, for tuning the questionnaire weights.
func (h *ClassifierHandler) DebugClassify(c echo.Context) error {
	var req ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	breakdown, err := h.classifierService.DebugClassify(c.Request().Context(), req.Answers)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(breakdown))
}

func (h *ClassifierHandler) GetProfile(c echo.Context) error {
	model, ok := businessModelFromSlug(c.Param("model"))
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "unknown business model"})
	}

	profile, err := h.classifierService.Profile(c.Request().Context(), model)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profile))
}
