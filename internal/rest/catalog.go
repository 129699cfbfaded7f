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
	CatalogHandler struct {
		validate       *validator.Validate
		catalogService CatalogService
	}

	CatalogService interface {
		Questions(ctx context.Context, module int) ([]domain.Question, error)
		Comps(ctx context.Context, model domain.BusinessModel) ([]domain.Comp, error)
		ModelProfiles(ctx context.Context) ([]domain.ModelProfile, error)
	}

	QuestionsQuery struct {
		Module int `query:"module" validate:"required,gte=1,lte=4"`
	}

	CompsQuery struct {
		Model string `query:"model" validate:"omitempty,oneof=copilot agent service"`
	}
)

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		validate:       validator.New(),
		catalogService: svc,
	}
}

// GET /api/v1/catalog/questions?module=1
func (h *CatalogHandler) GetQuestions(c echo.Context) error {
	var q QuestionsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	questions, err := h.catalogService.Questions(c.Request().Context(), q.Module)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(questions))
}

// GET /api/v1/catalog/comps?model=agent
func (h *CatalogHandler) GetComps(c echo.Context) error {
	var q CompsQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var model domain.BusinessModel
	if q.Model != "" {
		model, _ = businessModelFromSlug(q.Model)
	}

	comps, err := h.catalogService.Comps(c.Request().Context(), model)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(comps))
}

func (h *CatalogHandler) GetModels(c echo.Context) error {
	profiles, err := h.catalogService.ModelProfiles(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profiles))
}
