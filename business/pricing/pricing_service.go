package pricing

import (
	"context"
	"fmt"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/logger"
)

// maxPlanComps bounds the comp table attached to a plan.
const maxPlanComps = 3

// ---- Repository interfaces ----

type CompsRepository interface {
	FindByModel(ctx context.Context, model domain.BusinessModel) ([]domain.Comp, error)
}

type InsightRepository interface {
	Principles(ctx context.Context, model domain.BusinessModel) ([]string, error)
}

// ---- Usecase / Service ----

type Service struct {
	compsRepo   CompsRepository
	insightRepo InsightRepository
}

func NewService(compsRepo CompsRepository, insightRepo InsightRepository) *Service {
	return &Service{
		compsRepo:   compsRepo,
		insightRepo: insightRepo,
	}
}

// GenerateFormula computes the concrete pricing formula for the inputs.
func (s *Service) GenerateFormula(ctx context.Context, in domain.PricingInputs) (domain.PricingFormula, error) {
	if err := ctx.Err(); err != nil {
		return domain.PricingFormula{}, fmt.Errorf("context error: %w", err)
	}

	formula := buildFormula(in)

	logger.Debug("pricing_formula",
		"formula_type", effectiveFormulaType(in.FormulaType),
		"deal_size", in.DealSize,
		"fee_annual", formula.PlatformFeeAnnual,
	)

	FormulasTotal.WithLabelValues(string(effectiveFormulaType(in.FormulaType))).Inc()

	return formula, nil
}

// Recommend picks the pricing model for a business model, quadrant, and
// cost variance combination.
func (s *Service) Recommend(ctx context.Context, model domain.BusinessModel, quadrant domain.Quadrant, variance domain.CostVariance) (domain.PricingRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return domain.PricingRecommendation{}, fmt.Errorf("context error: %w", err)
	}

	rec := recommendModel(model, quadrant, variance)

	logger.Debug("pricing_recommendation",
		"business_model", model,
		"quadrant", quadrant,
		"cost_variance", variance,
		"model_name", rec.ModelName,
	)

	return rec, nil
}

// Plan bundles the recommendation, the concrete formula behind it, the
// closest comparable companies, and the per-model pricing principles.
// The recommendation decides the formula type; any type set on the
// inputs is ignored.
func (s *Service) Plan(ctx context.Context, model domain.BusinessModel, quadrant domain.Quadrant, variance domain.CostVariance, in domain.PricingInputs) (domain.PricingPlan, error) {
	if err := ctx.Err(); err != nil {
		return domain.PricingPlan{}, fmt.Errorf("context error: %w", err)
	}

	rec := recommendModel(model, quadrant, variance)

	in.FormulaType = rec.FormulaType
	formula := buildFormula(in)

	comps, err := s.compsRepo.FindByModel(ctx, model)
	if err != nil {
		return domain.PricingPlan{}, fmt.Errorf("load comps: %w", err)
	}
	if len(comps) > maxPlanComps {
		comps = comps[:maxPlanComps]
	}

	principles, err := s.insightRepo.Principles(ctx, model)
	if err != nil {
		return domain.PricingPlan{}, fmt.Errorf("load principles: %w", err)
	}

	logger.Debug("pricing_plan",
		"business_model", model,
		"quadrant", quadrant,
		"model_name", rec.ModelName,
		"formula_type", rec.FormulaType,
	)

	FormulasTotal.WithLabelValues(string(rec.FormulaType)).Inc()

	return domain.PricingPlan{
		BusinessModel:  model,
		Quadrant:       quadrant,
		Recommendation: rec,
		Formula:        formula,
		Comps:          comps,
		Principles:     principles,
	}, nil
}
