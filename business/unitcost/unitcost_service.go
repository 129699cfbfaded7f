package unitcost

import (
	"context"
	"fmt"
	"math"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/logger"
)

type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{
		cfg: cfg,
	}
}

// Presets lists the per-provider blended token rates.
func (s *Service) Presets(ctx context.Context) ([]domain.LLMPreset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.LLMPreset, len(llmPresets))
	copy(out, llmPresets)
	return out, nil
}

// Calculate adds up the three cost layers of delivering one unit:
// inference, human review, and amortized infrastructure. The minimum
// price is what the unit must sell for at the configured target margin.
func (s *Service) Calculate(ctx context.Context, in domain.UnitCostInputs) (domain.UnitCostBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return domain.UnitCostBreakdown{}, fmt.Errorf("context error: %w", err)
	}

	inference := s.inferenceCost(in)
	human := humanCost(in)
	infra := infraCost(in)
	total := inference + human + infra

	breakdown := domain.UnitCostBreakdown{
		UnitDescription: in.UnitDescription,
		InferenceCost:   inference,
		HumanCost:       human,
		InfraCost:       infra,
		TotalCost:       total,
		TargetMargin:    s.cfg.TargetMargin,
	}

	if total > 0 {
		breakdown.InferenceShare = round1(inference / total * 100)
		breakdown.HumanShare = round1(human / total * 100)
		breakdown.InfraShare = round1(infra / total * 100)

		if s.cfg.TargetMargin < 100 {
			breakdown.MinimumPrice = round2(total / (1 - s.cfg.TargetMargin/100))
		}
	}

	logger.Debug("unitcost_calculate",
		"mode", in.Mode,
		"total_cost", total,
		"minimum_price", breakdown.MinimumPrice,
	)

	return breakdown, nil
}

func (s *Service) inferenceCost(in domain.UnitCostInputs) float64 {
	if in.Mode == domain.InferenceByMonthlyBill {
		if in.UnitsPerMonth <= 0 {
			return 0
		}
		return in.MonthlySpend / in.UnitsPerMonth
	}

	costPer1K := in.CostPer1KTokens
	if costPer1K <= 0 {
		costPer1K = presetCostFor(in.Provider)
	}

	return in.TokensPerInteraction / 1000 * costPer1K * in.CallsPerUnit
}

func humanCost(in domain.UnitCostInputs) float64 {
	if !in.HumanReview {
		return 0
	}
	return in.ReviewPercent / 100 * (in.MinutesPerReview / 60) * in.HourlyCost
}

func infraCost(in domain.UnitCostInputs) float64 {
	if in.MonthlyUnits <= 0 {
		return 0
	}
	return in.MonthlyInfra / in.MonthlyUnits
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
