package economics

import (
	"context"
	"fmt"
	"math"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/logger"
)

// Reference gross margins for the benchmark comparison.
const (
	saasBenchmark = 80.0
	aiBenchmark   = 55.0
)

// Margin standings: above 65% beats typical AI economics, 50-65% needs
// watching, below 50% erodes the business.
const (
	healthyMarginFloor = 65.0
	watchMarginFloor   = 50.0
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Snapshot computes live unit economics: gross margin against the SaaS
// and AI benchmarks, plus monthly profit per customer and in total.
func (s *Service) Snapshot(ctx context.Context, in domain.EconomicsInputs) (domain.EconomicsSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.EconomicsSnapshot{}, fmt.Errorf("context error: %w", err)
	}

	margin := 0.0
	if in.PricePerUnit > 0 {
		margin = round1((in.PricePerUnit - in.CostPerUnit) / in.PricePerUnit * 100)
	}

	profitPerCustomer := round2((in.PricePerUnit - in.CostPerUnit) * float64(in.UnitsPerCustomer))
	totalProfit := round2(profitPerCustomer * float64(in.Customers))

	snapshot := domain.EconomicsSnapshot{
		GrossMargin:       margin,
		ProfitPerCustomer: profitPerCustomer,
		TotalProfit:       totalProfit,
		SaaSBenchmark:     saasBenchmark,
		AIBenchmark:       aiBenchmark,
		Standing:          standingFor(margin),
	}

	logger.Debug("economics_snapshot",
		"gross_margin", margin,
		"total_profit", totalProfit,
		"standing", snapshot.Standing,
	)

	return snapshot, nil
}

func standingFor(margin float64) domain.MarginStanding {
	switch {
	case margin > healthyMarginFloor:
		return domain.StandingHealthy
	case margin >= watchMarginFloor:
		return domain.StandingWatch
	default:
		return domain.StandingAtRisk
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
