//go:build !integration

package assessment

import (
	"context"
	"testing"

	"pricingNavigator/business/classifier"
	"pricingNavigator/business/health"
	"pricingNavigator/business/pricing"
	"pricingNavigator/business/valuemap"
	"pricingNavigator/domain"
	"pricingNavigator/internal/repository/static"
)

// answer sets that pull the classifier toward each business model
var sweepClassifierAnswers = []map[string]string{
	{
		"m1_q1": "yes",
		"m1_q2": "no",
		"m1_q3": "partial",
		"m1_q4": "chat",
		"m1_q5": "advisor",
	},
	{
		"m1_q1": "no",
		"m1_q2": "yes",
		"m1_q3": "no",
		"m1_q4": "automation",
		"m1_q5": "executor",
	},
	{
		"m1_q1": "no",
		"m1_q2": "partial",
		"m1_q3": "yes",
		"m1_q4": "output",
		"m1_q5": "service_provider",
	},
}

// answer sets landing in different value quadrants
var sweepValueAnswers = []map[string]string{
	{
		"m2_q1": "revenue",
		"m2_q2": "yes",
		"m2_q3": "lose_revenue",
		"m2_q4": "dashboard",
		"m2_q5": "no",
	},
	{
		"m2_q1": "cost_reduction",
		"m2_q2": "yes",
		"m2_q3": "slower",
		"m2_q4": "dashboard",
		"m2_q5": "yes",
	},
	{
		"m2_q1": "time_savings",
		"m2_q2": "no",
		"m2_q3": "no_pain",
		"m2_q4": "qualitative",
		"m2_q5": "partial",
	},
}

var sweepVariances = []domain.CostVariance{
	domain.VarianceLow,
	domain.VarianceModerate,
	domain.VarianceHigh,
}

// scenario params
const (
	sweepDealSteps  = 6
	sweepBaseDeal   = 2500.0
	sweepDealStride = 24000.0
)

func TestRecommendationSpread_AcrossProfiles(t *testing.T) {
	questions := static.NewQuestionRepository()
	comps := static.NewCompsRepository()
	insights := static.NewInsightRepository()

	svc := NewService(
		classifier.NewService(questions, insights),
		valuemap.NewService(questions, insights),
		pricing.NewService(comps, insights),
		health.NewService(questions, insights),
		DefaultConfig(),
	)

	ctx := context.Background()

	runs := 0
	byFormula := make(map[domain.FormulaType]int)
	byQuadrant := make(map[domain.Quadrant]int)
	riskyRuns := 0

	for _, classifierAnswers := range sweepClassifierAnswers {
		for _, valueAnswers := range sweepValueAnswers {
			for _, variance := range sweepVariances {
				for k := 0; k < sweepDealSteps; k++ {
					deal := sweepBaseDeal + float64(k)*sweepDealStride

					report, err := svc.Run(ctx, domain.AssessmentInput{
						ClassifierAnswers: classifierAnswers,
						ValueAnswers:      valueAnswers,
						Pricing: domain.AssessmentPricing{
							DealSize:     deal,
							CostVariance: variance,
						},
					})
					if err != nil {
						t.Fatalf("run assessment: %v", err)
					}

					if report.Plan.Recommendation.ModelName == "" {
						t.Fatalf("empty recommendation for variance=%s deal=%.0f", variance, deal)
					}
					if report.Plan.Formula.PlatformFeeMonthly <= 0 {
						t.Fatalf("non-positive monthly fee for %s at deal=%.0f",
							report.Plan.Recommendation.FormulaType, deal)
					}

					runs++
					byFormula[report.Plan.Recommendation.FormulaType]++
					byQuadrant[report.Position.Quadrant]++
					if report.Position.RenewalRisk {
						riskyRuns++
					}
				}
			}
		}
	}

	t.Logf("[SWEEP] runs=%d riskyRuns=%d", runs, riskyRuns)
	for formula, n := range byFormula {
		t.Logf("[FORMULA] %s=%d", formula, n)
	}
	for quadrant, n := range byQuadrant {
		t.Logf("[QUADRANT] %s=%d", quadrant, n)
	}

	if len(byFormula) < 3 {
		t.Fatalf("expected the sweep to reach at least 3 formula types, got %d", len(byFormula))
	}
	if len(byQuadrant) < 3 {
		t.Fatalf("expected the sweep to reach at least 3 quadrants, got %d", len(byQuadrant))
	}
}
