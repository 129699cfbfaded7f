package assessment

import (
	"context"
	"fmt"
	"time"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/logger"
)

// ---- Engine interfaces ----

type Classifier interface {
	Classify(ctx context.Context, answers map[string]string) (domain.Classification, error)
	Profile(ctx context.Context, model domain.BusinessModel) (domain.ModelProfile, error)
}

type ValueMapper interface {
	MapPosition(ctx context.Context, answers map[string]string) (domain.ValuePosition, error)
	Profile(ctx context.Context, quadrant domain.Quadrant) (domain.QuadrantProfile, error)
}

type PricingPlanner interface {
	Plan(ctx context.Context, model domain.BusinessModel, quadrant domain.Quadrant, variance domain.CostVariance, in domain.PricingInputs) (domain.PricingPlan, error)
}

type HealthScorer interface {
	Report(ctx context.Context, scores map[string]int) (domain.HealthReport, error)
}

// ---- Usecase / Service ----

// Service runs the full assessment: classify the business model, place
// it on the value map, derive the pricing plan, and score readiness.
type Service struct {
	classifier Classifier
	mapper     ValueMapper
	planner    PricingPlanner
	scorer     HealthScorer
	cfg        Config
}

func NewService(
	classifier Classifier,
	mapper ValueMapper,
	planner PricingPlanner,
	scorer HealthScorer,
	cfg Config,
) *Service {
	return &Service{
		classifier: classifier,
		mapper:     mapper,
		planner:    planner,
		scorer:     scorer,
		cfg:        cfg,
	}
}

// Run executes the four steps in order. Each step feeds the next: the
// classification picks the model, the position picks the quadrant, and
// both steer the pricing plan. Health scoring runs only when scores
// were submitted.
func (s *Service) Run(ctx context.Context, input domain.AssessmentInput) (domain.AssessmentReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()

	classification, err := s.classifier.Classify(ctx, input.ClassifierAnswers)
	if err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("classify business model: %w", err)
	}

	modelProfile, err := s.classifier.Profile(ctx, classification.Model)
	if err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("load model profile: %w", err)
	}

	position, err := s.mapper.MapPosition(ctx, input.ValueAnswers)
	if err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("map value position: %w", err)
	}

	quadrantProfile, err := s.mapper.Profile(ctx, position.Quadrant)
	if err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("load quadrant profile: %w", err)
	}

	pricingIn, variance := s.cfg.pricingInputs(input.Pricing)

	plan, err := s.planner.Plan(ctx, classification.Model, position.Quadrant, variance, pricingIn)
	if err != nil {
		return domain.AssessmentReport{}, fmt.Errorf("build pricing plan: %w", err)
	}

	report := domain.AssessmentReport{
		Classification:  classification,
		ModelProfile:    modelProfile,
		Position:        position,
		QuadrantProfile: quadrantProfile,
		Plan:            plan,
		GeneratedAt:     time.Now().UTC(),
	}

	if len(input.HealthScores) > 0 {
		health, err := s.scorer.Report(ctx, input.HealthScores)
		if err != nil {
			return domain.AssessmentReport{}, fmt.Errorf("score pricing health: %w", err)
		}
		report.Health = &health
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("assessment_run",
		"trace_id", tid,
		"model", classification.Model,
		"confidence", classification.Confidence,
		"quadrant", position.Quadrant,
		"recommended", plan.Recommendation.ModelName,
		"health_scored", report.Health != nil,
		"took", time.Since(start),
	)

	AssessmentsTotal.WithLabelValues(string(classification.Model), string(position.Quadrant)).Inc()

	return report, nil
}
