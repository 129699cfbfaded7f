package valuemap

import (
	"context"
	"fmt"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/logger"
)

// valueModule is the catalog module holding the value-positioning questions.
const valueModule = 2

// ---- Repository interfaces ----

type QuestionRepository interface {
	ByModule(ctx context.Context, module int) ([]domain.Question, error)
}

type InsightRepository interface {
	QuadrantProfile(ctx context.Context, quadrant domain.Quadrant) (domain.QuadrantProfile, error)
}

// ---- Usecase / Service ----

type Service struct {
	questionRepo QuestionRepository
	insightRepo  InsightRepository
}

func NewService(questionRepo QuestionRepository, insightRepo InsightRepository) *Service {
	return &Service{
		questionRepo: questionRepo,
		insightRepo:  insightRepo,
	}
}

// MapPosition averages the axis weights of the answered questions and
// places the product on the value map. Both axes are clamped to [-1, 1]
// and rounded to three decimals before the quadrant is decided.
func (s *Service) MapPosition(ctx context.Context, answers map[string]string) (domain.ValuePosition, error) {
	if err := ctx.Err(); err != nil {
		return domain.ValuePosition{}, fmt.Errorf("context error: %w", err)
	}

	questions, err := s.questionRepo.ByModule(ctx, valueModule)
	if err != nil {
		return domain.ValuePosition{}, fmt.Errorf("load value questions: %w", err)
	}

	var sumX, sumY float64
	var answered int

	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := optionByValue(q, value)
		if !ok {
			continue
		}
		sumX += opt.Scores[domain.DimX]
		sumY += opt.Scores[domain.DimY]
		answered++
	}

	x := round3(clamp(meanOrZero(sumX, answered), -1, 1))
	y := round3(clamp(meanOrZero(sumY, answered), -1, 1))
	quadrant := QuadrantFor(x, y)

	profile, err := s.insightRepo.QuadrantProfile(ctx, quadrant)
	if err != nil {
		return domain.ValuePosition{}, fmt.Errorf("load quadrant profile: %w", err)
	}

	logger.Debug("valuemap_position",
		"answered", answered,
		"x", x,
		"y", y,
		"quadrant", quadrant,
	)

	return domain.ValuePosition{
		X:           x,
		Y:           y,
		Quadrant:    quadrant,
		RenewalRisk: profile.RenewalRisk,
	}, nil
}

// Profile returns the narrative description for a quadrant.
func (s *Service) Profile(ctx context.Context, quadrant domain.Quadrant) (domain.QuadrantProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.QuadrantProfile{}, fmt.Errorf("context error: %w", err)
	}

	profile, err := s.insightRepo.QuadrantProfile(ctx, quadrant)
	if err != nil {
		return domain.QuadrantProfile{}, fmt.Errorf("load quadrant profile: %w", err)
	}

	return profile, nil
}

// Profiles returns every quadrant description for the map legend.
func (s *Service) Profiles(ctx context.Context) ([]domain.QuadrantProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	quadrants := []domain.Quadrant{
		domain.QuadrantRevenueEngine,
		domain.QuadrantEfficiencyMachine,
		domain.QuadrantPromiseZone,
		domain.QuadrantDangerZone,
	}

	out := make([]domain.QuadrantProfile, 0, len(quadrants))
	for _, q := range quadrants {
		profile, err := s.insightRepo.QuadrantProfile(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("load quadrant profile: %w", err)
		}
		out = append(out, profile)
	}

	return out, nil
}

func optionByValue(q domain.Question, value string) (domain.Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return domain.Option{}, false
}
