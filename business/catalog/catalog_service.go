package catalog

import (
	"context"
	"fmt"

	"pricingNavigator/domain"
)

// ---- Repository interfaces ----

type QuestionRepository interface {
	ByModule(ctx context.Context, module int) ([]domain.Question, error)
}

type CompsRepository interface {
	FindAll(ctx context.Context) ([]domain.Comp, error)
	FindByModel(ctx context.Context, model domain.BusinessModel) ([]domain.Comp, error)
}

type InsightRepository interface {
	ModelProfiles(ctx context.Context) ([]domain.ModelProfile, error)
	QuadrantProfiles(ctx context.Context) ([]domain.QuadrantProfile, error)
}

// ---- Usecase / Service ----

// Service exposes the static questionnaire, comp table, and narrative
// profiles to clients that render the flow themselves.
type Service struct {
	questionRepo QuestionRepository
	compsRepo    CompsRepository
	insightRepo  InsightRepository
}

func NewService(questionRepo QuestionRepository, compsRepo CompsRepository, insightRepo InsightRepository) *Service {
	return &Service{
		questionRepo: questionRepo,
		compsRepo:    compsRepo,
		insightRepo:  insightRepo,
	}
}

func (s *Service) Questions(ctx context.Context, module int) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	questions, err := s.questionRepo.ByModule(ctx, module)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	return questions, nil
}

// Comps filters the comp table by business model; an empty model returns
// the whole table.
func (s *Service) Comps(ctx context.Context, model domain.BusinessModel) ([]domain.Comp, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if model == "" {
		comps, err := s.compsRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("load comps: %w", err)
		}
		return comps, nil
	}

	comps, err := s.compsRepo.FindByModel(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("load comps: %w", err)
	}
	return comps, nil
}

func (s *Service) ModelProfiles(ctx context.Context) ([]domain.ModelProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	profiles, err := s.insightRepo.ModelProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load model profiles: %w", err)
	}
	return profiles, nil
}

func (s *Service) QuadrantProfiles(ctx context.Context) ([]domain.QuadrantProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	profiles, err := s.insightRepo.QuadrantProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load quadrant profiles: %w", err)
	}
	return profiles, nil
}
