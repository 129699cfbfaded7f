package classifier

import (
	"context"
	"fmt"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/logger"
)

// ---- Repository interfaces ----

type QuestionRepository interface {
	ByModule(ctx context.Context, module int) ([]domain.Question, error)
}

type InsightRepository interface {
	ModelProfile(ctx context.Context, model domain.BusinessModel) (domain.ModelProfile, error)
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

// Classify scores the delivery-model answers and returns the dominant
// business model with its confidence share.
func (s *Service) Classify(ctx context.Context, answers map[string]string) (domain.Classification, error) {
	if err := ctx.Err(); err != nil {
		return domain.Classification{}, fmt.Errorf("context error: %w", err)
	}

	questions, err := s.questionRepo.ByModule(ctx, classifierModule)
	if err != nil {
		return domain.Classification{}, fmt.Errorf("load classifier questions: %w", err)
	}

	totals := scoreAnswers(questions, answers)
	dim := dominantDimension(totals)

	classification := domain.Classification{
		Model:      modelForDimension(dim),
		Confidence: confidenceFor(totals, dim),
	}

	logger.Debug("classifier_classify",
		"answered", len(answers),
		"model", classification.Model,
		"confidence", classification.Confidence,
	)

	ClassificationsTotal.WithLabelValues(string(classification.Model)).Inc()

	return classification, nil
}

// Profile returns the narrative description for a classified model.
func (s *Service) Profile(ctx context.Context, model domain.BusinessModel) (domain.ModelProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.ModelProfile{}, fmt.Errorf("context error: %w", err)
	}

	profile, err := s.insightRepo.ModelProfile(ctx, model)
	if err != nil {
		return domain.ModelProfile{}, fmt.Errorf("load model profile: %w", err)
	}

	return profile, nil
}
