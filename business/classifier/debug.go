package classifier

import (
	"context"
	"fmt"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/logger"
)

// DebugClassify returns the full scoring breakdown for inspection:
// the per-answer contributions alongside the accumulated totals.
func (s *Service) DebugClassify(ctx context.Context, answers map[string]string) (domain.ClassificationBreakdown, error) {
	if err := ctx.Err(); err != nil {
		return domain.ClassificationBreakdown{}, fmt.Errorf("context error: %w", err)
	}

	questions, err := s.questionRepo.ByModule(ctx, classifierModule)
	if err != nil {
		return domain.ClassificationBreakdown{}, fmt.Errorf("load classifier questions: %w", err)
	}

	totals := map[string]float64{
		domain.DimCopilot: 0,
		domain.DimAgent:   0,
		domain.DimService: 0,
	}
	contributions := make([]domain.QuestionContribution, 0, len(answers))

	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := optionByValue(q, value)
		if !ok {
			continue
		}

		scores := make(map[string]float64, len(opt.Scores))
		for dim, weight := range opt.Scores {
			totals[dim] += weight
			scores[dim] = weight
		}

		contributions = append(contributions, domain.QuestionContribution{
			QuestionID: q.ID,
			Value:      value,
			Scores:     scores,
		})
	}

	dim := dominantDimension(totals)

	logger.Debug("classifier_debug_classify",
		"answered", len(answers),
		"scored", len(contributions),
		"top_dimension", dim,
	)

	return domain.ClassificationBreakdown{
		Model:         modelForDimension(dim),
		Confidence:    confidenceFor(totals, dim),
		Totals:        totals,
		Contributions: contributions,
	}, nil
}
