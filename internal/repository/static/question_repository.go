package static

import (
	"context"
	"errors"
	"fmt"
	"pricingNavigator/domain"
)

// QuestionRepository serves the questionnaire catalog. The catalog is
// compiled in; methods hand out copies so callers can't mutate it.
type QuestionRepository struct {
	byModule map[int][]domain.Question
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{
		byModule: map[int][]domain.Question{
			1: module1Questions,
			2: module2Questions,
			3: module3Questions,
			4: module4Questions,
		},
	}
}

func (r *QuestionRepository) ByModule(ctx context.Context, module int) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	questions, ok := r.byModule[module]
	if !ok {
		return nil, errors.New("module not found")
	}

	out := make([]domain.Question, len(questions))
	copy(out, questions)
	return out, nil
}

func (r *QuestionRepository) ByID(ctx context.Context, id string) (domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return domain.Question{}, fmt.Errorf("context error: %w", err)
	}

	for _, questions := range r.byModule {
		for _, q := range questions {
			if q.ID == id {
				return q, nil
			}
		}
	}

	return domain.Question{}, errors.New("question not found")
}
