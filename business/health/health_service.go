package health

import (
	"context"
	"fmt"
	"math"
	"sort"

	"pricingNavigator/domain"
	"pricingNavigator/pkg/logger"
)

// healthModule is the catalog module holding the readiness statements.
const healthModule = 4

// topPriorities is how many weak spots a score calls out.
const topPriorities = 3

// maxScorePerQuestion is the top of the confidence scale.
const maxScorePerQuestion = 5

// highScoreFloor is the score at or above which a dimension is
// considered covered.
const highScoreFloor = 4

// ---- Repository interfaces ----

type QuestionRepository interface {
	ByModule(ctx context.Context, module int) ([]domain.Question, error)
}

type InsightRepository interface {
	HealthAction(ctx context.Context, questionID string) (string, error)
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

// Score aggregates the 1-5 confidence answers into an overall readiness
// percentage, a maturity label, and the three lowest-scored dimensions.
func (s *Service) Score(ctx context.Context, scores map[string]int) (domain.HealthScore, error) {
	if err := ctx.Err(); err != nil {
		return domain.HealthScore{}, fmt.Errorf("context error: %w", err)
	}

	questions, err := s.questionRepo.ByModule(ctx, healthModule)
	if err != nil {
		return domain.HealthScore{}, fmt.Errorf("load health questions: %w", err)
	}

	result := domain.HealthScore{
		Percentage:  scorePercentage(scores),
		PriorityIDs: lowestScored(scores, questions, topPriorities),
	}
	result.Label = labelFor(result.Percentage)

	logger.Debug("health_score",
		"answered", len(scores),
		"percentage", result.Percentage,
		"label", result.Label,
	)

	return result, nil
}

// Report extends Score with per-dimension areas and concrete follow-up
// actions for the priority gaps.
func (s *Service) Report(ctx context.Context, scores map[string]int) (domain.HealthReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.HealthReport{}, fmt.Errorf("context error: %w", err)
	}

	score, err := s.Score(ctx, scores)
	if err != nil {
		return domain.HealthReport{}, err
	}

	questions, err := s.questionRepo.ByModule(ctx, healthModule)
	if err != nil {
		return domain.HealthReport{}, fmt.Errorf("load health questions: %w", err)
	}

	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	areas := make([]domain.AreaScore, 0, len(questions))
	for _, q := range questions {
		value, ok := scores[q.ID]
		if !ok {
			continue
		}
		areas = append(areas, domain.AreaScore{
			QuestionID: q.ID,
			Area:       q.Area,
			Score:      value,
		})
	}

	priorities := make([]domain.PriorityAction, 0, len(score.PriorityIDs))
	for _, id := range score.PriorityIDs {
		action, err := s.insightRepo.HealthAction(ctx, id)
		if err != nil {
			action = ""
		}
		priorities = append(priorities, domain.PriorityAction{
			QuestionID: id,
			Area:       byID[id].Area,
			Question:   byID[id].Text,
			Score:      scores[id],
			Action:     action,
		})
	}

	return domain.HealthReport{
		HealthScore: score,
		Areas:       areas,
		Priorities:  priorities,
		AllHigh:     allHigh(scores),
	}, nil
}

func scorePercentage(scores map[string]int) float64 {
	maxPossible := len(scores) * maxScorePerQuestion
	if maxPossible == 0 {
		return 0
	}

	total := 0
	for _, v := range scores {
		total += v
	}

	return round1(float64(total) / float64(maxPossible) * 100)
}

func labelFor(percentage float64) string {
	switch {
	case percentage >= 85:
		return "Advanced"
	case percentage >= 70:
		return "Strong"
	case percentage >= 50:
		return "Developing"
	default:
		return "Early Stage"
	}
}

// lowestScored returns up to n question ids ordered by ascending score.
// Ties resolve in catalog order; ids outside the catalog sort after it,
// alphabetically.
func lowestScored(scores map[string]int, questions []domain.Question, n int) []string {
	catalogRank := make(map[string]int, len(questions))
	for i, q := range questions {
		catalogRank[q.ID] = i
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] < scores[ids[j]]
		}
		ri, iKnown := catalogRank[ids[i]]
		rj, jKnown := catalogRank[ids[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return ids[i] < ids[j]
		}
	})

	if len(ids) > n {
		ids = ids[:n]
	}
	return ids
}

func allHigh(scores map[string]int) bool {
	if len(scores) == 0 {
		return false
	}
	for _, v := range scores {
		if v < highScoreFloor {
			return false
		}
	}
	return true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
