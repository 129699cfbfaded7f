package classifier

import (
	"math"

	"pricingNavigator/domain"
)

// classifierModule is the catalog module holding the delivery-model questions.
const classifierModule = 1

// dimensionOrder fixes the winner when two dimensions tie: the earlier
// entry wins.
var dimensionOrder = []string{domain.DimCopilot, domain.DimAgent, domain.DimService}

var dimensionModels = map[string]domain.BusinessModel{
	domain.DimCopilot: domain.ModelCopilot,
	domain.DimAgent:   domain.ModelAgent,
	domain.DimService: domain.ModelService,
}

// scoreAnswers accumulates option weights for every answered question.
// Unknown question ids and unknown option values are skipped.
func scoreAnswers(questions []domain.Question, answers map[string]string) map[string]float64 {
	totals := map[string]float64{
		domain.DimCopilot: 0,
		domain.DimAgent:   0,
		domain.DimService: 0,
	}

	for _, q := range questions {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		opt, ok := optionByValue(q, value)
		if !ok {
			continue
		}
		for dim, weight := range opt.Scores {
			totals[dim] += weight
		}
	}

	return totals
}

func optionByValue(q domain.Question, value string) (domain.Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return domain.Option{}, false
}

func dominantDimension(totals map[string]float64) string {
	top := dimensionOrder[0]
	for _, dim := range dimensionOrder[1:] {
		if totals[dim] > totals[top] {
			top = dim
		}
	}
	return top
}

func modelForDimension(dim string) domain.BusinessModel {
	return dimensionModels[dim]
}

// confidenceFor reports the winning dimension's share of all accumulated
// weight as a percentage with one decimal. Zero total means zero confidence.
func confidenceFor(totals map[string]float64, dim string) float64 {
	var sum float64
	for _, v := range totals {
		sum += v
	}
	if sum <= 0 {
		return 0.0
	}
	return round1(totals[dim] / sum * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
