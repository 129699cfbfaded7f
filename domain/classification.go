package domain

type BusinessModel string

const (
	ModelCopilot BusinessModel = "Copilot"
	ModelAgent   BusinessModel = "Agent"
	ModelService BusinessModel = "AI-enabled Service"
)

// Score dimension keys used by module-1 option weights.
const (
	DimCopilot = "copilot_score"
	DimAgent   = "agent_score"
	DimService = "service_score"
)

type Classification struct {
	Model      BusinessModel `json:"model"`
	Confidence float64       `json:"confidence"` // percentage, 1 decimal
}

type QuestionContribution struct {
	QuestionID string             `json:"question_id"`
	Value      string             `json:"value"`
	Scores     map[string]float64 `json:"scores"`
}

type ClassificationBreakdown struct {
	Model         BusinessModel          `json:"model"`
	Confidence    float64                `json:"confidence"`
	Totals        map[string]float64     `json:"totals"`        // per-dimension accumulated weight
	Contributions []QuestionContribution `json:"contributions"` // one entry per scored answer
}

type ModelProfile struct {
	Model               BusinessModel `json:"model"`
	Description         string        `json:"description"`
	Examples            []string      `json:"examples"`
	PricingImplications string        `json:"pricing_implications"`
}
