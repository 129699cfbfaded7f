package domain

import "time"

// AssessmentPricing carries the deal-shape numbers for the pricing step.
// Zero values fall back to the service defaults so a partial submission
// still produces a plan.
type AssessmentPricing struct {
	CostPerUnit     float64         `json:"cost_per_unit,omitempty"`
	TargetMargin    float64         `json:"target_margin,omitempty"`
	DealSize        float64         `json:"deal_size,omitempty"`
	CustomerSegment CustomerSegment `json:"customer_segment,omitempty"`
	CostVariance    CostVariance    `json:"cost_variance,omitempty"`
}

// AssessmentInput bundles every answer set into one request, so no state
// is threaded between steps.
type AssessmentInput struct {
	ClassifierAnswers map[string]string `json:"classifier_answers"`
	ValueAnswers      map[string]string `json:"value_answers"`
	Pricing           AssessmentPricing `json:"pricing"`
	HealthScores      map[string]int    `json:"health_scores"`
}

type AssessmentReport struct {
	Classification  Classification  `json:"classification"`
	ModelProfile    ModelProfile    `json:"model_profile"`
	Position        ValuePosition   `json:"position"`
	QuadrantProfile QuadrantProfile `json:"quadrant_profile"`
	Plan            PricingPlan     `json:"plan"`
	Health          *HealthReport   `json:"health,omitempty"` // only when health scores were submitted
	GeneratedAt     time.Time       `json:"generated_at"`
}
