package domain

type InferenceMode string

const (
	InferenceByTokens      InferenceMode = "tokens"
	InferenceByMonthlyBill InferenceMode = "monthly_bill"
)

type LLMPreset struct {
	Provider  string  `json:"provider"`
	CostPer1K float64 `json:"cost_per_1k"` // blended input+output $ per 1K tokens
}

type UnitCostInputs struct {
	UnitDescription string        `json:"unit_description"`
	Mode            InferenceMode `json:"mode"`

	// tokens mode
	Provider             string  `json:"provider,omitempty"`
	CostPer1KTokens      float64 `json:"cost_per_1k_tokens,omitempty"`
	TokensPerInteraction float64 `json:"tokens_per_interaction,omitempty"`
	CallsPerUnit         float64 `json:"calls_per_unit,omitempty"`

	// monthly-bill mode
	MonthlySpend  float64 `json:"monthly_spend,omitempty"`
	UnitsPerMonth float64 `json:"units_per_month,omitempty"`

	// human-in-the-loop
	HumanReview      bool    `json:"human_review"`
	ReviewPercent    float64 `json:"review_percent,omitempty"`
	MinutesPerReview float64 `json:"minutes_per_review,omitempty"`
	HourlyCost       float64 `json:"hourly_cost,omitempty"`

	// infrastructure overhead
	MonthlyInfra float64 `json:"monthly_infra,omitempty"`
	MonthlyUnits float64 `json:"monthly_units,omitempty"`
}

type UnitCostBreakdown struct {
	UnitDescription string  `json:"unit_description"`
	InferenceCost   float64 `json:"inference_cost"`
	HumanCost       float64 `json:"human_cost"`
	InfraCost       float64 `json:"infra_cost"`
	TotalCost       float64 `json:"total_cost"`

	InferenceShare float64 `json:"inference_share"` // percentage of total
	HumanShare     float64 `json:"human_share"`
	InfraShare     float64 `json:"infra_share"`

	// minimum viable price per unit at the target gross margin
	TargetMargin float64 `json:"target_margin"`
	MinimumPrice float64 `json:"minimum_price"`
}
