package domain

type FormulaType string

const (
	FormulaHybrid   FormulaType = "hybrid"
	FormulaOutcome  FormulaType = "outcome"
	FormulaWorkflow FormulaType = "workflow"
	FormulaPerSeat  FormulaType = "per_seat"
)

type CustomerSegment string

const (
	SegmentSMB        CustomerSegment = "smb"
	SegmentMidMarket  CustomerSegment = "mid_market"
	SegmentEnterprise CustomerSegment = "enterprise"
)

type CostVariance string

const (
	VarianceLow      CostVariance = "low"
	VarianceModerate CostVariance = "moderate"
	VarianceHigh     CostVariance = "high"
)

type PricingInputs struct {
	CostPerUnit     float64         `json:"cost_per_unit"`
	TargetMargin    float64         `json:"target_margin"` // percentage, e.g. 65
	DealSize        float64         `json:"deal_size"`     // target annual deal size in dollars
	FormulaType     FormulaType     `json:"formula_type"`
	CustomerSegment CustomerSegment `json:"customer_segment"`
}

type PricingFormula struct {
	ModelName             string  `json:"model_name"`
	PlatformFeeAnnual     float64 `json:"platform_fee_annual"`
	PlatformFeeMonthly    float64 `json:"platform_fee_monthly"`
	IncludedUnits         int     `json:"included_units"`
	OverageRate           float64 `json:"overage_rate"`
	EffectivePricePerUnit float64 `json:"effective_price_per_unit"`
	GrossMargin           float64 `json:"gross_margin"` // percentage, 1 decimal
	Explanation           string  `json:"explanation"`
}

type PricingRecommendation struct {
	ModelName   string      `json:"model_name"`
	Rationale   string      `json:"rationale"`
	FormulaType FormulaType `json:"formula_type"`
}

// PricingPlan is the full module-3 result: the recommended model, the
// concrete formula behind it, comparable companies, and the per-model
// pricing principles.
type PricingPlan struct {
	BusinessModel  BusinessModel         `json:"business_model"`
	Quadrant       Quadrant              `json:"quadrant"`
	Recommendation PricingRecommendation `json:"recommendation"`
	Formula        PricingFormula        `json:"formula"`
	Comps          []Comp                `json:"comps"`
	Principles     []string              `json:"principles"`
}
