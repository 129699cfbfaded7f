package domain

type EconomicsInputs struct {
	CostPerUnit      float64 `json:"cost_per_unit"`
	PricePerUnit     float64 `json:"price_per_unit"`
	UnitsPerCustomer int     `json:"units_per_customer"` // per month
	Customers        int     `json:"customers"`
}

type MarginStanding string

const (
	StandingHealthy MarginStanding = "healthy" // above typical AI margins
	StandingWatch   MarginStanding = "watch"
	StandingAtRisk  MarginStanding = "at_risk"
)

type EconomicsSnapshot struct {
	GrossMargin       float64        `json:"gross_margin"` // percentage
	ProfitPerCustomer float64        `json:"profit_per_customer"`
	TotalProfit       float64        `json:"total_profit"`
	SaaSBenchmark     float64        `json:"saas_benchmark"`
	AIBenchmark       float64        `json:"ai_benchmark"`
	Standing          MarginStanding `json:"standing"`
}
