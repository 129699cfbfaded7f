package assessment

import "pricingNavigator/domain"

// Config holds the fallbacks applied when a submission leaves the
// pricing step blank.
type Config struct {
	DefaultCostPerUnit  float64
	DefaultTargetMargin float64
	DefaultDealSize     float64
	DefaultSegment      domain.CustomerSegment
	DefaultVariance     domain.CostVariance
}

const (
	defaultCostPerUnit  = 1.0
	defaultTargetMargin = 65.0
	defaultDealSize     = 15000.0
)

func DefaultConfig() Config {
	return Config{
		DefaultCostPerUnit:  defaultCostPerUnit,
		DefaultTargetMargin: defaultTargetMargin,
		DefaultDealSize:     defaultDealSize,
		DefaultSegment:      domain.SegmentMidMarket,
		DefaultVariance:     domain.VarianceModerate,
	}
}

// pricingInputs merges the submitted pricing answers with the defaults.
func (c Config) pricingInputs(p domain.AssessmentPricing) (domain.PricingInputs, domain.CostVariance) {
	in := domain.PricingInputs{
		CostPerUnit:     p.CostPerUnit,
		TargetMargin:    p.TargetMargin,
		DealSize:        p.DealSize,
		CustomerSegment: p.CustomerSegment,
	}

	if in.CostPerUnit <= 0 {
		in.CostPerUnit = c.DefaultCostPerUnit
	}
	if in.TargetMargin <= 0 {
		in.TargetMargin = c.DefaultTargetMargin
	}
	if in.DealSize <= 0 {
		in.DealSize = c.DefaultDealSize
	}
	if in.CustomerSegment == "" {
		in.CustomerSegment = c.DefaultSegment
	}

	variance := p.CostVariance
	if variance == "" {
		variance = c.DefaultVariance
	}

	return in, variance
}
