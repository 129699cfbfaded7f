package static

import (
	"context"
	"fmt"
	"pricingNavigator/domain"
)

var compTable = []domain.Comp{
	{
		Name:          "DeepL",
		ModelType:     domain.ModelCopilot,
		PricingModel:  "Hybrid",
		PricingDetail: "Per user + per editable file",
		ValueDriver:   "Accuracy & customization",
	},
	{
		Name:          "EvenUp",
		ModelType:     domain.ModelService,
		PricingModel:  "Outcome-based",
		PricingDetail: "Per AI-generated demand package",
		ValueDriver:   "Legal time saved",
	},
	{
		Name:          "Graph AI",
		ModelType:     domain.ModelService,
		PricingModel:  "Outcome-based",
		PricingDetail: "Per case processed",
		ValueDriver:   "Regulatory compliance",
	},
	{
		Name:          "Intercom (Fin)",
		ModelType:     domain.ModelAgent,
		PricingModel:  "Outcome-based",
		PricingDetail: "$0.99 per AI resolution",
		ValueDriver:   "Support efficiency",
	},
	{
		Name:          "Leena AI",
		ModelType:     domain.ModelAgent,
		PricingModel:  "Outcome-based",
		PricingDetail: "ROI-basis, ticket threshold",
		ValueDriver:   "Back office automation",
	},
	{
		Name:          "Pepper Content",
		ModelType:     domain.ModelService,
		PricingModel:  "Outcome-based",
		PricingDetail: "Per word/graphic/content piece",
		ValueDriver:   "Assets created",
	},
	{
		Name:          "Resolve AI",
		ModelType:     domain.ModelAgent,
		PricingModel:  "Outcome-based",
		PricingDetail: "Pay when AI ensures uptime",
		ValueDriver:   "Reliability",
	},
	{
		Name:          "Sett.ai",
		ModelType:     domain.ModelAgent,
		PricingModel:  "Hybrid",
		PricingDetail: "Per module + share of ad spend",
		ValueDriver:   "Campaign performance",
	},
	{
		Name:          "Zenskar",
		ModelType:     domain.ModelService,
		PricingModel:  "Hybrid",
		PricingDetail: "Annual subscription + usage fees",
		ValueDriver:   "Billing automation",
	},
}

type CompsRepository struct{}

func NewCompsRepository() *CompsRepository {
	return &CompsRepository{}
}

func (r *CompsRepository) FindAll(ctx context.Context) ([]domain.Comp, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.Comp, len(compTable))
	copy(out, compTable)
	return out, nil
}

func (r *CompsRepository) FindByModel(ctx context.Context, model domain.BusinessModel) ([]domain.Comp, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.Comp, 0, len(compTable))
	for _, c := range compTable {
		if c.ModelType == model {
			out = append(out, c)
		}
	}
	return out, nil
}
