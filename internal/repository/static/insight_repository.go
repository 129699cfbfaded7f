package static

import (
	"context"
	"errors"
	"fmt"
	"pricingNavigator/domain"
)

var modelProfiles = map[domain.BusinessModel]domain.ModelProfile{
	domain.ModelCopilot: {
		Model: domain.ModelCopilot,
		Description: "Your AI works alongside a human user in real-time, augmenting their " +
			"capabilities rather than replacing them. The user remains in the driver's " +
			"seat while your AI suggests, drafts, and recommends. Value scales with " +
			"how many people adopt the tool across an organization.",
		Examples: []string{
			"GitHub Copilot - AI pair programmer that suggests code in-editor",
			"Grammarly - AI writing assistant that improves text as you type",
			"Notion AI - drafts, summarizes, and edits within the user's workflow",
		},
		PricingImplications: "Per-seat pricing works well because value is tied to individual users. " +
			"Consider feature tiers to capture different willingness-to-pay across segments.",
	},
	domain.ModelAgent: {
		Model: domain.ModelAgent,
		Description: "Your AI operates autonomously or semi-autonomously, completing entire " +
			"tasks or workflows with minimal human intervention. The user defines the " +
			"goal and the AI executes, sometimes with a human review step. Value is " +
			"measured in outcomes delivered, not time spent using the product.",
		Examples: []string{
			"Intercom Fin - AI agent that resolves customer support tickets autonomously",
			"Devin - AI software engineer that completes coding tasks end-to-end",
			"Resolve AI - autonomous incident response and uptime management",
		},
		PricingImplications: "Outcome-based or per-task pricing aligns cost with value delivered. " +
			"Customers pay for results, not access, which de-risks the purchase decision.",
	},
	domain.ModelService: {
		Model: domain.ModelService,
		Description: "Your AI delivers a finished output or service result, often replacing " +
			"work previously done by agencies, consultants, or service providers. " +
			"There may be a human QA layer, but the AI does the heavy lifting. " +
			"Customers evaluate you against the cost of the service you replace.",
		Examples: []string{
			"EvenUp - AI-generated legal demand packages replacing paralegal work",
			"Pepper Content - AI content creation replacing freelance writers",
			"Jasper - AI marketing content replacing agency copywriting",
		},
		PricingImplications: "Price anchored to the cost of the service you replace, typically at a " +
			"discount. Per-deliverable pricing makes the value proposition concrete.",
	},
}

var quadrantProfiles = map[domain.Quadrant]domain.QuadrantProfile{
	domain.QuadrantRevenueEngine: {
		Quadrant: domain.QuadrantRevenueEngine,
		Description: "Your product delivers measurable, hard-to-argue-with ROI that directly " +
			"drives revenue growth. Customers can point to concrete revenue gains.",
		PricingImplication: "You have pricing power. Anchor to the revenue you generate and consider " +
			"value-based or outcome-based pricing with confidence.",
		RenewalRisk: false,
	},
	domain.QuadrantEfficiencyMachine: {
		Quadrant: domain.QuadrantEfficiencyMachine,
		Description: "Your product delivers hard, measurable ROI through cost reduction. " +
			"Customers can calculate exactly what they save by using you.",
		PricingImplication: "Price as a fraction of documented savings. Budget replacement framing " +
			"makes procurement straightforward, but watch for deflationary pressure.",
		RenewalRisk: false,
	},
	domain.QuadrantPromiseZone: {
		Quadrant: domain.QuadrantPromiseZone,
		Description: "Your product enables revenue upside but the ROI is hard to quantify. " +
			"Customers believe in the value but can't easily prove it with data.",
		PricingImplication: "Build measurement into your product to move toward hard ROI. In the " +
			"meantime, use hybrid pricing with a low base to reduce purchase friction.",
		RenewalRisk: true,
	},
	domain.QuadrantDangerZone: {
		Quadrant: domain.QuadrantDangerZone,
		Description: "Your product saves costs but the ROI is hard to prove. This is the " +
			"hardest position to price from - you're competing for budget without " +
			"concrete evidence of impact.",
		PricingImplication: "Prioritize building ROI dashboards and concrete metrics. Keep pricing " +
			"low and simple to minimize purchase friction while you build proof points.",
		RenewalRisk: true,
	},
}

var pricingPrinciples = map[domain.BusinessModel][]string{
	domain.ModelCopilot: {
		"Price for adoption: copilots succeed when every user activates. " +
			"Keep per-seat prices accessible enough for org-wide rollout.",
		"Feature-gate, don't usage-gate: copilot value is continuous. " +
			"Users shouldn't worry about running out of interactions.",
		"Track seats × engagement: revenue scales with both headcount " +
			"and daily active usage.",
	},
	domain.ModelAgent: {
		"Charge for outcomes, not effort: agents replace work. Price the " +
			"result, not the compute behind it.",
		"Cap your downside: use minimum commitments to protect against " +
			"usage variance while keeping the outcome promise.",
		"Build trust with transparency: show customers what the agent did " +
			"and how much it saved - this drives upsell.",
	},
	domain.ModelService: {
		"Anchor to what you replace: your pricing ceiling is the cost of " +
			"the human service you displace, minus a discount for switching risk.",
		"Per-deliverable makes ROI obvious: when customers pay per output, " +
			"they can directly compare cost vs. the alternative.",
		"Add SLA tiers for premium capture: speed, quality guarantees, and " +
			"dedicated support justify 2-3x pricing for enterprise.",
	},
}

var healthActions = map[string]string{
	"m4_q1": "Study the key differences between AI and SaaS unit economics. AI companies " +
		"typically have 50-60% gross margins vs 80-90% for SaaS. Factor in inference " +
		"costs, model training, and data processing when calculating your true margins.",
	"m4_q2": "Map your product's delivery model (copilot, agent, or service) to the pricing " +
		"models that align with customer expectations. Misalignment between how value " +
		"is delivered and how you charge is the #1 cause of pricing friction.",
	"m4_q3": "Simplify your pricing page to pass the '5-second test' - can a first-time " +
		"visitor understand what they'll pay? Consider removing usage dimensions that " +
		"require explanation and anchoring on a metric your buyer already tracks.",
	"m4_q4": "Build a cost monitoring dashboard tracking per-customer inference costs. Set " +
		"up alerts for cost spikes and consider implementing usage caps, prompt caching, " +
		"or model cascading to reduce cost variance.",
	"m4_q5": "Define specific activation signals (e.g., 3+ high-value outputs, team sharing, " +
		"integration setup) that indicate a user has experienced enough value to convert. " +
		"Time-based trials often underperform value-based triggers for AI products.",
	"m4_q6": "Start tracking AI-specific metrics: cost per AI interaction, AI resolution rate, " +
		"value delivered per dollar of inference cost, and output quality scores. These " +
		"supplement but don't replace traditional SaaS metrics like NRR and CAC.",
	"m4_q7": "Build a unit economics model that includes all hidden costs: inference API calls, " +
		"fine-tuning, human review/QA time, data storage, and retraining cycles. Many AI " +
		"companies underestimate true costs by 30-50%.",
	"m4_q8": "If you and competitors use similar foundation models, your pricing differentiation " +
		"must come from proprietary data, fine-tuning, workflow integration, or domain " +
		"expertise - not the AI itself. Price the outcome, not the model.",
	"m4_q9": "Stress-test your pricing against 3 scenarios: inference costs increase 2x, " +
		"customer usage doubles, and a competitor offers a free tier. If your pricing " +
		"breaks under any scenario, you have a sustainability gap to address.",
	"m4_q10": "Audit your pricing for scalability friction: custom quotes, manual provisioning, " +
		"complex metering, or per-customer pricing exceptions. Each adds operational " +
		"overhead that compounds. Design for self-serve where possible.",
}

// InsightRepository serves the narrative catalog: model and quadrant
// profiles, per-model pricing principles, and health-check actions.
type InsightRepository struct{}

func NewInsightRepository() *InsightRepository {
	return &InsightRepository{}
}

func (r *InsightRepository) ModelProfile(ctx context.Context, model domain.BusinessModel) (domain.ModelProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.ModelProfile{}, fmt.Errorf("context error: %w", err)
	}

	profile, ok := modelProfiles[model]
	if !ok {
		return domain.ModelProfile{}, errors.New("unknown business model")
	}

	return profile, nil
}

func (r *InsightRepository) ModelProfiles(ctx context.Context) ([]domain.ModelProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	models := []domain.BusinessModel{domain.ModelCopilot, domain.ModelAgent, domain.ModelService}
	out := make([]domain.ModelProfile, 0, len(models))
	for _, m := range models {
		out = append(out, modelProfiles[m])
	}
	return out, nil
}

func (r *InsightRepository) QuadrantProfile(ctx context.Context, quadrant domain.Quadrant) (domain.QuadrantProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.QuadrantProfile{}, fmt.Errorf("context error: %w", err)
	}

	profile, ok := quadrantProfiles[quadrant]
	if !ok {
		return domain.QuadrantProfile{}, errors.New("unknown quadrant")
	}

	return profile, nil
}

func (r *InsightRepository) QuadrantProfiles(ctx context.Context) ([]domain.QuadrantProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	quadrants := []domain.Quadrant{
		domain.QuadrantRevenueEngine,
		domain.QuadrantEfficiencyMachine,
		domain.QuadrantPromiseZone,
		domain.QuadrantDangerZone,
	}
	out := make([]domain.QuadrantProfile, 0, len(quadrants))
	for _, q := range quadrants {
		out = append(out, quadrantProfiles[q])
	}
	return out, nil
}

func (r *InsightRepository) Principles(ctx context.Context, model domain.BusinessModel) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	principles, ok := pricingPrinciples[model]
	if !ok {
		return nil, errors.New("unknown business model")
	}

	out := make([]string, len(principles))
	copy(out, principles)
	return out, nil
}

func (r *InsightRepository) HealthAction(ctx context.Context, questionID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	action, ok := healthActions[questionID]
	if !ok {
		return "", errors.New("no action for question")
	}

	return action, nil
}
