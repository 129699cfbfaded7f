package pricing

import "pricingNavigator/domain"

// recommendModel walks the decision tree: business model first, then ROI
// measurability, then cost variance.
func recommendModel(model domain.BusinessModel, quadrant domain.Quadrant, variance domain.CostVariance) domain.PricingRecommendation {
	hard := quadrant.HardROI()

	switch model {
	case domain.ModelCopilot:
		if hard && variance == domain.VarianceLow {
			return domain.PricingRecommendation{
				ModelName: "Per-seat + Feature Tiers",
				Rationale: "Your copilot delivers measurable value with predictable costs. " +
					"Per-seat pricing captures value as adoption grows, while feature " +
					"tiers let you segment by willingness-to-pay.",
				FormulaType: domain.FormulaPerSeat,
			}
		}
		return domain.PricingRecommendation{
			ModelName: "Hybrid (Base + Usage Tiers)",
			Rationale: "A platform fee provides revenue predictability while usage-based " +
				"tiers align your revenue with the value users extract. This " +
				"protects margins when costs are variable or ROI is soft.",
			FormulaType: domain.FormulaHybrid,
		}

	case domain.ModelAgent:
		if hard && (variance == domain.VarianceLow || variance == domain.VarianceModerate) {
			return domain.PricingRecommendation{
				ModelName: "Outcome-based",
				Rationale: "Your agent delivers measurable results with manageable cost " +
					"variance. Charging per outcome aligns your price directly with " +
					"the value customers receive, making the ROI self-evident.",
				FormulaType: domain.FormulaOutcome,
			}
		}
		if hard && variance == domain.VarianceHigh {
			return domain.PricingRecommendation{
				ModelName: "Hybrid (Base + Outcome Credits)",
				Rationale: "Your agent delivers hard ROI but high cost variance means pure " +
					"outcome pricing risks margin erosion. A base fee covers fixed " +
					"costs while outcome credits capture upside.",
				FormulaType: domain.FormulaHybrid,
			}
		}
		return domain.PricingRecommendation{
			ModelName: "Workflow-based (Per Task)",
			Rationale: "With soft ROI, charging per task completed makes the price " +
				"concrete and predictable for buyers. It also naturally caps " +
				"your cost exposure per unit of revenue.",
			FormulaType: domain.FormulaWorkflow,
		}

	default: // AI-enabled Service
		if hard {
			return domain.PricingRecommendation{
				ModelName: "Outcome-based (Per Deliverable)",
				Rationale: "Your service delivers measurable results that replace existing " +
					"spend. Per-deliverable pricing anchors to the service you replace " +
					"and makes ROI calculation trivial for the buyer.",
				FormulaType: domain.FormulaOutcome,
			}
		}
		return domain.PricingRecommendation{
			ModelName: "Workflow-based + SLA Tiers",
			Rationale: "With soft ROI, workflow-based pricing keeps the unit economics " +
				"clear while SLA tiers (turnaround time, quality guarantees) let " +
				"you capture willingness-to-pay from premium customers.",
			FormulaType: domain.FormulaWorkflow,
		}
	}
}
