package pricing

import (
	"fmt"

	"pricingNavigator/domain"
)

// basePrice derives the per-unit list price from cost and target margin.
func basePrice(cost, margin float64) float64 {
	return cost / (1 - margin/100)
}

// buildFormula dispatches to the requested formula variant. Inputs that
// cannot produce a positive price (non-positive cost, margin at or above
// 100%) return the zero formula.
func buildFormula(in domain.PricingInputs) domain.PricingFormula {
	if in.CostPerUnit <= 0 || in.TargetMargin >= 100 {
		return domain.PricingFormula{}
	}

	price := basePrice(in.CostPerUnit, in.TargetMargin)

	switch effectiveFormulaType(in.FormulaType) {
	case domain.FormulaPerSeat:
		return perSeatFormula(in.CostPerUnit, in.DealSize, in.CustomerSegment)
	case domain.FormulaOutcome:
		return outcomeFormula(price, in.TargetMargin, in.DealSize)
	case domain.FormulaWorkflow:
		return workflowFormula(price, in.TargetMargin, in.DealSize)
	default:
		return hybridFormula(in.CostPerUnit, price, in.DealSize)
	}
}

// hybridFormula charges a platform fee sized at twice the monthly unit
// cost, with included units and a 20% overage premium on top.
func hybridFormula(cost, price, dealSize float64) domain.PricingFormula {
	monthlyUnits := monthlyUnitsForDealSize(dealSize)
	feeMonthly := round2(cost * float64(monthlyUnits) * 2)
	feeAnnual := round2(feeMonthly * 12)

	included := int(feeAnnual / (price * 1.5))
	if included < 1 {
		included = 1
	}
	overage := round2(price * 1.2)

	grossMargin := 0.0
	if feeAnnual > 0 {
		grossMargin = round1((feeAnnual - cost*float64(included)) / feeAnnual * 100)
	}

	return domain.PricingFormula{
		ModelName:             "Hybrid (Base + Usage)",
		PlatformFeeAnnual:     feeAnnual,
		PlatformFeeMonthly:    feeMonthly,
		IncludedUnits:         included,
		OverageRate:           overage,
		EffectivePricePerUnit: round2(price),
		GrossMargin:           grossMargin,
		Explanation: fmt.Sprintf(
			"Charge $%s/mo platform fee covering %s included units/yr. Additional units at $%s each.",
			dollars0(feeMonthly), commaInt(included), dollars2(overage),
		),
	}
}

// outcomeFormula converts the deal size into a 70% minimum commitment
// and charges the list price per outcome, with no overage premium.
func outcomeFormula(price, margin, dealSize float64) domain.PricingFormula {
	minCommit := round2(dealSize * 0.7)

	outcomes := int(minCommit / price)
	if outcomes < 1 {
		outcomes = 1
	}
	feeMonthly := round2(minCommit / 12)

	return domain.PricingFormula{
		ModelName:             "Outcome-based",
		PlatformFeeAnnual:     minCommit,
		PlatformFeeMonthly:    feeMonthly,
		IncludedUnits:         outcomes,
		OverageRate:           round2(price),
		EffectivePricePerUnit: round2(price),
		GrossMargin:           round1(margin),
		Explanation: fmt.Sprintf(
			"$%s per outcome with $%s/yr minimum commitment (~%s outcomes). Same rate for additional outcomes.",
			dollars2(price), dollars0(minCommit), commaInt(outcomes),
		),
	}
}

// workflowFormula charges per task at the list price, with a 15% volume
// discount past the included allotment.
func workflowFormula(price, margin, dealSize float64) domain.PricingFormula {
	monthlyTasks := monthlyUnitsForDealSize(dealSize)
	feeMonthly := round2(float64(monthlyTasks) * price)
	feeAnnual := round2(feeMonthly * 12)
	annualTasks := monthlyTasks * 12
	discounted := round2(price * 0.85)

	return domain.PricingFormula{
		ModelName:             "Workflow-based (Per Task)",
		PlatformFeeAnnual:     feeAnnual,
		PlatformFeeMonthly:    feeMonthly,
		IncludedUnits:         annualTasks,
		OverageRate:           discounted,
		EffectivePricePerUnit: round2(price),
		GrossMargin:           round1(margin),
		Explanation: fmt.Sprintf(
			"$%s per task × %s tasks/mo = $%s/mo. 15%% volume discount at 2× volume ($%s/task).",
			dollars2(price), commaInt(monthlyTasks), dollars0(feeMonthly), dollars2(discounted),
		),
	}
}

// perSeatFormula spreads the deal size over the segment's seat count.
// Margin here comes from seat economics, not the target margin input.
func perSeatFormula(cost, dealSize float64, segment domain.CustomerSegment) domain.PricingFormula {
	seats := seatsForSegment(segment)
	monthlyPerSeat := round2(dealSize / 12 / float64(seats))
	feeMonthly := round2(monthlyPerSeat * float64(seats))
	feeAnnual := round2(feeMonthly * 12)
	extraSeat := round2(monthlyPerSeat * 1.5)

	unitsPerSeat := float64(monthlyUnitsForDealSize(dealSize)) / float64(seats)
	costPerSeat := cost * unitsPerSeat

	grossMargin := 0.0
	if monthlyPerSeat > 0 {
		grossMargin = round1((monthlyPerSeat - costPerSeat) / monthlyPerSeat * 100)
	}

	return domain.PricingFormula{
		ModelName:             "Per-seat + Feature Tiers",
		PlatformFeeAnnual:     feeAnnual,
		PlatformFeeMonthly:    feeMonthly,
		IncludedUnits:         seats,
		OverageRate:           extraSeat,
		EffectivePricePerUnit: monthlyPerSeat,
		GrossMargin:           grossMargin,
		Explanation: fmt.Sprintf(
			"$%s/seat/month × %d seats = $%s/mo. Additional seats at $%s/mo each.",
			dollars0(monthlyPerSeat), seats, dollars0(feeMonthly), dollars0(extraSeat),
		),
	}
}
