package pricing

import "pricingNavigator/domain"

// monthlyUnitsForDealSize estimates how many units a deal of the given
// annual size consumes per month.
func monthlyUnitsForDealSize(dealSize float64) int {
	switch {
	case dealSize <= 5000:
		return 50
	case dealSize <= 25000:
		return 200
	case dealSize <= 100000:
		return 500
	default:
		return 1000
	}
}

var segmentSeats = map[domain.CustomerSegment]int{
	domain.SegmentSMB:        5,
	domain.SegmentMidMarket:  25,
	domain.SegmentEnterprise: 100,
}

const defaultSeats = 25

// seatsForSegment estimates the seat count a deal in the segment covers.
func seatsForSegment(segment domain.CustomerSegment) int {
	if seats, ok := segmentSeats[segment]; ok {
		return seats
	}
	return defaultSeats
}

// effectiveFormulaType collapses unknown formula types onto hybrid, the
// default variant. Keeps metric labels bounded as well.
func effectiveFormulaType(t domain.FormulaType) domain.FormulaType {
	switch t {
	case domain.FormulaPerSeat, domain.FormulaOutcome, domain.FormulaWorkflow:
		return t
	default:
		return domain.FormulaHybrid
	}
}
