package valuemap

import (
	"math"

	"pricingNavigator/domain"
)

// QuadrantFor maps a clamped (x, y) pair onto the value map. The x axis
// boundary belongs to the revenue side; hard ROI requires y strictly
// above zero, so (0, 0) lands in the promise zone.
func QuadrantFor(x, y float64) domain.Quadrant {
	switch {
	case x >= 0 && y > 0:
		return domain.QuadrantRevenueEngine
	case x < 0 && y > 0:
		return domain.QuadrantEfficiencyMachine
	case x >= 0:
		return domain.QuadrantPromiseZone
	default:
		return domain.QuadrantDangerZone
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func meanOrZero(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
