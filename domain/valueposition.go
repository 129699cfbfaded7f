package domain

type Quadrant string

const (
	QuadrantRevenueEngine     Quadrant = "Revenue Engine"
	QuadrantEfficiencyMachine Quadrant = "Efficiency Machine"
	QuadrantPromiseZone       Quadrant = "Promise Zone"
	QuadrantDangerZone        Quadrant = "Danger Zone"
)

// HardROI reports whether the quadrant sits above the measurability
// axis, where customers can prove the value with their own data.
func (q Quadrant) HardROI() bool {
	return q == QuadrantRevenueEngine || q == QuadrantEfficiencyMachine
}

// Score dimension keys used by module-2 option weights.
const (
	DimX = "x_score"
	DimY = "y_score"
)

type ValuePosition struct {
	X           float64  `json:"x_score"` // -1..1, cost savings to revenue uplift
	Y           float64  `json:"y_score"` // -1..1, soft ROI to hard ROI
	Quadrant    Quadrant `json:"quadrant"`
	RenewalRisk bool     `json:"renewal_risk"` // soft-ROI quadrants face renewal risk
}

type QuadrantProfile struct {
	Quadrant           Quadrant `json:"quadrant"`
	Description        string   `json:"description"`
	PricingImplication string   `json:"pricing_implication"`
	RenewalRisk        bool     `json:"renewal_risk"`
}
