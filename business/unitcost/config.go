package unitcost

// Defaults applied when the caller does not override them.
const (
	defaultTargetMargin = 65.0
	// defaultCostPer1K covers custom providers without a preset rate.
	defaultCostPer1K = 0.005
)

type Config struct {
	// TargetMargin is the gross margin used for the minimum viable price.
	TargetMargin float64
}

func DefaultConfig() Config {
	return Config{
		TargetMargin: defaultTargetMargin,
	}
}
