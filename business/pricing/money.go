package pricing

import (
	"math"

	"github.com/dustin/go-humanize"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// dollars0 renders a comma-grouped whole-dollar amount: 2500 -> "2,500".
func dollars0(v float64) string {
	return humanize.FormatFloat("#,###.", v)
}

// dollars2 renders a comma-grouped amount with cents: 5250.5 -> "5,250.50".
func dollars2(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// commaInt renders a comma-grouped count: 2400 -> "2,400".
func commaInt(n int) string {
	return humanize.Comma(int64(n))
}
