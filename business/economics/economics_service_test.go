package economics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricingNavigator/domain"
)

func TestSnapshot(t *testing.T) {
	svc := NewService()

	// The sidebar defaults: $1 cost, $3 price, 100 units, 10 customers.
	got, err := svc.Snapshot(context.Background(), domain.EconomicsInputs{
		CostPerUnit:      1.0,
		PricePerUnit:     3.0,
		UnitsPerCustomer: 100,
		Customers:        10,
	})
	require.NoError(t, err)

	assert.Equal(t, 66.7, got.GrossMargin)
	assert.Equal(t, 200.0, got.ProfitPerCustomer)
	assert.Equal(t, 2000.0, got.TotalProfit)
	assert.Equal(t, 80.0, got.SaaSBenchmark)
	assert.Equal(t, 55.0, got.AIBenchmark)
	assert.Equal(t, domain.StandingHealthy, got.Standing)
}

func TestSnapshotZeroPrice(t *testing.T) {
	svc := NewService()

	got, err := svc.Snapshot(context.Background(), domain.EconomicsInputs{
		CostPerUnit:      1.0,
		PricePerUnit:     0,
		UnitsPerCustomer: 100,
		Customers:        10,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.GrossMargin)
	assert.Equal(t, domain.StandingAtRisk, got.Standing)
	assert.Equal(t, -100.0, got.ProfitPerCustomer, "selling below cost loses money")
}

func TestSnapshotStandings(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	cases := []struct {
		name  string
		price float64
		want  domain.MarginStanding
	}{
		// $1 cost throughout, so margin = (price-1)/price.
		{name: "75% margin is healthy", price: 4.0, want: domain.StandingHealthy},
		{name: "60% margin is on watch", price: 2.5, want: domain.StandingWatch},
		{name: "50% margin is on watch", price: 2.0, want: domain.StandingWatch},
		{name: "33% margin is at risk", price: 1.5, want: domain.StandingAtRisk},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Snapshot(ctx, domain.EconomicsInputs{
				CostPerUnit:      1.0,
				PricePerUnit:     tc.price,
				UnitsPerCustomer: 1,
				Customers:        1,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Standing)
		})
	}
}

func TestSnapshotBoundaryMargin(t *testing.T) {
	// Exactly 65% stays on watch; healthy requires beating the AI par.
	assert.Equal(t, domain.StandingWatch, standingFor(65.0))
	assert.Equal(t, domain.StandingHealthy, standingFor(65.1))
	assert.Equal(t, domain.StandingAtRisk, standingFor(49.9))
}
