package health

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricingNavigator/internal/repository/static"
)

func newTestService() *Service {
	return NewService(static.NewQuestionRepository(), static.NewInsightRepository())
}

func uniformScores(value int) map[string]int {
	scores := make(map[string]int, 10)
	for i := 1; i <= 10; i++ {
		scores[fmt.Sprintf("m4_q%d", i)] = value
	}
	return scores
}

func TestScoreUniformAnswers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	allFives, err := svc.Score(ctx, uniformScores(5))
	require.NoError(t, err)
	assert.Equal(t, 100.0, allFives.Percentage)
	assert.Equal(t, "Advanced", allFives.Label)

	allOnes, err := svc.Score(ctx, uniformScores(1))
	require.NoError(t, err)
	assert.Equal(t, 20.0, allOnes.Percentage)
	assert.Equal(t, "Early Stage", allOnes.Label)
}

func TestScoreMixedAnswers(t *testing.T) {
	svc := newTestService()

	scores := map[string]int{
		"m4_q1": 4, "m4_q2": 2, "m4_q3": 5, "m4_q4": 1,
		"m4_q5": 3, "m4_q6": 3, "m4_q7": 2, "m4_q8": 4,
		"m4_q9": 3, "m4_q10": 5,
	}

	got, err := svc.Score(context.Background(), scores)
	require.NoError(t, err)

	// 32 of 50 points.
	assert.Equal(t, 64.0, got.Percentage)
	assert.Equal(t, "Developing", got.Label)

	require.Len(t, got.PriorityIDs, 3)
	assert.Equal(t, "m4_q4", got.PriorityIDs[0], "the lone 1 leads the priorities")
	assert.Contains(t, got.PriorityIDs, "m4_q2")
	assert.Contains(t, got.PriorityIDs, "m4_q7")
}

func TestScoreLabelThresholds(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{percentage: 100, want: "Advanced"},
		{percentage: 85, want: "Advanced"},
		{percentage: 84.9, want: "Strong"},
		{percentage: 70, want: "Strong"},
		{percentage: 69.9, want: "Developing"},
		{percentage: 50, want: "Developing"},
		{percentage: 49.9, want: "Early Stage"},
		{percentage: 0, want: "Early Stage"},
	}

	for _, tc := range cases {
		if got := labelFor(tc.percentage); got != tc.want {
			t.Errorf("labelFor(%.1f) = %s, want %s", tc.percentage, got, tc.want)
		}
	}
}

func TestScoreEmptyAnswers(t *testing.T) {
	svc := newTestService()

	got, err := svc.Score(context.Background(), map[string]int{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Percentage)
	assert.Equal(t, "Early Stage", got.Label)
	assert.Empty(t, got.PriorityIDs)
}

func TestScoreTieOrderIsDeterministic(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Every dimension ties: priorities follow catalog order.
	got, err := svc.Score(ctx, uniformScores(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"m4_q1", "m4_q2", "m4_q3"}, got.PriorityIDs)

	for i := 0; i < 10; i++ {
		again, err := svc.Score(ctx, uniformScores(3))
		require.NoError(t, err)
		assert.Equal(t, got.PriorityIDs, again.PriorityIDs)
	}
}

func TestReport(t *testing.T) {
	svc := newTestService()

	scores := map[string]int{
		"m4_q1": 4, "m4_q2": 2, "m4_q3": 5, "m4_q4": 1,
		"m4_q5": 3, "m4_q6": 3, "m4_q7": 2, "m4_q8": 4,
		"m4_q9": 3, "m4_q10": 5,
	}

	report, err := svc.Report(context.Background(), scores)
	require.NoError(t, err)

	assert.Equal(t, 64.0, report.Percentage)
	assert.False(t, report.AllHigh)
	assert.Len(t, report.Areas, 10)

	require.Len(t, report.Priorities, 3)
	first := report.Priorities[0]
	assert.Equal(t, "m4_q4", first.QuestionID)
	assert.Equal(t, "Cost Management", first.Area)
	assert.Equal(t, 1, first.Score)
	assert.NotEmpty(t, first.Question)
	assert.NotEmpty(t, first.Action)

	// Areas arrive in catalog order for the radar chart.
	assert.Equal(t, "AI Economics", report.Areas[0].Area)
	assert.Equal(t, "Scalability", report.Areas[9].Area)
}

func TestReportAllHigh(t *testing.T) {
	svc := newTestService()

	report, err := svc.Report(context.Background(), uniformScores(4))
	require.NoError(t, err)

	assert.True(t, report.AllHigh, "no dimension below 4 means no critical gaps")
	assert.Equal(t, 80.0, report.Percentage)
	assert.Equal(t, "Strong", report.Label)
}
