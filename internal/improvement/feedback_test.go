package improvement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/cricketsense-backend-go/internal/bands"
	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

func TestGenerateFeedbackImproved(t *testing.T) {
	c := NewComparator(nil)
	r := c.Analyze(drive(150, 2, 10, 15), drive(170, 10, 30, 7))

	fb := c.GenerateFeedback(r)

	assert.Equal(t, "Excellent work! Your accuracy improved from 62/100 to 92/100. Your dedication to practice is paying off.", fb.Summary)
	require.Len(t, fb.Improvements, 4)
	assert.Equal(t, "✅ Elbow Extension: Improved from 150.0° to 170.0° (+43 points)", fb.Improvements[0])
	assert.Equal(t, "✅ Weight Transfer: Improved from 2.0% to 10.0% (+19 points)", fb.Improvements[1])
	assert.Empty(t, fb.Regressions)
	assert.Equal(t, []string{focusTimingBalance}, fb.FocusAreas)
	assert.Equal(t, genericDrills, fb.Drills)
}

func TestGenerateFeedbackRegressedMetric(t *testing.T) {
	c := NewComparator(nil)
	r := c.Analyze(drive(172.5, 14, 32.5, 5), drive(165, 14, 32.5, 5))

	fb := c.GenerateFeedback(r)

	assert.True(t, strings.HasPrefix(fb.Summary, "Your accuracy dipped slightly from 100/100 to 95/100."))
	assert.Equal(t, []string{"⚠️ Elbow Extension: Regressed from 172.5° to 165.0° (-20 points)"}, fb.Regressions)
	assert.Equal(t, []string{focusTexts[models.MetricMaxElbowAngle][bands.FamilyGeneric]}, fb.FocusAreas)
	assert.Equal(t, []string{
		drillBook[models.MetricMaxElbowAngle][0],
		drillBook[models.MetricBodyRotationTotal][1],
		drillBook[models.MetricHeadMovement][1],
	}, fb.Drills)
}

func TestGenerateFeedbackMaintained(t *testing.T) {
	c := NewComparator(nil)
	m := drive(172.5, 14, 32.5, 5)
	r := c.Analyze(m, m)

	fb := c.GenerateFeedback(r)

	assert.Equal(t, "Your technique is consistent at 100/100. To see improvement, focus specifically on the areas marked for improvement.", fb.Summary)
	assert.Equal(t, []string{focusConsistency, focusTimingBalance}, fb.FocusAreas)
	assert.Len(t, fb.Drills, 3)
	assert.Equal(t, drillBook[models.MetricMaxElbowAngle][1], fb.Drills[0])
}

func TestGenerateFeedbackBackFootWeight(t *testing.T) {
	pull := func(weight float64) models.ShotMetrics {
		return models.ShotMetrics{
			ShotType:             models.CategoryPullHook,
			MaxElbowAngle:        165,
			WeightTransferAmount: weight,
			BodyRotationTotal:    60,
			HeadMovement:         6,
		}
	}

	c := NewComparator(nil)
	r := c.Analyze(pull(-1.5), pull(10))
	require.Len(t, r.RegressedAreas, 1)

	fb := c.GenerateFeedback(r)

	assert.Equal(t, []string{"🎯 Adjust weight distribution - for this shot, stay more balanced or back"}, fb.FocusAreas)
	assert.Equal(t, backWeightDrills[0], fb.Drills[0])
}

func TestFocusAreasDeduplicatedAndCapped(t *testing.T) {
	r := models.ImprovementResult{
		ShotType:       models.CategoryDefensive,
		OverallVerdict: models.VerdictRegressed,
		RegressedAreas: []models.AreaChange{
			{Metric: models.MetricHeadMovement},
			{Metric: models.MetricHeadMovement},
			{Metric: models.MetricBodyRotationTotal},
			{Metric: models.MetricMaxElbowAngle},
			{Metric: models.MetricWeightTransferAmount},
		},
	}

	focus := focusAreas(r)

	require.Len(t, focus, 3)
	assert.Equal(t, "🎯 Minimize body rotation - defensive shots need stillness", focus[1])

	assert.Len(t, drills(r), 4)
}

func TestGenerateSummaryReport(t *testing.T) {
	c := NewComparator(nil)
	r := c.Analyze(drive(150, 2, 10, 15), drive(170, 10, 30, 7))

	report := c.GenerateSummary(r, c.GenerateFeedback(r))
	lines := strings.Split(report, "\n")

	assert.Equal(t, reportRule, lines[0])
	assert.Equal(t, "CRICKET SHOT IMPROVEMENT ANALYSIS REPORT", lines[1])
	assert.Equal(t, reportRule, lines[len(lines)-1])
	assert.Equal(t, reportClosingLine, lines[len(lines)-2])

	assert.Contains(t, report, "📊 SHOT TYPE: DRIVE")
	assert.Contains(t, report, "   Original Attempt:  62/100")
	assert.Contains(t, report, "   Change:            +30 points")
	assert.Contains(t, report, "🏆 VERDICT: IMPROVED")
	assert.Contains(t, report, "   1. "+genericDrills[0])
	assert.NotContains(t, report, "AREAS NEEDING ATTENTION")

	order := []string{"SHOT TYPE", "ACCURACY COMPARISON", "VERDICT", "AREAS OF IMPROVEMENT", "FOCUS AREAS", "RECOMMENDED DRILLS"}
	last := -1
	for _, heading := range order {
		i := strings.Index(report, heading)
		require.Greater(t, i, last, heading)
		last = i
	}
}

func TestGenerateSummaryVerdictSpacing(t *testing.T) {
	c := NewComparator(nil)
	r := c.Analyze(drive(172.5, 14, 32.5, 5), drive(165, 14, 32.5, 5))

	report := c.GenerateSummary(r, c.GenerateFeedback(r))

	assert.Contains(t, report, "🏆 VERDICT: SLIGHT REGRESSION")
	assert.Contains(t, report, "   Change:            -5 points")
	assert.Contains(t, report, "⚠️ AREAS NEEDING ATTENTION:")
}
