package improvement

import (
	"testing"

	"github.com/golang/geo/r1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

func drive(elbow, weight, rotation, head float64) models.ShotMetrics {
	return models.ShotMetrics{
		ShotType:             models.CategoryDrive,
		MaxElbowAngle:        elbow,
		WeightTransferAmount: weight,
		BodyRotationTotal:    rotation,
		HeadMovement:         head,
	}
}

func TestScore(t *testing.T) {
	band := r1.Interval{Lo: 160, Hi: 180}

	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"midpoint", 170, 100},
		{"lower edge", 160, 80},
		{"upper edge", 180, 80},
		{"halfway to edge", 175, 90},
		{"below", 150, 60},
		{"above", 185, 70},
		{"penalty saturates", 100, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.v, band), 1e-9)
		})
	}

	assert.Equal(t, 100.0, Score(5, r1.Interval{Lo: 5, Hi: 5}), "zero width band")
}

func TestAnalyzeImprovedDrive(t *testing.T) {
	original := drive(150, 2, 10, 15)
	followup := models.ShotMetrics{
		MaxElbowAngle:        170,
		WeightTransferAmount: 10,
		BodyRotationTotal:    30,
		HeadMovement:         7,
	}

	r := NewComparator(nil).Analyze(original, followup)

	assert.Equal(t, models.CategoryDrive, r.ShotType)
	assert.Equal(t, models.CategoryUnknown, r.FollowupShotType)
	assert.Equal(t, 62.0, r.OriginalAccuracy)
	assert.Equal(t, 92.0, r.FollowupAccuracy)
	assert.Equal(t, 30.0, r.AccuracyChange)
	assert.Equal(t, models.VerdictImproved, r.OverallVerdict)
	assert.Equal(t, verdictDescriptions[models.VerdictImproved], r.VerdictDescription)
	assert.InDelta(t, 80, r.ImprovementScore, 1e-9)

	require.Len(t, r.MetricComparisons, 4)
	elbow := r.MetricComparisons[0]
	assert.Equal(t, models.MetricMaxElbowAngle, elbow.Metric)
	assert.Equal(t, 50.0, elbow.OriginalScore)
	assert.InDelta(t, 93.33, elbow.FollowupScore, 0.01)
	assert.Equal(t, models.OptimalRange{Min: 165, Max: 180}, elbow.OptimalRange)
	assert.Equal(t, models.ChangeImproved, elbow.Status)

	assert.Len(t, r.ImprovedAreas, 4)
	assert.Empty(t, r.RegressedAreas)
	assert.Empty(t, r.MaintainedAreas)
	assert.Equal(t, "Weight Transfer", r.ImprovedAreas[1].Name)
	assert.Equal(t, "%", r.ImprovedAreas[1].Unit)
}

func TestAnalyzeUsesOriginalCategory(t *testing.T) {
	original := drive(172.5, 14, 32.5, 5)
	followup := original
	followup.ShotType = models.CategoryDefensive

	r := NewComparator(nil).Analyze(original, followup)

	assert.Equal(t, models.CategoryDefensive, r.FollowupShotType)
	assert.Equal(t, 100.0, r.FollowupAccuracy)
	assert.Equal(t, models.VerdictMaintained, r.OverallVerdict)
}

func TestAnalyzeSwapFlipsVerdict(t *testing.T) {
	weak := drive(145, -12, 0, 30)
	edge := drive(165, 8, 20, 10)

	c := NewComparator(nil)

	forward := c.Analyze(weak, edge)
	assert.Equal(t, 40.0, forward.OriginalAccuracy)
	assert.Equal(t, 80.0, forward.FollowupAccuracy)
	assert.Equal(t, models.VerdictImproved, forward.OverallVerdict)

	backward := c.Analyze(edge, weak)
	assert.Equal(t, models.VerdictRegressed, backward.OverallVerdict)
	assert.Equal(t, -40.0, backward.AccuracyChange)
	assert.Equal(t, 10.0, backward.ImprovementScore)
	assert.Len(t, backward.RegressedAreas, 4)
}

func TestAnalyzeSlightVerdicts(t *testing.T) {
	ideal := drive(172.5, 14, 32.5, 5)
	bentArm := drive(165, 14, 32.5, 5)

	c := NewComparator(nil)

	r := c.Analyze(ideal, bentArm)
	assert.Equal(t, 95.0, r.FollowupAccuracy)
	assert.Equal(t, models.VerdictSlightRegression, r.OverallVerdict)
	require.Len(t, r.RegressedAreas, 1)
	assert.Equal(t, models.MetricMaxElbowAngle, r.RegressedAreas[0].Metric)
	assert.Len(t, r.MaintainedAreas, 3)

	r = c.Analyze(bentArm, ideal)
	assert.Equal(t, models.VerdictSlightImprovement, r.OverallVerdict)

	r = c.Analyze(ideal, ideal)
	assert.Equal(t, models.VerdictMaintained, r.OverallVerdict)
	assert.Equal(t, 50.0, r.ImprovementScore)
}

func TestAccuracyOfEmptyCategoryUsesDefaults(t *testing.T) {
	m := models.ShotMetrics{MaxElbowAngle: 167.5, WeightTransferAmount: 9, BodyRotationTotal: 35, HeadMovement: 6}
	assert.Equal(t, 100.0, Accuracy(m, m.Category()))
}
