// Package improvement compares two attempts at the same stroke and reports
// honestly whether the follow-up got closer to the optimal ranges
package improvement

import (
	"math"

	"github.com/golang/geo/r1"
	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/bands"
	"github.com/jengzang/cricketsense-backend-go/internal/models"
	"github.com/jengzang/cricketsense-backend-go/internal/stats"
)

const (
	changeThreshold     = 5.0
	verdictThreshold    = 5.0
	edgeScore           = 80.0
	minScore            = 20.0
	maxPenalty          = 50.0
	penaltyPerUnit      = 2.0
	baselineImprovement = 50.0
)

// Score rates how close v is to the middle of band on a 0-100 scale: 100 at
// the midpoint, 80 at either edge, then 2 points per unit outside, never
// below 20
func Score(v float64, band r1.Interval) float64 {
	if band.Contains(v) {
		half := band.Length() / 2
		if half <= 0 {
			return 100
		}
		return 100 - math.Abs(v-band.Center())/half*20
	}

	distance := band.Lo - v
	if v > band.Hi {
		distance = v - band.Hi
	}
	return math.Max(edgeScore-math.Min(distance*penaltyPerUnit, maxPenalty), minScore)
}

// Comparator analyzes the change between two attempts
type Comparator struct {
	logger *zap.Logger
}

// NewComparator creates a comparator
func NewComparator(logger *zap.Logger) *Comparator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Comparator{logger: logger.Named("improvement")}
}

// Accuracy is the mean score of the compared metrics against the ranges of
// category, rounded to one decimal
func Accuracy(m models.ShotMetrics, category models.Category) float64 {
	var scores []float64
	for _, metric := range bands.ComparedMetrics {
		v, ok := m.Value(metric)
		if !ok {
			continue
		}
		scores = append(scores, Score(v, bands.OptimalRange(category, metric)))
	}
	return stats.Round(stats.Mean(scores), 1)
}

func changeStatus(delta float64) models.ChangeStatus {
	switch {
	case delta > changeThreshold:
		return models.ChangeImproved
	case delta < -changeThreshold:
		return models.ChangeRegressed
	}
	return models.ChangeMaintained
}

// Analyze compares a follow-up attempt with the original. Both attempts are
// scored against the ranges of the original attempt's shot type.
func (c *Comparator) Analyze(original, followup models.ShotMetrics) models.ImprovementResult {
	category := original.Category()

	result := models.ImprovementResult{
		ShotType:          category,
		FollowupShotType:  followup.Category(),
		MetricComparisons: []models.MetricComparison{},
		ImprovedAreas:     []models.AreaChange{},
		RegressedAreas:    []models.AreaChange{},
		MaintainedAreas:   []models.AreaChange{},
	}

	var deltas []float64
	for _, metric := range bands.ComparedMetrics {
		from, okFrom := original.Value(metric)
		to, okTo := followup.Value(metric)
		if !okFrom || !okTo {
			continue
		}

		band := bands.OptimalRange(category, metric)
		comparison := models.MetricComparison{
			Metric:        metric,
			OriginalValue: from,
			FollowupValue: to,
			OriginalScore: Score(from, band),
			FollowupScore: Score(to, band),
			OptimalRange:  models.OptimalRange{Min: band.Lo, Max: band.Hi},
		}
		comparison.ScoreChange = comparison.FollowupScore - comparison.OriginalScore
		comparison.Status = changeStatus(comparison.ScoreChange)

		result.MetricComparisons = append(result.MetricComparisons, comparison)
		deltas = append(deltas, comparison.ScoreChange)

		info := metricInfos[metric]
		area := models.AreaChange{
			Metric:    metric,
			Name:      info.name,
			Change:    comparison.ScoreChange,
			FromValue: from,
			ToValue:   to,
			Unit:      info.unit,
		}
		switch comparison.Status {
		case models.ChangeImproved:
			result.ImprovedAreas = append(result.ImprovedAreas, area)
		case models.ChangeRegressed:
			result.RegressedAreas = append(result.RegressedAreas, area)
		default:
			result.MaintainedAreas = append(result.MaintainedAreas, area)
		}
	}

	result.OriginalAccuracy = Accuracy(original, category)
	result.FollowupAccuracy = Accuracy(followup, category)
	result.AccuracyChange = result.FollowupAccuracy - result.OriginalAccuracy
	result.OverallVerdict = verdict(result)
	result.VerdictDescription = verdictDescriptions[result.OverallVerdict]
	result.ImprovementScore = stats.Clamp(baselineImprovement+stats.Mean(deltas), 0, 100)

	c.logger.Info("attempts compared",
		zap.String("shot_type", string(category)),
		zap.Float64("original_accuracy", result.OriginalAccuracy),
		zap.Float64("followup_accuracy", result.FollowupAccuracy),
		zap.String("verdict", string(result.OverallVerdict)),
	)

	return result
}

// verdict weighs overall accuracy first and falls back to counting metrics
// when the accuracy change is within the threshold
func verdict(r models.ImprovementResult) models.Verdict {
	switch {
	case r.FollowupAccuracy > r.OriginalAccuracy+verdictThreshold:
		return models.VerdictImproved
	case r.FollowupAccuracy < r.OriginalAccuracy-verdictThreshold:
		return models.VerdictRegressed
	case len(r.ImprovedAreas) > len(r.RegressedAreas):
		return models.VerdictSlightImprovement
	case len(r.RegressedAreas) > len(r.ImprovedAreas):
		return models.VerdictSlightRegression
	}
	return models.VerdictMaintained
}
