package analysis

import (
	"math"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
	"github.com/jengzang/cricketsense-backend-go/internal/stats"
)

// series extracts one field from a phase's samples
func series(samples []models.PhaseSample, field func(models.PhaseSample) float64) []float64 {
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		values = append(values, field(s))
	}
	return values
}

func bodyDirection(s models.PhaseSample) float64  { return s.BodyDirection }
func legDirection(s models.PhaseSample) float64   { return s.LegDirection }
func kneeAngle(s models.PhaseSample) float64      { return s.KneeAngle }
func headDirection(s models.PhaseSample) float64  { return s.HeadDirection }
func weightTransfer(s models.PhaseSample) float64 { return s.WeightTransfer }

func elbowAngles(samples []models.PhaseSample) []float64 {
	var values []float64
	for _, s := range samples {
		if s.HasElbow {
			values = append(values, s.ElbowAngle)
		}
	}
	return values
}

// Aggregate reduces the phase accumulators of a finished run to scalar
// metrics. Empty phases contribute zero. Shot type is left for the classifier.
func Aggregate(data PhaseData) models.ShotMetrics {
	stance := data.Samples(models.PhaseStance)
	downswing := data.Samples(models.PhaseDownswing)

	m := models.ShotMetrics{
		StanceBodyDirection:    stats.Mean(series(stance, bodyDirection)),
		ImpactBodyDirection:    stats.Last(series(downswing, bodyDirection)),
		StanceLegDirection:     stats.Mean(series(stance, legDirection)),
		ImpactLegDirection:     stats.Last(series(downswing, legDirection)),
		StanceKneeAngle:        stats.Mean(series(stance, kneeAngle)),
		DownswingKneeAngle:     stats.Mean(series(downswing, kneeAngle)),
		StanceHeadDirection:    stats.Mean(series(stance, headDirection)),
		DownswingHeadDirection: stats.Mean(series(downswing, headDirection)),
		MaxElbowAngle:          stats.Max(elbowAngles(downswing)),
	}

	initialWeight := stats.Mean(series(stance, weightTransfer))
	impactWeight := stats.Last(series(downswing, weightTransfer))
	m.WeightTransferAmount = (impactWeight - initialWeight) * 100

	m.BodyRotationTotal = math.Abs(m.StanceBodyDirection - m.ImpactBodyDirection)
	m.HeadMovement = math.Abs(m.StanceHeadDirection - m.DownswingHeadDirection)
	m.KneeBracing = m.DownswingKneeAngle - m.StanceKneeAngle

	m.BodyRotationOverTime = []float64{}
	m.PhaseCounts = make(map[models.Phase]int)
	for _, phase := range models.StrokePhases() {
		samples := data.Samples(phase)
		m.BodyRotationOverTime = append(m.BodyRotationOverTime, series(samples, bodyDirection)...)
		m.PhaseCounts[phase] = len(samples)
	}

	return m
}
