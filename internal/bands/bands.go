// Package bands holds the static, category-keyed thresholds used to grade
// and score stroke metrics. Nothing here is mutated at runtime.
package bands

import (
	"math"
	"slices"

	"github.com/golang/geo/r1"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

var inf = math.Inf(1)

// AtLeast is the interval [lo, +inf)
func AtLeast(lo float64) r1.Interval { return r1.Interval{Lo: lo, Hi: inf} }

// AtMost is the interval (-inf, hi]
func AtMost(hi float64) r1.Interval { return r1.Interval{Lo: -inf, Hi: hi} }

// Between is the closed interval [lo, hi]
func Between(lo, hi float64) r1.Interval { return r1.Interval{Lo: lo, Hi: hi} }

// Anything contains every finite value
var Anything = r1.Interval{Lo: -inf, Hi: inf}

// Family groups categories that share coaching text
type Family int

const (
	FamilyGeneric Family = iota
	FamilyForward
	FamilyDefensive
	FamilyBackFoot
)

// FamilyOf returns the text family of a category
func FamilyOf(c models.Category) Family {
	switch c {
	case models.CategoryDrive, models.CategoryForwardShot, models.CategoryLofted:
		return FamilyForward
	case models.CategoryDefensive:
		return FamilyDefensive
	case models.CategoryPullHook, models.CategoryCut, models.CategorySweep:
		return FamilyBackFoot
	}
	return FamilyGeneric
}

// StatusBand grades a value: inside Excellent is excellent, inside
// Acceptable only is needs_improvement, anything else is poor
type StatusBand struct {
	Excellent  r1.Interval
	Acceptable r1.Interval
}

// Grade returns the status of v
func (b StatusBand) Grade(v float64) models.Status {
	switch {
	case b.Excellent.Contains(v):
		return models.StatusExcellent
	case b.Acceptable.Contains(v):
		return models.StatusNeedsImprovement
	}
	return models.StatusPoor
}

// bandRule applies to the listed categories, or to all when the list is empty
type bandRule struct {
	categories []models.Category
	band       StatusBand
}

func (r bandRule) covers(c models.Category) bool {
	return len(r.categories) == 0 || slices.Contains(r.categories, c)
}

// AdviceMetrics is the order in which a stroke's metrics are graded
var AdviceMetrics = []models.AdviceMetric{
	models.AdviceElbowAngle,
	models.AdviceWeightTransfer,
	models.AdviceBodyRotation,
	models.AdviceHeadStability,
	models.AdviceKneeBracing,
	models.AdviceStanceKnee,
}

// statusBands lists, per metric, rules checked in order; the first rule
// covering the category applies. A metric without a covering rule is not graded.
var statusBands = map[models.AdviceMetric][]bandRule{
	models.AdviceElbowAngle: {
		{
			categories: []models.Category{models.CategoryDrive, models.CategoryDefensive, models.CategoryForwardShot},
			band:       StatusBand{Excellent: AtLeast(165), Acceptable: AtLeast(155)},
		},
		{band: StatusBand{Excellent: AtLeast(150), Acceptable: AtLeast(135)}},
	},
	models.AdviceWeightTransfer: {
		{
			categories: []models.Category{models.CategoryDrive, models.CategoryForwardShot, models.CategoryLofted},
			band:       StatusBand{Excellent: AtLeast(8), Acceptable: AtLeast(3)},
		},
		{
			categories: []models.Category{models.CategoryPullHook, models.CategoryCut},
			band:       StatusBand{Excellent: AtMost(2), Acceptable: AtMost(5)},
		},
		{band: StatusBand{Excellent: Between(0, 5), Acceptable: Anything}},
	},
	models.AdviceBodyRotation: {
		{
			categories: []models.Category{models.CategoryPullHook, models.CategorySweep, models.CategoryCut},
			band:       StatusBand{Excellent: AtLeast(45), Acceptable: AtLeast(30)},
		},
		{
			categories: []models.Category{models.CategoryDefensive},
			band:       StatusBand{Excellent: AtMost(15), Acceptable: AtMost(25)},
		},
		{band: StatusBand{Excellent: Between(20, 45), Acceptable: Between(15, 60)}},
	},
	models.AdviceHeadStability: {
		{band: StatusBand{Excellent: AtMost(8), Acceptable: AtMost(20)}},
	},
	models.AdviceKneeBracing: {
		{
			categories: []models.Category{models.CategoryDrive, models.CategoryForwardShot},
			band:       StatusBand{Excellent: AtLeast(15), Acceptable: AtLeast(5)},
		},
	},
	models.AdviceStanceKnee: {
		{band: StatusBand{Excellent: Between(120, 145), Acceptable: Between(110, 160)}},
	},
}

// StatusBandFor returns the band grading metric for category c
func StatusBandFor(metric models.AdviceMetric, c models.Category) (StatusBand, bool) {
	for _, rule := range statusBands[metric] {
		if rule.covers(c) {
			return rule.band, true
		}
	}
	return StatusBand{}, false
}

// AdviceValue returns the stroke value graded under an advice metric
func AdviceValue(metric models.AdviceMetric, m models.ShotMetrics) float64 {
	switch metric {
	case models.AdviceElbowAngle:
		return m.MaxElbowAngle
	case models.AdviceWeightTransfer:
		return m.WeightTransferAmount
	case models.AdviceBodyRotation:
		return m.BodyRotationTotal
	case models.AdviceHeadStability:
		return m.HeadMovement
	case models.AdviceKneeBracing:
		return m.KneeBracing
	case models.AdviceStanceKnee:
		return m.StanceKneeAngle
	}
	return 0
}
