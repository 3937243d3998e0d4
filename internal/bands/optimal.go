package bands

import (
	"github.com/golang/geo/r1"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// ComparedMetrics are the metrics scored when two attempts are compared, in
// report order
var ComparedMetrics = []models.MetricName{
	models.MetricMaxElbowAngle,
	models.MetricWeightTransferAmount,
	models.MetricBodyRotationTotal,
	models.MetricHeadMovement,
}

// OptimalRanges maps a category to the range each compared metric should
// fall in. Categories without an entry use DefaultOptimalRanges.
var OptimalRanges = map[models.Category]map[models.MetricName]r1.Interval{
	models.CategoryDrive: {
		models.MetricMaxElbowAngle:        Between(165, 180),
		models.MetricWeightTransferAmount: Between(8, 20),
		models.MetricBodyRotationTotal:    Between(20, 45),
		models.MetricHeadMovement:         Between(0, 10),
	},
	models.CategoryPullHook: {
		models.MetricMaxElbowAngle:        Between(150, 180),
		models.MetricWeightTransferAmount: Between(-5, 2),
		models.MetricBodyRotationTotal:    Between(45, 75),
		models.MetricHeadMovement:         Between(0, 12),
	},
	models.CategoryCut: {
		models.MetricMaxElbowAngle:        Between(150, 180),
		models.MetricWeightTransferAmount: Between(-3, 5),
		models.MetricBodyRotationTotal:    Between(45, 70),
		models.MetricHeadMovement:         Between(0, 12),
	},
	models.CategoryDefensive: {
		models.MetricMaxElbowAngle:        Between(160, 180),
		models.MetricWeightTransferAmount: Between(0, 5),
		models.MetricBodyRotationTotal:    Between(0, 15),
		models.MetricHeadMovement:         Between(0, 8),
	},
	models.CategorySweep: {
		models.MetricMaxElbowAngle:        Between(140, 170),
		models.MetricWeightTransferAmount: Between(3, 15),
		models.MetricBodyRotationTotal:    Between(50, 80),
		models.MetricHeadMovement:         Between(0, 15),
	},
	models.CategoryLofted: {
		models.MetricMaxElbowAngle:        Between(155, 180),
		models.MetricWeightTransferAmount: Between(5, 20),
		models.MetricBodyRotationTotal:    Between(25, 55),
		models.MetricHeadMovement:         Between(0, 12),
	},
	models.CategoryForwardShot: {
		models.MetricMaxElbowAngle:        Between(160, 180),
		models.MetricWeightTransferAmount: Between(5, 15),
		models.MetricBodyRotationTotal:    Between(15, 40),
		models.MetricHeadMovement:         Between(0, 10),
	},
}

// DefaultOptimalRanges applies to categories without their own ranges
var DefaultOptimalRanges = map[models.MetricName]r1.Interval{
	models.MetricMaxElbowAngle:        Between(155, 180),
	models.MetricWeightTransferAmount: Between(3, 15),
	models.MetricBodyRotationTotal:    Between(20, 50),
	models.MetricHeadMovement:         Between(0, 12),
}

// fallbackRange is used for a metric missing from every table
var fallbackRange = Between(0, 100)

// OptimalRange returns the range metric is scored against for category c
func OptimalRange(c models.Category, metric models.MetricName) r1.Interval {
	if band, ok := OptimalRanges[c][metric]; ok {
		return band
	}
	if band, ok := DefaultOptimalRanges[metric]; ok {
		return band
	}
	return fallbackRange
}
