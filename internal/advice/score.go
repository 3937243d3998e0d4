package advice

import (
	"math"

	"github.com/golang/geo/r1"

	"github.com/jengzang/cricketsense-backend-go/internal/bands"
	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// step awards score to values inside band
type step struct {
	band  r1.Interval
	score int
}

// ladder is checked top to bottom; values matching no step get floor
type ladder struct {
	steps []step
	floor int
}

func (l ladder) score(v float64) int {
	for _, s := range l.steps {
		if s.band.Contains(v) {
			return s.score
		}
	}
	return l.floor
}

var (
	elbowLadder = ladder{
		steps: []step{{bands.AtLeast(165), 100}, {bands.AtLeast(155), 80}, {bands.AtLeast(140), 60}},
		floor: 40,
	}
	headLadder = ladder{
		steps: []step{{bands.AtMost(8), 100}, {bands.AtMost(15), 80}, {bands.AtMost(25), 60}},
		floor: 40,
	}
)

func rotationLadder(c models.Category) ladder {
	switch c {
	case models.CategoryPullHook, models.CategoryCut, models.CategorySweep:
		return ladder{
			steps: []step{{bands.AtLeast(45), 100}, {bands.AtLeast(30), 80}, {bands.AtLeast(20), 60}},
			floor: 40,
		}
	case models.CategoryDefensive:
		return ladder{steps: []step{{bands.AtMost(15), 100}, {bands.AtMost(25), 80}}, floor: 60}
	}
	return ladder{steps: []step{{bands.Between(20, 45), 100}, {bands.Between(15, 60), 80}}, floor: 60}
}

func weightLadder(c models.Category) ladder {
	switch c {
	case models.CategoryDrive, models.CategoryForwardShot, models.CategoryLofted:
		return ladder{
			steps: []step{{bands.AtLeast(8), 100}, {bands.AtLeast(3), 80}, {bands.AtLeast(0), 60}},
			floor: 40,
		}
	case models.CategoryPullHook, models.CategoryCut:
		return ladder{steps: []step{{bands.AtMost(2), 100}, {bands.AtMost(5), 80}}, floor: 60}
	}
	return ladder{steps: []step{{bands.Between(0, 5), 100}}, floor: 80}
}

// PerformanceLabel names the band a dashboard score falls in
func PerformanceLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 55:
		return "Fair"
	}
	return "Needs Work"
}

// PerformanceScore is the 0-100 dashboard score of a single attempt: the
// rounded mean of stepped scores for elbow, head, rotation and weight transfer
func PerformanceScore(m models.ShotMetrics) int {
	category := m.Category()

	scores := []int{
		elbowLadder.score(m.MaxElbowAngle),
		headLadder.score(m.HeadMovement),
		rotationLadder(category).score(m.BodyRotationTotal),
		weightLadder(category).score(m.WeightTransferAmount),
	}

	total := 0
	for _, s := range scores {
		total += s
	}
	return int(math.Round(float64(total) / float64(len(scores))))
}
