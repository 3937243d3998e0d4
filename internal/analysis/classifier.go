package analysis

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
	"github.com/jengzang/cricketsense-backend-go/internal/stats"
)

// Features are the movement indicators the shot rules are written against
type Features struct {
	Rotation      float64
	Shift         float64
	BackliftRatio float64
	DownswingLen  int
	BackliftLen   int
}

// ShotRule assigns a category when its predicate holds
type ShotRule struct {
	Name       string
	Match      func(f Features) bool
	Category   models.Category
	Confidence float64
}

// ShotRules is the classification cascade. Order matters: the first
// matching rule wins even when a later one would also match.
var ShotRules = []ShotRule{
	{
		Name: "defensive",
		Match: func(f Features) bool {
			return f.Rotation < 15 && math.Abs(f.Shift) < 5 && f.BackliftRatio < 0.5
		},
		Category:   models.CategoryDefensive,
		Confidence: 0.85,
	},
	{
		Name: "drive",
		Match: func(f Features) bool {
			return f.Shift > 5 && f.Rotation >= 15 && f.Rotation <= 45
		},
		Category:   models.CategoryDrive,
		Confidence: 0.80,
	},
	{
		Name: "pull_hook",
		Match: func(f Features) bool {
			return f.Rotation > 50 && f.Shift < 5
		},
		Category:   models.CategoryPullHook,
		Confidence: 0.75,
	},
	{
		Name: "cut",
		Match: func(f Features) bool {
			return f.Rotation > 45 && f.Shift < 3 && f.DownswingLen < f.BackliftLen
		},
		Category:   models.CategoryCut,
		Confidence: 0.75,
	},
	{
		Name: "sweep",
		Match: func(f Features) bool {
			return f.Rotation > 60
		},
		Category:   models.CategorySweep,
		Confidence: 0.70,
	},
	{
		Name: "lofted",
		Match: func(f Features) bool {
			return f.BackliftRatio > 1.2 && f.Rotation > 30
		},
		Category:   models.CategoryLofted,
		Confidence: 0.70,
	},
	{
		Name:       "forward_shot",
		Match:      func(Features) bool { return true },
		Category:   models.CategoryForwardShot,
		Confidence: 0.60,
	},
}

// ExtractFeatures derives the classifier inputs from the phase accumulators.
// Rotation and shift stay zero unless both stance and downswing were observed.
func ExtractFeatures(data PhaseData) Features {
	stance := data.Samples(models.PhaseStance)
	downswing := data.Samples(models.PhaseDownswing)

	f := Features{
		BackliftRatio: float64(data.Len(models.PhaseBacklift)) / float64(max(len(stance), 1)),
		DownswingLen:  len(downswing),
		BackliftLen:   data.Len(models.PhaseBacklift),
	}

	if len(stance) > 0 && len(downswing) > 0 {
		f.Rotation = math.Abs(stats.Mean(series(stance, bodyDirection)) - downswing[len(downswing)-1].BodyDirection)
		f.Shift = (downswing[len(downswing)-1].WeightTransfer - stats.Mean(series(stance, weightTransfer))) * 100
	}

	return f
}

// Classifier labels a stroke with a category and confidence
type Classifier struct {
	rules  []ShotRule
	logger *zap.Logger
}

// NewClassifier creates a classifier over the default rule cascade
func NewClassifier(logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{rules: ShotRules, logger: logger.Named("classifier")}
}

// Classify never fails: a run without samples, a non-finite feature or a
// panic while computing features all yield UNKNOWN with zero confidence.
func (c *Classifier) Classify(data PhaseData) (category models.Category, confidence float64) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("shot classification failed", zap.Any("panic", r))
			category, confidence = models.CategoryUnknown, 0
		}
	}()

	if data.Total() == 0 {
		return models.CategoryUnknown, 0
	}

	f := ExtractFeatures(data)
	if !stats.AllFinite(f.Rotation, f.Shift, f.BackliftRatio) {
		c.logger.Warn("non-finite shot features", zap.String("features", fmt.Sprintf("%+v", f)))
		return models.CategoryUnknown, 0
	}

	return c.ClassifyFeatures(f)
}

// ClassifyFeatures runs the rule cascade over precomputed features
func (c *Classifier) ClassifyFeatures(f Features) (models.Category, float64) {
	for _, rule := range c.rules {
		if rule.Match(f) {
			c.logger.Debug("shot classified",
				zap.String("rule", rule.Name),
				zap.Float64("rotation", f.Rotation),
				zap.Float64("shift", f.Shift),
				zap.Float64("backlift_ratio", f.BackliftRatio),
			)
			return rule.Category, rule.Confidence
		}
	}

	return models.CategoryUnknown, 0
}
