// Package advice turns the metrics of one stroke into coaching feedback
package advice

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/bands"
	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

const (
	maxStrengths        = 3
	maxFlaws            = 4
	maxRecommendedFlaws = 3
)

// Engine generates advice. It is safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	rng      *rand.Rand
	narrator Narrator
	logger   *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithRand sets the source used to pick the recommended drill
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithNarrator sets the collaborator that writes coaching narratives
func WithNarrator(n Narrator) Option {
	return func(e *Engine) { e.narrator = n }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an advice engine
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	e.logger = e.logger.Named("advice")

	return e
}

// Grade rates each metric that has a band for the stroke's category, in
// evaluation order
func Grade(m models.ShotMetrics) []models.MetricAnalysis {
	category := m.Category()

	var graded []models.MetricAnalysis
	for _, metric := range bands.AdviceMetrics {
		band, ok := bands.StatusBandFor(metric, category)
		if !ok {
			continue
		}
		value := bands.AdviceValue(metric, m)
		graded = append(graded, models.MetricAnalysis{
			Metric: metric,
			Value:  value,
			Status: band.Grade(value),
		})
	}
	return graded
}

func priorityOf(s models.Status) models.Priority {
	if s == models.StatusPoor {
		return models.PriorityHigh
	}
	return models.PriorityMedium
}

// GenerateAdvice builds the strengths, flaws and recommendations for a stroke.
// None of the three lists is ever empty.
func (e *Engine) GenerateAdvice(m models.ShotMetrics) models.AdviceResult {
	category := m.Category()

	advice := models.AdviceResult{
		ShotType:        category,
		ShotConfidence:  m.ShotConfidence,
		Strengths:       []string{},
		Flaws:           []string{},
		Recommendations: []string{},
	}

	if guide, ok := shotGuides[category]; ok {
		advice.ShotInsights = models.ShotInsights{
			Description:       guide.Description,
			KeyFocusAreas:     guide.KeyFocus,
			RecommendedDrills: guide.Drills,
		}
	}

	graded := Grade(m)

	var flaws []models.MetricAnalysis
	for _, a := range graded {
		switch a.Status {
		case models.StatusExcellent:
			if len(advice.Strengths) < maxStrengths {
				advice.Strengths = append(advice.Strengths, texts[a.Metric].strength(category, a.Value))
			}
		default:
			flaws = append(flaws, a)
		}
	}

	// high priority first, evaluation order within a priority
	slices.SortStableFunc(flaws, func(a, b models.MetricAnalysis) int {
		pa, pb := priorityOf(a.Status), priorityOf(b.Status)
		switch {
		case pa == pb:
			return 0
		case pa == models.PriorityHigh:
			return -1
		}
		return 1
	})

	for i, a := range flaws {
		if i >= maxFlaws {
			break
		}
		advice.Flaws = append(advice.Flaws, texts[a.Metric].flaw(category, a.Value))
	}
	for i, a := range flaws {
		if i >= maxRecommendedFlaws {
			break
		}
		advice.Recommendations = append(advice.Recommendations, texts[a.Metric].recommendation(category, a.Value))
	}
	advice.Recommendations = append(advice.Recommendations, e.categoryTips(category)...)

	if len(advice.Strengths) == 0 {
		advice.Strengths = append(advice.Strengths, fallbackStrength)
	}
	if len(advice.Flaws) == 0 {
		advice.Flaws = append(advice.Flaws, fallbackFlaw)
	}
	if len(advice.Recommendations) == 0 {
		advice.Recommendations = append(advice.Recommendations, fallbackRecommendation)
	}

	e.logger.Debug("advice generated",
		zap.String("shot_type", string(category)),
		zap.Int("strengths", len(advice.Strengths)),
		zap.Int("flaws", len(flaws)),
	)

	return advice
}

// categoryTips returns the pro tip and one drill picked at random for the
// category. Categories without a guide get nothing.
func (e *Engine) categoryTips(c models.Category) []string {
	guide, ok := shotGuides[c]
	if !ok {
		return nil
	}

	var tips []string
	if tip, ok := proTips[c]; ok {
		tips = append(tips, tip)
	}
	if len(guide.Drills) > 0 {
		tips = append(tips, fmt.Sprintf(drillFormat, guide.Drills[e.intN(len(guide.Drills))]))
	}
	return tips
}

func (e *Engine) intN(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.IntN(n)
}
