package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

func TestClassifyFeatures(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name       string
		features   Features
		category   models.Category
		confidence float64
	}{
		{"defensive wins over later rules", Features{Rotation: 10, Shift: 2, BackliftRatio: 0.3}, models.CategoryDefensive, 0.85},
		{"drive", Features{Rotation: 30, Shift: 8, BackliftRatio: 1}, models.CategoryDrive, 0.80},
		{"drive lower edge", Features{Rotation: 15, Shift: 5.1}, models.CategoryDrive, 0.80},
		{"pull", Features{Rotation: 55, Shift: -2}, models.CategoryPullHook, 0.75},
		{"cut needs a short downswing", Features{Rotation: 48, Shift: 1, DownswingLen: 2, BackliftLen: 5}, models.CategoryCut, 0.75},
		{"long downswing is not a cut", Features{Rotation: 48, Shift: 1, DownswingLen: 5, BackliftLen: 2}, models.CategoryForwardShot, 0.60},
		{"sweep", Features{Rotation: 65, Shift: 10}, models.CategorySweep, 0.70},
		{"lofted", Features{Rotation: 40, Shift: 2, BackliftRatio: 1.5}, models.CategoryLofted, 0.70},
		{"fallback", Features{Rotation: 20, Shift: 0, BackliftRatio: 1}, models.CategoryForwardShot, 0.60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, confidence := c.ClassifyFeatures(tt.features)
			assert.Equal(t, tt.category, category)
			assert.Equal(t, tt.confidence, confidence)
		})
	}
}

func TestExtractFeatures(t *testing.T) {
	f := ExtractFeatures(sampleData())

	assert.InDelta(t, 35, f.Rotation, 1e-9)
	assert.InDelta(t, 10, f.Shift, 1e-9)
	assert.InDelta(t, 0.5, f.BackliftRatio, 1e-9)
	assert.Equal(t, 2, f.DownswingLen)
	assert.Equal(t, 1, f.BackliftLen)
}

func TestExtractFeaturesNeedsStanceAndDownswing(t *testing.T) {
	data := sampleData()
	delete(data, models.PhaseDownswing)

	f := ExtractFeatures(data)
	assert.Zero(t, f.Rotation)
	assert.Zero(t, f.Shift)

	// backlift samples over a missing stance divide by one
	f = ExtractFeatures(PhaseData{models.PhaseBacklift: make([]models.PhaseSample, 3)})
	assert.Equal(t, 3.0, f.BackliftRatio)
}

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)

	category, confidence := c.Classify(sampleData())
	assert.Equal(t, models.CategoryDrive, category)
	assert.Equal(t, 0.80, confidence)
}

func TestClassifyWithoutSamplesIsUnknown(t *testing.T) {
	category, confidence := NewClassifier(nil).Classify(PhaseData{})

	assert.Equal(t, models.CategoryUnknown, category)
	assert.Zero(t, confidence)
}

func TestClassifyNonFiniteFeaturesIsUnknown(t *testing.T) {
	data := sampleData()
	data[models.PhaseStance][0].BodyDirection = math.NaN()

	category, confidence := NewClassifier(nil).Classify(data)
	assert.Equal(t, models.CategoryUnknown, category)
	assert.Zero(t, confidence)
}

func TestClassifyRecoversFromPanickingRule(t *testing.T) {
	c := NewClassifier(nil)
	c.rules = []ShotRule{{
		Name:  "broken",
		Match: func(Features) bool { panic("boom") },
	}}

	category, confidence := c.Classify(sampleData())
	assert.Equal(t, models.CategoryUnknown, category)
	assert.Zero(t, confidence)
}
