package analysis

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// Wrist positions that drive the machine for a batter with the nose at
// y=0.30 and the right shoulder at x=0.60
var (
	wristStance        = models.JointPoint{X: 0.50, Y: 0.60}
	wristBacklift      = models.JointPoint{X: 0.50, Y: 0.20}
	wristDownswing     = models.JointPoint{X: 0.50, Y: 0.50}
	wristFollowThrough = models.JointPoint{X: 0.70, Y: 0.50}
)

func strokeFrame(index int, wrist models.JointPoint) models.PoseFrame {
	return models.PoseFrame{
		Index:    index,
		Detected: true,
		Landmarks: map[models.Landmark]models.JointPoint{
			models.Nose:          {X: 0.50, Y: 0.30},
			models.LeftShoulder:  {X: 0.40, Y: 0.40},
			models.RightShoulder: {X: 0.60, Y: 0.40},
			models.LeftElbow:     {X: 0.42, Y: 0.50},
			models.LeftWrist:     wrist,
			models.LeftHip:       {X: 0.45, Y: 0.60},
			models.RightHip:      {X: 0.55, Y: 0.60},
			models.LeftKnee:      {X: 0.45, Y: 0.75},
			models.LeftAnkle:     {X: 0.45, Y: 0.90},
			models.RightAnkle:    {X: 0.55, Y: 0.90},
		},
	}
}

// strokeFrames builds a clean stroke with the given number of frames per phase
func strokeFrames(stance, backlift, downswing, followThrough int) []models.PoseFrame {
	var frames []models.PoseFrame
	add := func(n int, wrist models.JointPoint) {
		for i := 0; i < n; i++ {
			frames = append(frames, strokeFrame(len(frames), wrist))
		}
	}
	add(stance, wristStance)
	add(backlift, wristBacklift)
	add(downswing, wristDownswing)
	add(followThrough, wristFollowThrough)
	return frames
}

func TestSegmenterWalksThroughPhases(t *testing.T) {
	seg := NewSegmenter(0)
	for _, f := range strokeFrames(3, 2, 2, 2) {
		seg.Process(f)
	}

	want := []models.Phase{
		models.PhaseStance, models.PhaseStance, models.PhaseStance,
		models.PhaseBacklift, models.PhaseBacklift,
		models.PhaseDownswing, models.PhaseDownswing,
		models.PhaseFollowThrough, models.PhaseFollowThrough,
	}
	if diff := cmp.Diff(want, seg.History()); diff != "" {
		t.Errorf("phase history mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, map[models.Phase]int{
		models.PhaseStance:        3,
		models.PhaseBacklift:      2,
		models.PhaseDownswing:     2,
		models.PhaseFollowThrough: 2,
	}, seg.Counts())
	assert.False(t, seg.Done())
}

func TestSegmenterRecordsElbowOnlyInDownswing(t *testing.T) {
	seg := NewSegmenter(0)
	for _, f := range strokeFrames(1, 1, 2, 1) {
		seg.Process(f)
	}

	data := seg.Data()
	for _, phase := range models.StrokePhases() {
		for _, s := range data.Samples(phase) {
			assert.Equal(t, phase == models.PhaseDownswing, s.HasElbow, phase.String())
		}
	}
}

func TestSegmenterCascadesWithinOneFrame(t *testing.T) {
	seg := NewSegmenter(0)

	// wrist high enough for the backlift, low enough for the downswing and
	// already past the trailing shoulder
	phase, ok := seg.Process(strokeFrame(0, models.JointPoint{X: 0.70, Y: 0.30}))

	require.True(t, ok)
	assert.Equal(t, models.PhaseFollowThrough, phase)
	assert.Equal(t, 1, seg.Data().Len(models.PhaseFollowThrough))
	assert.Zero(t, seg.Data().Len(models.PhaseStance))
}

func TestSegmenterSkipsUndetectedFrames(t *testing.T) {
	seg := NewSegmenter(0)

	phase, ok := seg.Process(models.UndetectedFrame(0))
	assert.False(t, ok)
	assert.Equal(t, models.PhaseUnknown, phase)

	seg.Process(strokeFrame(1, wristStance))
	seg.Process(strokeFrame(2, wristBacklift))
	phase, ok = seg.Process(models.UndetectedFrame(3))
	assert.False(t, ok)
	assert.Equal(t, models.PhaseBacklift, phase)

	partial := strokeFrame(4, wristDownswing)
	delete(partial.Landmarks, models.Nose)
	_, ok = seg.Process(partial)
	assert.False(t, ok)

	assert.Len(t, seg.History(), 2)
	assert.Equal(t, 2, seg.Data().Total())
}

func TestSegmenterStopsAfterFollowThroughBuffer(t *testing.T) {
	seg := NewSegmenter(3)
	frames := strokeFrames(1, 1, 1, 10)

	processed := 0
	for _, f := range frames {
		if seg.Done() {
			break
		}
		if _, ok := seg.Process(f); ok {
			processed++
		}
	}

	// the entering frame counts towards the buffer
	assert.True(t, seg.Done())
	assert.Equal(t, 6, processed)
	assert.Equal(t, 3, seg.Data().Len(models.PhaseFollowThrough))

	_, ok := seg.Process(frames[len(frames)-1])
	assert.False(t, ok)
}

func TestSegmenterUndetectedFramesDoNotAdvanceBuffer(t *testing.T) {
	seg := NewSegmenter(2)
	seg.Process(strokeFrame(0, models.JointPoint{X: 0.70, Y: 0.30}))
	seg.Process(models.UndetectedFrame(1))
	seg.Process(models.UndetectedFrame(2))
	assert.False(t, seg.Done())

	seg.Process(strokeFrame(3, wristFollowThrough))
	assert.True(t, seg.Done())
}

func TestSegmenterPhasesNeverGoBackwards(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for run := 0; run < 200; run++ {
		seg := NewSegmenter(0)
		for i := 0; i < 60; i++ {
			if rng.IntN(10) == 0 {
				seg.Process(models.UndetectedFrame(i))
				continue
			}
			seg.Process(strokeFrame(i, models.JointPoint{X: rng.Float64(), Y: rng.Float64()}))
		}

		history := seg.History()
		for i := 1; i < len(history); i++ {
			require.LessOrEqual(t, int(history[i-1]), int(history[i]), "run %d frame %d", run, i)
		}
	}
}
