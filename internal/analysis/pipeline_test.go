package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
	"github.com/jengzang/cricketsense-backend-go/internal/pose"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunYieldsPreviewsThenMetrics(t *testing.T) {
	frames := strokeFrames(3, 2, 2, 2)
	frames = append(frames, models.UndetectedFrame(len(frames)))
	src := pose.NewSliceSource(frames)

	run := NewPipeline(Options{}).AnalyzeSource(context.Background(), src)

	var previews []*models.Preview
	var terminal []*models.ShotMetrics
	for preview, metrics := range run.All() {
		if metrics != nil {
			assert.Nil(t, preview)
			terminal = append(terminal, metrics)
			continue
		}
		require.Empty(t, terminal, "preview after terminal value")
		previews = append(previews, preview)
	}

	require.Len(t, terminal, 1)
	assert.Len(t, previews, len(frames))
	assert.Equal(t, models.PhaseFollowThrough, previews[8].Phase)
	assert.False(t, previews[9].Detected)

	m := terminal[0]
	assert.Equal(t, models.CategoryForwardShot, m.ShotType)
	assert.Equal(t, 0.60, m.ShotConfidence)
	assert.Equal(t, 10, m.FramesProcessed)
	assert.Equal(t, 9, m.FramesDetected)
	assert.Len(t, m.BodyRotationOverTime, 9)
	assert.True(t, src.Closed())
	assert.NoError(t, run.Err())
	assert.Equal(t, 1, run.Progress().Failed)
}

func TestRunIsSingleUse(t *testing.T) {
	run := NewPipeline(Options{}).AnalyzeSource(context.Background(), pose.NewSliceSource(strokeFrames(1, 1, 1, 1)))

	require.NotNil(t, Collect(run.All()))

	count := 0
	for range run.All() {
		count++
	}
	assert.Zero(t, count)
}

func TestRunEarlyBreakClosesSource(t *testing.T) {
	src := pose.NewSliceSource(strokeFrames(5, 5, 5, 5))
	run := NewPipeline(Options{}).AnalyzeSource(context.Background(), src)

	seen := 0
	for range run.All() {
		seen++
		if seen == 3 {
			break
		}
	}

	assert.Equal(t, 3, seen)
	assert.True(t, src.Closed())
	assert.Equal(t, 3, run.Progress().Processed)
}

func TestRunStopsAfterFollowThroughBuffer(t *testing.T) {
	src := pose.NewSliceSource(strokeFrames(2, 2, 2, 40))
	run := NewPipeline(Options{FollowThroughBuffer: 5}).AnalyzeSource(context.Background(), src)

	m := Collect(run.All())
	require.NotNil(t, m)
	assert.Equal(t, 11, m.FramesProcessed)
	assert.Equal(t, 5, m.PhaseCounts[models.PhaseFollowThrough])
}

func TestRunCancelledContextHasNoTerminalValue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := pose.NewSliceSource(strokeFrames(5, 5, 5, 5))
	run := NewPipeline(Options{}).AnalyzeSource(ctx, src)

	var terminal *models.ShotMetrics
	seen := 0
	for _, metrics := range run.All() {
		if metrics != nil {
			terminal = metrics
		}
		seen++
		if seen == 2 {
			cancel()
		}
	}

	assert.Nil(t, terminal)
	assert.Equal(t, 2, seen)
	assert.ErrorIs(t, run.Err(), context.Canceled)
	assert.True(t, src.Closed())
}

func TestRunOpensSourceLazily(t *testing.T) {
	opened := false
	run := NewPipeline(Options{}).Analyze(context.Background(), func(context.Context) (pose.Source, error) {
		opened = true
		return pose.NewSliceSource(nil), nil
	})

	assert.False(t, opened)
	m := Collect(run.All())
	assert.True(t, opened)

	require.NotNil(t, m)
	assert.Equal(t, models.CategoryUnknown, m.ShotType)
	assert.Zero(t, m.ShotConfidence)
}

func TestRunOpenFailureStillYieldsMetrics(t *testing.T) {
	run := NewPipeline(Options{}).Analyze(context.Background(), func(context.Context) (pose.Source, error) {
		return nil, errors.New("no such video")
	})

	m := Collect(run.All())
	require.NotNil(t, m)
	assert.Equal(t, models.CategoryUnknown, m.ShotType)
	assert.ErrorContains(t, run.Err(), "no such video")
}

func TestRunAllUndetected(t *testing.T) {
	frames := []models.PoseFrame{models.UndetectedFrame(0), models.UndetectedFrame(1)}
	run := NewPipeline(Options{}).AnalyzeSource(context.Background(), pose.NewSliceSource(frames))

	m := Collect(run.All())
	require.NotNil(t, m)
	assert.Equal(t, models.CategoryUnknown, m.ShotType)
	assert.Zero(t, m.BodyRotationTotal)
	assert.Zero(t, m.MaxElbowAngle)
	assert.Equal(t, 2, m.FramesProcessed)
	assert.Zero(t, m.FramesDetected)
}
