package pose

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestWorkerSourceStreamsFrames(t *testing.T) {
	defer goleak.VerifyNone(t)
	requireCommand(t, "cat")

	src, err := StartWorker(context.Background(), []string{"cat"}, filepath.Join("testdata", "frames.jsonl"), nil)
	require.NoError(t, err)

	frames := drain(t, src)
	assert.Len(t, frames, 4)
	assert.NoError(t, src.Close())
}

func TestWorkerSourceCloseStopsRunningWorker(t *testing.T) {
	defer goleak.VerifyNone(t)
	requireCommand(t, "yes")

	// yes never exits on its own; Close must kill and reap it
	src, err := StartWorker(context.Background(), []string{"yes"}, `{"frame":0,"detected":false}`, nil)
	require.NoError(t, err)

	frame, err := src.Next(context.Background())
	require.NoError(t, err)
	assert.False(t, frame.Detected)

	assert.NoError(t, src.Close())
	assert.NoError(t, src.Close())
}

func TestWorkerSourceReportsFailure(t *testing.T) {
	defer goleak.VerifyNone(t)
	requireCommand(t, "cat")

	src, err := StartWorker(context.Background(), []string{"cat"}, filepath.Join("testdata", "missing.jsonl"), nil)
	require.NoError(t, err)

	assert.Empty(t, drain(t, src))
	err = src.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pose worker failed")
}

func TestStartWorkerRejectsEmptyCommand(t *testing.T) {
	_, err := StartWorker(context.Background(), nil, "clip.mp4", nil)
	assert.Error(t, err)
}

func TestSplitCommand(t *testing.T) {
	assert.Equal(t, []string{"python", "scripts/pose_worker.py", "--fps", "30"}, SplitCommand("python  scripts/pose_worker.py --fps 30"))
}
