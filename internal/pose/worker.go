package pose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const maxStderrBytes = 8 * 1024

// WorkerSource runs an external pose-estimation process against a video and
// reads the landmark frames it prints as JSON lines
type WorkerSource struct {
	*JSONLSource

	cmd    *exec.Cmd
	stderr *limitedBuffer
	logger *zap.Logger

	closeOnce sync.Once
	closeErr  error
}

// StartWorker launches command with the video path appended as its last
// argument. The process is killed when ctx ends or Close is called early.
func StartWorker(ctx context.Context, command []string, videoPath string, logger *zap.Logger) (*WorkerSource, error) {
	if len(command) == 0 {
		return nil, errors.New("pose worker command is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("pose_worker")

	args := append(append([]string{}, command[1:]...), videoPath)
	cmd := exec.CommandContext(ctx, command[0], args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to attach worker stdout: %w", err)
	}
	stderr := &limitedBuffer{limit: maxStderrBytes}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start pose worker: %w", err)
	}
	logger.Info("pose worker started",
		zap.String("command", strings.Join(command, " ")),
		zap.String("video", videoPath),
		zap.Int("pid", cmd.Process.Pid),
	)

	return &WorkerSource{
		JSONLSource: NewJSONLSource(stdout, nil, logger),
		cmd:         cmd,
		stderr:      stderr,
		logger:      logger,
	}, nil
}

// SplitCommand turns a configured command line into its arguments
func SplitCommand(line string) []string {
	return strings.Fields(line)
}

// Close stops the worker if it is still producing frames and reaps it
func (w *WorkerSource) Close() error {
	w.closeOnce.Do(func() {
		killed := false
		if !w.eof {
			if err := w.cmd.Process.Kill(); err == nil {
				killed = true
			}
		}

		err := w.cmd.Wait()
		switch {
		case killed:
			w.logger.Info("pose worker stopped early", zap.Int("frames", w.line))
		case err != nil:
			w.closeErr = fmt.Errorf("pose worker failed: %w, output: %s", err, w.stderr.String())
		default:
			w.logger.Info("pose worker finished", zap.Int("frames", w.line))
		}
	})
	return w.closeErr
}

// limitedBuffer keeps the first limit bytes written to it
type limitedBuffer struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	limit int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if room := b.limit - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *limitedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.TrimSpace(b.buf.String())
}
