package pose

import (
	"context"
	"io"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

// Source yields pose frames in order. Next returns io.EOF once the input is
// exhausted; a frame without a usable pose is returned as an undetected
// frame rather than an error.
type Source interface {
	Next(ctx context.Context) (models.PoseFrame, error)
	Close() error
}

// SliceSource serves frames that are already in memory
type SliceSource struct {
	frames []models.PoseFrame
	pos    int
	closed bool
}

// NewSliceSource creates a source over frames
func NewSliceSource(frames []models.PoseFrame) *SliceSource {
	return &SliceSource{frames: frames}
}

// Next returns the next frame
func (s *SliceSource) Next(ctx context.Context) (models.PoseFrame, error) {
	if err := ctx.Err(); err != nil {
		return models.PoseFrame{}, err
	}
	if s.closed || s.pos >= len(s.frames) {
		return models.PoseFrame{}, io.EOF
	}

	frame := s.frames[s.pos]
	s.pos++
	return frame, nil
}

// Close marks the source closed
func (s *SliceSource) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called
func (s *SliceSource) Closed() bool {
	return s.closed
}
