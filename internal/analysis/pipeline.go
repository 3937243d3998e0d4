package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
	"github.com/jengzang/cricketsense-backend-go/internal/pose"
)

// Opener opens the frame source of a run. It is called lazily, the first time
// the run's sequence is ranged over.
type Opener func(ctx context.Context) (pose.Source, error)

// Options configures a Pipeline
type Options struct {
	FollowThroughBuffer int
	Logger              *zap.Logger
}

// Pipeline turns frame sources into analyzed strokes. A Pipeline holds no
// per-run state and may start any number of runs concurrently.
type Pipeline struct {
	buffer     int
	classifier *Classifier
	logger     *zap.Logger
}

// NewPipeline creates a pipeline
func NewPipeline(opts Options) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	buffer := opts.FollowThroughBuffer
	if buffer <= 0 {
		buffer = DefaultFollowThroughBuffer
	}

	return &Pipeline{
		buffer:     buffer,
		classifier: NewClassifier(logger),
		logger:     logger.Named("pipeline"),
	}
}

// Progress represents the progress of a run
type Progress struct {
	Processed int          // Frames read from the source
	Detected  int          // Frames that yielded a sample
	Failed    int          // Frames without a usable pose
	Phase     models.Phase // Phase after the last frame
	Elapsed   time.Duration
}

// Run is one analysis of one stroke. Its sequence can be ranged over once;
// later ranges yield nothing.
type Run struct {
	ID string

	pipeline *Pipeline
	ctx      context.Context
	open     Opener
	logger   *zap.Logger

	used     atomic.Bool
	err      error
	progress Progress
}

// Analyze prepares a run. Nothing is opened until the sequence is consumed.
func (p *Pipeline) Analyze(ctx context.Context, open Opener) *Run {
	id := uuid.NewString()
	return &Run{
		ID:       id,
		pipeline: p,
		ctx:      ctx,
		open:     open,
		logger:   p.logger.With(zap.String("run_id", id)),
	}
}

// AnalyzeSource prepares a run over an already constructed source
func (p *Pipeline) AnalyzeSource(ctx context.Context, src pose.Source) *Run {
	return p.Analyze(ctx, func(context.Context) (pose.Source, error) {
		return src, nil
	})
}

// Err returns the source error that ended the run early, if any.
// Context cancellation is reported here as well.
func (r *Run) Err() error {
	return r.err
}

// Progress returns the counters of the run so far
func (r *Run) Progress() Progress {
	return r.progress
}

// All yields one (preview, nil) pair per frame read, then a single
// (nil, metrics) pair. The source is closed on every exit path, including
// when the consumer stops early. A cancelled context ends the sequence
// without the terminal pair.
func (r *Run) All() iter.Seq2[*models.Preview, *models.ShotMetrics] {
	return func(yield func(*models.Preview, *models.ShotMetrics) bool) {
		if !r.used.CompareAndSwap(false, true) {
			return
		}

		start := time.Now()
		seg := NewSegmenter(r.pipeline.buffer)

		src, err := r.open(r.ctx)
		if err != nil {
			r.err = fmt.Errorf("failed to open frame source: %w", err)
			r.logger.Warn("frame source unavailable", zap.Error(err))
			metrics := r.finish(seg, start)
			yield(nil, &metrics)
			return
		}
		defer func() {
			if cerr := src.Close(); cerr != nil {
				r.logger.Warn("failed to close frame source", zap.Error(cerr))
			}
		}()

		for !seg.Done() {
			if err := r.ctx.Err(); err != nil {
				r.err = err
				r.logger.Info("run cancelled", zap.Int("processed", r.progress.Processed))
				return
			}

			frame, err := src.Next(r.ctx)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				if ctxErr := r.ctx.Err(); ctxErr != nil {
					r.err = ctxErr
					return
				}
				// Unreadable input ends the stroke; what was seen so far still counts
				r.err = fmt.Errorf("failed to read frame %d: %w", r.progress.Processed, err)
				r.logger.Warn("frame source failed", zap.Error(err))
				break
			}

			phase, ok := seg.Process(frame)
			r.progress.Processed++
			if ok {
				r.progress.Detected++
			} else {
				r.progress.Failed++
			}
			r.progress.Phase = phase

			preview := &models.Preview{
				Frame:     frame.Index,
				Detected:  ok,
				Phase:     phase,
				Landmarks: frame.Landmarks,
			}
			if !yield(preview, nil) {
				return
			}
		}

		metrics := r.finish(seg, start)
		yield(nil, &metrics)
	}
}

func (r *Run) finish(seg *Segmenter, start time.Time) models.ShotMetrics {
	data := seg.Data()

	metrics := Aggregate(data)
	metrics.ShotType, metrics.ShotConfidence = r.pipeline.classifier.Classify(data)
	metrics.FramesProcessed = r.progress.Processed
	metrics.FramesDetected = r.progress.Detected

	r.progress.Elapsed = time.Since(start)
	r.logger.Info("run complete",
		zap.Int("processed", r.progress.Processed),
		zap.Int("detected", r.progress.Detected),
		zap.String("shot_type", string(metrics.ShotType)),
		zap.Float64("confidence", metrics.ShotConfidence),
		zap.Duration("elapsed", r.progress.Elapsed),
	)

	return metrics
}

// Collect drains a sequence and returns its terminal metrics, or nil when
// the sequence ended without one
func Collect(seq iter.Seq2[*models.Preview, *models.ShotMetrics]) *models.ShotMetrics {
	var out *models.ShotMetrics
	for _, metrics := range seq {
		if metrics != nil {
			out = metrics
		}
	}
	return out
}
