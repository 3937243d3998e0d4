// Package service ties the analysis pipeline, the coaching engines and the
// attempt store together
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/advice"
	"github.com/jengzang/cricketsense-backend-go/internal/analysis"
	"github.com/jengzang/cricketsense-backend-go/internal/improvement"
	"github.com/jengzang/cricketsense-backend-go/internal/models"
	"github.com/jengzang/cricketsense-backend-go/internal/pose"
	"github.com/jengzang/cricketsense-backend-go/internal/repository"
)

// ErrNoFrames is returned when an input could not be read at all
var ErrNoFrames = errors.New("no frames could be read")

// ErrUnsupportedInput is returned for a video when no pose worker is configured
var ErrUnsupportedInput = errors.New("unsupported input")

// frameFileExts are read directly as landmark lines; anything else is
// handed to the pose worker
var frameFileExts = map[string]bool{".jsonl": true, ".ndjson": true, ".json": true}

// CoachingService handles attempt analysis, advice and comparison
type CoachingService struct {
	repo       *repository.AttemptRepository
	pipeline   *analysis.Pipeline
	advice     *advice.Engine
	comparator *improvement.Comparator
	worker     []string
	logger     *zap.Logger
}

// Options configures a CoachingService
type Options struct {
	// PoseWorker is the pose estimator command line used for video files
	PoseWorker string
	Logger     *zap.Logger
}

// NewCoachingService creates a new coaching service
func NewCoachingService(
	repo *repository.AttemptRepository,
	pipeline *analysis.Pipeline,
	engine *advice.Engine,
	comparator *improvement.Comparator,
	opts Options,
) *CoachingService {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoachingService{
		repo:       repo,
		pipeline:   pipeline,
		advice:     engine,
		comparator: comparator,
		worker:     pose.SplitCommand(opts.PoseWorker),
		logger:     logger.Named("coaching"),
	}
}

// AnalyzeFrames analyzes frames that arrived in a request and stores the result
func (s *CoachingService) AnalyzeFrames(ctx context.Context, label string, frames []models.PoseFrame) (*models.Attempt, error) {
	run := s.pipeline.AnalyzeSource(ctx, pose.NewSliceSource(frames))
	return s.store(ctx, label, run, nil)
}

// AnalyzeFile analyzes a landmark file or, with a pose worker configured, a
// video. onPreview, when set, sees every frame as it is processed.
func (s *CoachingService) AnalyzeFile(ctx context.Context, label, path string, onPreview func(*models.Preview)) (*models.Attempt, error) {
	opener, err := s.opener(path)
	if err != nil {
		return nil, err
	}
	if label == "" {
		label = filepath.Base(path)
	}
	return s.store(ctx, label, s.pipeline.Analyze(ctx, opener), onPreview)
}

func (s *CoachingService) opener(path string) (analysis.Opener, error) {
	if frameFileExts[strings.ToLower(filepath.Ext(path))] {
		return func(context.Context) (pose.Source, error) {
			return pose.OpenJSONL(path, s.logger)
		}, nil
	}
	if len(s.worker) == 0 {
		return nil, fmt.Errorf("%w: %s needs a pose worker", ErrUnsupportedInput, filepath.Base(path))
	}
	return func(ctx context.Context) (pose.Source, error) {
		return pose.StartWorker(ctx, s.worker, path, s.logger)
	}, nil
}

func (s *CoachingService) store(ctx context.Context, label string, run *analysis.Run, onPreview func(*models.Preview)) (*models.Attempt, error) {
	var metrics *models.ShotMetrics
	for preview, m := range run.All() {
		if m != nil {
			metrics = m
			continue
		}
		if onPreview != nil {
			onPreview(preview)
		}
	}

	if metrics == nil {
		return nil, fmt.Errorf("analysis interrupted: %w", run.Err())
	}
	if err := run.Err(); err != nil {
		if metrics.FramesProcessed == 0 {
			return nil, fmt.Errorf("%w: %w", ErrNoFrames, err)
		}
		s.logger.Warn("input ended early, keeping partial analysis",
			zap.String("run_id", run.ID),
			zap.Int("frames", metrics.FramesProcessed),
			zap.Error(err),
		)
	}

	attempt := &models.Attempt{Label: label, Metrics: *metrics}
	if err := s.repo.Create(ctx, attempt); err != nil {
		return nil, err
	}

	s.logger.Info("attempt analyzed",
		zap.String("attempt_id", attempt.ID),
		zap.String("shot_type", string(metrics.Category())),
		zap.Int("frames_detected", metrics.FramesDetected),
	)
	return attempt, nil
}

// GetAttempt retrieves a stored attempt
func (s *CoachingService) GetAttempt(ctx context.Context, id string) (*models.Attempt, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAttempts lists stored attempts
func (s *CoachingService) ListAttempts(ctx context.Context, shotType string, limit, offset int) ([]*models.Attempt, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, shotType, limit, offset)
}

// DeleteAttempt removes a stored attempt
func (s *CoachingService) DeleteAttempt(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Advice returns the coaching advice and dashboard score of an attempt
func (s *CoachingService) Advice(ctx context.Context, id string) (*models.AdviceResponse, error) {
	attempt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	score := advice.PerformanceScore(attempt.Metrics)
	return &models.AdviceResponse{
		Advice:           s.advice.GenerateAdvice(attempt.Metrics),
		PerformanceScore: score,
		PerformanceLabel: advice.PerformanceLabel(score),
	}, nil
}

// Summary renders the coaching report of an attempt
func (s *CoachingService) Summary(ctx context.Context, id string) (string, error) {
	attempt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.advice.GenerateSummary(s.advice.GenerateAdvice(attempt.Metrics)), nil
}

// Narrative writes a short personal coaching note for an attempt
func (s *CoachingService) Narrative(ctx context.Context, id string) (string, error) {
	attempt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	result := s.advice.GenerateAdvice(attempt.Metrics)
	return s.advice.GenerateNarrative(ctx, result, attempt.Metrics), nil
}

// Compare measures the change from an original attempt to a follow-up
func (s *CoachingService) Compare(ctx context.Context, originalID, followupID string) (*models.ComparisonResponse, error) {
	original, err := s.repo.GetByID(ctx, originalID)
	if err != nil {
		return nil, err
	}
	followup, err := s.repo.GetByID(ctx, followupID)
	if err != nil {
		return nil, err
	}

	result := s.comparator.Analyze(original.Metrics, followup.Metrics)
	return &models.ComparisonResponse{
		Result:   result,
		Feedback: s.comparator.GenerateFeedback(result),
	}, nil
}

// CompareSummary renders the improvement report of two attempts
func (s *CoachingService) CompareSummary(ctx context.Context, originalID, followupID string) (string, error) {
	cmp, err := s.Compare(ctx, originalID, followupID)
	if err != nil {
		return "", err
	}
	return s.comparator.GenerateSummary(cmp.Result, cmp.Feedback), nil
}
