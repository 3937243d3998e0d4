package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jengzang/cricketsense-backend-go/internal/advice"
	"github.com/jengzang/cricketsense-backend-go/internal/analysis"
	"github.com/jengzang/cricketsense-backend-go/internal/config"
	"github.com/jengzang/cricketsense-backend-go/internal/database"
	"github.com/jengzang/cricketsense-backend-go/internal/improvement"
	"github.com/jengzang/cricketsense-backend-go/internal/logging"
	"github.com/jengzang/cricketsense-backend-go/internal/narrative"
	"github.com/jengzang/cricketsense-backend-go/internal/repository"
	"github.com/jengzang/cricketsense-backend-go/internal/service"
)

// cli holds the state shared by all subcommands
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "cricketsense",
		Short: "Cricket batting stroke analysis and coaching",
		Long: `cricketsense segments a batting stroke into stance, backlift, downswing and
follow-through, classifies the shot, and turns its metrics into coaching advice.

Input is either a file of pose landmarks (one JSON frame per line) or a video
handed to the configured pose worker.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if c.verbose {
				cfg.Log.Level = "debug"
			}

			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}

			c.cfg, c.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.serveCmd(), c.analyzeCmd(), c.compareCmd())
	return root
}

// app is the wired service stack
type app struct {
	db      *sql.DB
	service *service.CoachingService
}

func (c *cli) newApp(ctx context.Context) (*app, error) {
	db, err := database.Open(ctx, database.Config{Path: c.cfg.Database.Path}, c.logger)
	if err != nil {
		return nil, err
	}

	opts := []advice.Option{advice.WithLogger(c.logger)}
	if c.cfg.Narrative.APIKey != "" {
		n, err := narrative.NewGenAINarrator(ctx, c.cfg.Narrative.APIKey, c.cfg.Narrative.Model, c.cfg.Narrative.Timeout, c.logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set up narrator: %w", err)
		}
		opts = append(opts, advice.WithNarrator(n))
	}

	svc := service.NewCoachingService(
		repository.NewAttemptRepository(db),
		analysis.NewPipeline(analysis.Options{
			FollowThroughBuffer: c.cfg.Pose.FollowThroughBuffer,
			Logger:              c.logger,
		}),
		advice.NewEngine(opts...),
		improvement.NewComparator(c.logger),
		service.Options{PoseWorker: c.cfg.Pose.Worker, Logger: c.logger},
	)

	return &app{db: db, service: svc}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
