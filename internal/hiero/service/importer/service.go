// Package importer drives block ingestion: a scheduled tick that pulls the next
// block through the composite block source.
package importer

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/clock"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"go.uber.org/zap"
)

// Service runs the ingestion tick until its context is canceled.
type Service struct {
	logger    *zap.Logger
	source    BlockSource
	cutover   Cutover
	leader    Leader
	metrics   Metrics
	enabled   bool
	frequency time.Duration
	sleep     func(context.Context, time.Duration) error
}

// NewService creates a Service ticking every frequency.
func NewService(
	logger *zap.Logger,
	source BlockSource,
	cutover Cutover,
	leader Leader,
	metrics Metrics,
	enabled bool,
	frequency time.Duration,
) (*Service, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if cutover == nil {
		return nil, errors.New("cutover is required")
	}
	if leader == nil {
		return nil, errors.New("leader is required")
	}
	if metrics == nil {
		return nil, errors.New("importer metrics is required")
	}
	if frequency <= 0 {
		frequency = defaultFrequency
	}
	return &Service{
		logger:    logger.Named("importer"),
		source:    source,
		cutover:   cutover,
		leader:    leader,
		metrics:   metrics,
		enabled:   enabled,
		frequency: frequency,
		sleep:     clock.SleepWithContext,
	}, nil
}

// Run ticks until ctx is canceled. A failed tick never stops the loop.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("starting block importer", zap.Bool("enabled", s.enabled), zap.Duration("frequency", s.frequency))
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.tick(ctx)
		if err := s.sleep(ctx, s.frequency); err != nil {
			return err
		}
	}
}

func (s *Service) tick(ctx context.Context) {
	if !s.enabled || !s.leader.IsLeader() {
		return
	}
	if !s.cutover.IsActive(ctx, model.StreamTypeBlock) {
		return
	}

	started := time.Now()
	err := s.source.Get(ctx)
	s.metrics.ObserveTick(err, started)
	if err != nil && ctx.Err() == nil {
		s.logger.Warn("block ingestion failed", zap.Error(err))
	}
}
