// Package cutover decides which ledger stream format is authoritative while a
// network migrates from record files to block streams.
package cutover

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/clock"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"go.uber.org/zap"
)

// Config is the cutover part of the importer configuration.
type Config struct {
	// Enabled is set for networks that migrate between the two formats.
	Enabled       bool
	RecordEnabled bool
	BlockEnabled  bool
	// Threshold is how long the tentative format may go without a verified
	// record before the other format is tried.
	Threshold time.Duration
}

// Service tracks the last verified record of either format and answers which
// format should currently be ingested.
type Service struct {
	logger  *zap.Logger
	repo    Repository
	metrics Metrics
	clock   clock.Clock

	mu           sync.Mutex
	cfg          Config
	current      model.StreamType
	lastSwitched time.Time
	first        *model.RecordFile
	last         *model.RecordFile
	bootstrapped bool
}

// New creates a Service starting on the record format.
func New(logger *zap.Logger, cfg Config, repo Repository, metrics Metrics, c clock.Clock) (*Service, error) {
	if repo == nil {
		return nil, errors.New("cutover repository is required")
	}
	if metrics == nil {
		return nil, errors.New("cutover metrics is required")
	}
	if c == nil {
		c = clock.System
	}
	s := &Service{
		logger:       logger.Named("cutover"),
		repo:         repo,
		metrics:      metrics,
		clock:        c,
		cfg:          cfg,
		current:      model.StreamTypeRecord,
		lastSwitched: c.Now(),
	}
	metrics.SetActive(s.current)
	return s, nil
}

// IsActive reports whether streamType should be ingested now.
func (s *Service) IsActive(ctx context.Context, streamType model.StreamType) bool {
	if !s.cfg.Enabled {
		return s.enabled(streamType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.RecordEnabled && !s.cfg.BlockEnabled {
		return false
	}

	s.bootstrap(ctx)

	switch {
	case s.last != nil && s.last.StreamType() == model.StreamTypeBlock:
		s.switchTo(model.StreamTypeBlock, "latest record is a block stream")
		if s.first != nil && s.first.StreamType() == model.StreamTypeBlock && s.cfg.RecordEnabled {
			s.cfg.RecordEnabled = false
			s.cfg.BlockEnabled = true
			s.logger.Warn("record stream decommissioned, the whole history is block stream",
				zap.Uint64("first", s.first.Index),
				zap.Uint64("last", s.last.Index))
		}
	case !s.cfg.BlockEnabled:
		s.switchTo(model.StreamTypeRecord, "block stream disabled")
	case !s.cfg.RecordEnabled:
		s.switchTo(model.StreamTypeBlock, "record stream disabled")
	default:
		if now := s.clock.Now(); now.Sub(s.lastSwitched) >= s.cfg.Threshold {
			s.switchTo(other(s.current), "no verified record within threshold")
			s.lastSwitched = now
		}
	}

	return s.current == streamType
}

// Verified records a successfully verified record file of either format.
func (s *Service) Verified(records *model.RecordFile) {
	if records == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = records
	if s.first == nil && s.bootstrapped {
		s.first = records
	}
	s.lastSwitched = s.clock.Now()
}

// Current returns the tentative authoritative format.
func (s *Service) Current() model.StreamType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Service) enabled(streamType model.StreamType) bool {
	if streamType == model.StreamTypeBlock {
		return s.cfg.BlockEnabled
	}
	return s.cfg.RecordEnabled
}

// bootstrap loads the first and last records once. A failed load is retried on
// the next call.
func (s *Service) bootstrap(ctx context.Context) {
	if s.bootstrapped {
		return
	}
	last, err := s.repo.LatestRecordFile(ctx)
	if err != nil {
		s.logger.Warn("load latest record file failed", zap.Error(err))
		return
	}
	first, err := s.repo.EarliestRecordFile(ctx)
	if err != nil {
		s.logger.Warn("load earliest record file failed", zap.Error(err))
		return
	}
	if s.last == nil {
		s.last = last.Stripped()
	}
	if s.first == nil {
		s.first = first.Stripped()
	}
	s.bootstrapped = true
}

func (s *Service) switchTo(streamType model.StreamType, reason string) {
	if s.current == streamType {
		return
	}
	s.logger.Info("switching authoritative stream",
		zap.String("from", string(s.current)),
		zap.String("to", string(streamType)),
		zap.String("reason", reason))
	s.metrics.ObserveSwitch(s.current, streamType)
	s.current = streamType
	s.metrics.SetActive(streamType)
}

func other(streamType model.StreamType) model.StreamType {
	if streamType == model.StreamTypeBlock {
		return model.StreamTypeRecord
	}
	return model.StreamTypeBlock
}
