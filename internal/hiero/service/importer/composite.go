package importer

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/chain"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// sourceHealth counts the failures of a source since its last success.
type sourceHealth struct {
	errors atomic.Uint32
}

func (h *sourceHealth) healthy() bool {
	return h.errors.Load() < healthyErrorThreshold
}

// CompositeBlockSource routes every Get to the file source or the block node
// source according to the policy and the health of each source.
type CompositeBlockSource struct {
	logger    *zap.Logger
	policy    SourcePolicy
	file      BlockSource
	blockNode StreamingSource
	last      LastBlockFinder
	metrics   Metrics

	health  map[model.SourceType]*sourceHealth
	current atomic.String
}

var _ chain.BlockSource = (*CompositeBlockSource)(nil)

// NewCompositeBlockSource creates a CompositeBlockSource. It starts on the block
// node source when nodes are configured.
func NewCompositeBlockSource(
	logger *zap.Logger,
	policy SourcePolicy,
	file BlockSource,
	blockNode StreamingSource,
	last LastBlockFinder,
	metrics Metrics,
) (*CompositeBlockSource, error) {
	if file == nil {
		return nil, errors.New("file source is required")
	}
	if blockNode == nil {
		return nil, errors.New("block node source is required")
	}
	if last == nil {
		return nil, errors.New("last block finder is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if _, err := ParseSourcePolicy(string(policy)); err != nil {
		return nil, err
	}

	c := &CompositeBlockSource{
		logger:    logger.Named("composite_source").With(zap.String("policy", string(policy))),
		policy:    policy,
		file:      file,
		blockNode: blockNode,
		last:      last,
		metrics:   metrics,
		health: map[model.SourceType]*sourceHealth{
			model.SourceFile:      {},
			model.SourceBlockNode: {},
		},
	}
	initial := model.SourceFile
	if blockNode.HasNodes() {
		initial = model.SourceBlockNode
	}
	c.current.Store(string(initial))
	return c, nil
}

// Get acquires the next block from the selected source and updates its health.
func (c *CompositeBlockSource) Get(ctx context.Context) error {
	selected := c.selectSource(ctx)
	c.current.Store(string(selected))
	health := c.health[selected]

	started := time.Now()
	err := c.source(selected).Get(ctx)
	c.metrics.ObserveGet(selected, err, started)
	if err != nil {
		errs := health.errors.Inc()
		c.metrics.SetSourceErrors(selected, errs)
		return err
	}
	if health.errors.Swap(0) != 0 {
		c.metrics.SetSourceErrors(selected, 0)
	}
	return nil
}

// Current returns the source used by the latest Get.
func (c *CompositeBlockSource) Current() model.SourceType {
	return model.SourceType(c.current.Load())
}

// Errors returns the failures of a source since its last success.
func (c *CompositeBlockSource) Errors(source model.SourceType) uint32 {
	if h, ok := c.health[source]; ok {
		return h.errors.Load()
	}
	return 0
}

func (c *CompositeBlockSource) selectSource(ctx context.Context) model.SourceType {
	switch c.policy {
	case PolicyFile:
		return model.SourceFile
	case PolicyBlockNode:
		return model.SourceBlockNode
	}

	if !c.blockNode.HasNodes() {
		return model.SourceFile
	}
	last, err := c.last.LastBlockFile(ctx)
	if err != nil {
		c.logger.Debug("last block file unavailable", zap.Error(err))
	}
	if last != nil && last.SourceType == model.SourceBlockNode {
		return model.SourceBlockNode
	}

	current := c.Current()
	if c.health[current].healthy() {
		return current
	}
	next := other(current)
	c.logger.Info("switching block source",
		zap.String("from", string(current)),
		zap.String("to", string(next)),
		zap.Uint32("errors", c.health[current].errors.Load()))
	return next
}

func (c *CompositeBlockSource) source(t model.SourceType) BlockSource {
	if t == model.SourceBlockNode {
		return c.blockNode
	}
	return c.file
}

func other(t model.SourceType) model.SourceType {
	if t == model.SourceBlockNode {
		return model.SourceFile
	}
	return model.SourceBlockNode
}
