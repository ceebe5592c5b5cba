package blocknode

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/chain"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// Subscriber is the block source backed by block nodes.
type Subscriber struct {
	logger           *zap.Logger
	nodes            []*Node
	reader           BlockReader
	verifier         StreamVerifier
	archiver         Archiver
	startBlockNumber int64
	endBlockNumber   int64
}

var _ chain.BlockSource = (*Subscriber)(nil)

// NewSubscriber creates a Subscriber routing over nodes in priority order, lowest
// value first. Negative start or end block numbers are unset; archiver is optional.
func NewSubscriber(
	logger *zap.Logger,
	nodes []*Node,
	reader BlockReader,
	verifier StreamVerifier,
	archiver Archiver,
	startBlockNumber int64,
	endBlockNumber int64,
) (*Subscriber, error) {
	if reader == nil {
		return nil, errors.New("block reader is required")
	}
	if verifier == nil {
		return nil, errors.New("stream verifier is required")
	}
	sorted := make([]*Node, len(nodes))
	copy(sorted, nodes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority() < sorted[j].Priority() })

	return &Subscriber{
		logger:           logger.Named("blocknode_subscriber"),
		nodes:            sorted,
		reader:           reader,
		verifier:         verifier,
		archiver:         archiver,
		startBlockNumber: startBlockNumber,
		endBlockNumber:   endBlockNumber,
	}, nil
}

// HasNodes reports whether any block node is configured.
func (s *Subscriber) HasNodes() bool {
	return len(s.nodes) > 0
}

// Nodes returns the health of every node in routing order.
func (s *Subscriber) Nodes() []NodeStatus {
	statuses := make([]NodeStatus, 0, len(s.nodes))
	for _, node := range s.nodes {
		statuses = append(statuses, node.Status())
	}
	return statuses
}

// Get streams blocks from the best node that holds the next block, until the
// node ends the stream or a block fails.
func (s *Subscriber) Get(ctx context.Context) error {
	last, err := s.verifier.LastBlockFile(ctx)
	if err != nil {
		return fmt.Errorf("load last block file: %w", err)
	}
	next := chain.NextBlockNumber(last, s.startBlockNumber)

	end := blockstream.UnboundedEnd
	if s.endBlockNumber >= 0 {
		end = uint64(s.endBlockNumber)
		if next > end {
			s.logger.Debug("end block reached", zap.Uint64("block", next), zap.Uint64("end", end))
			return nil
		}
	}

	node, err := s.selectNode(ctx, next)
	if err != nil {
		return err
	}
	s.logger.Debug("streaming blocks", zap.String("node", node.Endpoint()), zap.Uint64("block", next))

	return node.StreamBlocks(ctx, next, end, func(stream *model.BlockStream) error {
		return s.onBlockStream(ctx, stream)
	})
}

// Close closes every node.
func (s *Subscriber) Close() error {
	var result *multierror.Error
	for _, node := range s.nodes {
		if err := node.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close %s: %w", node.Endpoint(), err))
		}
	}
	return result.ErrorOrNil()
}

func (s *Subscriber) onBlockStream(ctx context.Context, stream *model.BlockStream) error {
	file, err := s.reader.Read(stream)
	if err != nil {
		return fmt.Errorf("read block stream %s: %w", stream.Filename, err)
	}
	file.SourceType = model.SourceBlockNode
	if err = s.verifier.Verify(ctx, file); err != nil {
		return err
	}
	if s.archiver != nil {
		if err = s.archiver.Archive(ctx, stream, file); err != nil {
			s.logger.Warn("archive block failed", zap.Uint64("block", file.Index), zap.Error(err))
		}
	}
	return nil
}

// selectNode prefers active nodes, then force readmits a quarantined node that
// holds the block.
func (s *Subscriber) selectNode(ctx context.Context, block uint64) (*Node, error) {
	var quarantined []*Node
	for _, node := range s.nodes {
		if !node.IsActive() {
			quarantined = append(quarantined, node)
			continue
		}
		if node.BlockRange(ctx).Contains(block) {
			return node, nil
		}
	}
	for _, node := range quarantined {
		if node.BlockRange(ctx).Contains(block) {
			node.Readmit(fmt.Sprintf("only node holding block %d", block))
			return node, nil
		}
	}
	return nil, fmt.Errorf("%w %d", ErrNoBlockNode, block)
}
