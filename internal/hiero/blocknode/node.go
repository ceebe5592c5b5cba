// Package blocknode streams blocks from block nodes and tracks the health of
// every configured node.
package blocknode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/clock"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Range is the inclusive range of blocks a node advertises.
type Range struct {
	First uint64
	Last  uint64
	known bool
}

// Contains reports whether the range holds block n. An unknown range holds nothing.
func (r Range) Contains(n uint64) bool {
	return r.known && r.First <= n && n <= r.Last
}

// NodeStatus is a point in time view of a node's health.
type NodeStatus struct {
	Endpoint  string     `json:"endpoint"`
	Priority  int        `json:"priority"`
	Active    bool       `json:"active"`
	Errors    uint32     `json:"errors"`
	ReadmitAt *time.Time `json:"readmitAt,omitempty"`
}

// Node is one block node. Health is written by the single ingestion loop and may
// be read from anywhere.
type Node struct {
	logger   *zap.Logger
	endpoint string
	priority int
	opts     Options
	client   Client
	metrics  Metrics
	clock    clock.Clock

	errors    atomic.Uint32
	active    atomic.Bool
	readmitAt atomic.Time
}

// NewNode creates an active node.
func NewNode(logger *zap.Logger, cfg NodeConfig, opts Options, client Client, metrics Metrics, c clock.Clock) *Node {
	if c == nil {
		c = clock.System
	}
	endpoint := cfg.StreamingEndpoint()
	n := &Node{
		logger:   logger.Named("blocknode").With(zap.String("node", endpoint)),
		endpoint: endpoint,
		priority: cfg.Priority,
		opts:     opts.withDefaults(),
		client:   client,
		metrics:  metrics,
		clock:    c,
	}
	n.active.Store(true)
	return n
}

func (n *Node) Endpoint() string { return n.endpoint }

func (n *Node) Priority() int { return n.priority }

// IsActive reports whether the node may be routed to, readmitting a quarantined
// node whose delay has passed.
func (n *Node) IsActive() bool {
	if n.active.Load() {
		return true
	}
	if n.clock.Now().Before(n.readmitAt.Load()) {
		return false
	}
	n.Readmit("readmit delay elapsed")
	return true
}

// Readmit makes the node active again with a clean error count.
func (n *Node) Readmit(reason string) {
	n.errors.Store(0)
	if n.active.CompareAndSwap(false, true) {
		n.logger.Info("readmitting block node", zap.String("reason", reason))
		n.metrics.SetQuarantined(n.endpoint, false)
	}
}

// Status returns the node's current health.
func (n *Node) Status() NodeStatus {
	status := NodeStatus{
		Endpoint: n.endpoint,
		Priority: n.priority,
		Active:   n.active.Load(),
		Errors:   n.errors.Load(),
	}
	if !status.Active {
		readmitAt := n.readmitAt.Load()
		status.ReadmitAt = &readmitAt
	}
	return status
}

// BlockRange asks the node which blocks it can serve. Any failure yields an
// unknown range.
func (n *Node) BlockRange(ctx context.Context) Range {
	ctx, cancel := context.WithTimeout(ctx, n.opts.StatusTimeout)
	defer cancel()

	status, err := n.client.ServerStatus(ctx)
	if err != nil {
		n.logger.Debug("server status failed", zap.Error(err))
		return Range{}
	}
	return Range{First: status.FirstAvailableBlock, Last: status.LastAvailableBlock, known: true}
}

// StreamBlocks subscribes from start to end and hands every complete block to
// onBlockStream before reading on. It returns nil when the node ends the stream
// successfully. Any other exit counts against the node's health.
func (n *Node) StreamBlocks(ctx context.Context, start, end uint64, onBlockStream func(*model.BlockStream) error) (err error) {
	started := n.clock.Now()
	parent := ctx
	ctx, cancel := context.WithCancelCause(ctx)
	idle := time.AfterFunc(n.opts.IdleTimeout, func() { cancel(ErrIdleTimeout) })

	a := &assembler{maxItems: n.opts.MaxBlockItems, maxBytes: n.opts.MaxStreamResponseSize}
	blocks := 0
	defer func() {
		idle.Stop()
		cancel(nil)
		a.release()
		n.metrics.ObserveStream(n.endpoint, err, blocks, started)
		if err != nil && parent.Err() == nil {
			n.recordError(err, start+uint64(blocks))
		}
	}()

	stream, err := n.client.Subscribe(ctx, &blockstream.SubscribeStreamRequest{StartBlockNumber: start, EndBlockNumber: end})
	if err != nil {
		return fmt.Errorf("subscribe from block %d: %w", start, err)
	}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if errors.Is(context.Cause(ctx), ErrIdleTimeout) {
				return fmt.Errorf("%w: no block within %s", ErrIdleTimeout, n.opts.IdleTimeout)
			}
			return fmt.Errorf("receive block stream: %w", err)
		}

		switch resp.Kind {
		case blockstream.ResponseBlockItems:
			opened, err := a.add(resp.BlockItems, n.clock.Now())
			if err != nil {
				return err
			}
			if opened {
				idle.Reset(n.opts.IdleTimeout)
			}
			n.errors.Store(0)
		case blockstream.ResponseEndOfBlock:
			if !a.pending() {
				return fmt.Errorf("%w: end of block %d without items", ErrFraming, resp.EndOfBlock)
			}
			if a.number != resp.EndOfBlock {
				n.logger.Warn("end of block does not match block header",
					zap.Uint64("block", a.number),
					zap.Uint64("end_of_block", resp.EndOfBlock))
			}
			// the idle budget bounds reads only, not block processing
			idle.Stop()
			if err := onBlockStream(a.finish()); err != nil {
				return err
			}
			blocks++
			idle.Reset(n.opts.IdleTimeout)
		case blockstream.ResponseStatus:
			if resp.Status == blockstream.ResponseCodeSuccess {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrStreamStatus, resp.Status)
		default:
			return fmt.Errorf("%w: unexpected response", ErrFraming)
		}
	}
}

// Close releases the node's channels.
func (n *Node) Close() error {
	return n.client.Close()
}

func (n *Node) recordError(err error, block uint64) {
	count := n.errors.Inc()
	n.logger.Warn("block stream failed",
		zap.Error(err),
		zap.Uint64("block", block),
		zap.Uint32("errors", count))

	if int(count) < n.opts.MaxSubscribeAttempts || !n.active.Load() {
		return
	}
	readmitAt := n.clock.Now().Add(n.opts.ReadmitDelay)
	n.readmitAt.Store(readmitAt)
	n.active.Store(false)
	n.logger.Warn("quarantining block node", zap.Time("readmit_at", readmitAt))
	n.metrics.SetQuarantined(n.endpoint, true)
}
