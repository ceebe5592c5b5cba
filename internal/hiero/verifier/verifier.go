// Package verifier accepts blocks in ledger order and hands them to persistence.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/coreos/go-semver/semver"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"go.uber.org/zap"
)

// none marks that persistence had no accepted block.
var none = &model.BlockFile{}

// StreamVerifier checks sequencing and hash chaining of each block before it is
// transformed and persisted. Verification is driven from a single goroutine; the
// last accepted block may additionally be read concurrently.
type StreamVerifier struct {
	logger        *zap.Logger
	repo          Repository
	transformer   Transformer
	listener      Listener
	cutover       CutoverListener
	metrics       Metrics
	hashThreshold semver.Version
	now           func() time.Time

	last atomic.Pointer[model.BlockFile]
}

// New creates a StreamVerifier. Blocks whose hapi version is at least hashThreshold
// carry the hash sentinel instead of linked hashes; a zero threshold disables this.
func New(
	logger *zap.Logger,
	repo Repository,
	transformer Transformer,
	listener Listener,
	cutover CutoverListener,
	metrics Metrics,
	hashThreshold semver.Version,
) (*StreamVerifier, error) {
	if repo == nil {
		return nil, errors.New("verifier repository is required")
	}
	if transformer == nil || listener == nil {
		return nil, errors.New("verifier transformer and listener are required")
	}
	if metrics == nil {
		return nil, errors.New("verifier metrics is required")
	}
	return &StreamVerifier{
		logger:        logger.Named("stream_verifier"),
		repo:          repo,
		transformer:   transformer,
		listener:      listener,
		cutover:       cutover,
		metrics:       metrics,
		hashThreshold: hashThreshold,
		now:           time.Now,
	}, nil
}

// LastBlockFile returns the stripped last accepted block, loading it from the
// repository on first use. It returns nil when no block was ever accepted.
func (v *StreamVerifier) LastBlockFile(ctx context.Context) (*model.BlockFile, error) {
	if last := v.last.Load(); last != nil {
		return visible(last), nil
	}

	loaded, err := v.repo.LatestBlockFile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest block file: %w", err)
	}
	if loaded == nil {
		loaded = none
	} else {
		loaded = loaded.Stripped()
	}
	if !v.last.CompareAndSwap(nil, loaded) {
		return visible(v.last.Load()), nil
	}
	if loaded != none {
		v.logger.Info("bootstrapped last accepted block", zap.Uint64("block", loaded.Index), zap.String("hash", loaded.Hash))
	}
	return visible(loaded), nil
}

func visible(last *model.BlockFile) *model.BlockFile {
	if last == none {
		return nil
	}
	return last
}

// Verify checks a block against the last accepted one and, when it passes,
// transforms it, notifies persistence and makes it the last accepted block.
func (v *StreamVerifier) Verify(ctx context.Context, file *model.BlockFile) error {
	started := v.now()
	err := v.verify(ctx, file)
	v.metrics.ObserveVerify(err, file.SourceType, started)
	return err
}

func (v *StreamVerifier) verify(ctx context.Context, file *model.BlockFile) error {
	last, err := v.LastBlockFile(ctx)
	if err != nil {
		return err
	}

	if last != nil && file.Index != last.Index+1 {
		return &SequenceError{Expected: last.Index + 1, Actual: file.Index}
	}
	number, err := model.BlockNumberFromFilename(file.Name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFilenameMismatch, err)
	}
	if number != file.Index {
		return fmt.Errorf("%w: filename %s encodes block %d, content is block %d", ErrFilenameMismatch, file.Name, number, file.Index)
	}

	if v.sentinelHashes(file) {
		file.Hash = model.HashSentinel
		file.PreviousHash = model.HashSentinel
	} else if last != nil && file.PreviousHash != last.Hash {
		return &HashMismatchError{Block: file.Index, Expected: last.Hash, Actual: file.PreviousHash}
	}

	records := v.transformer.Transform(file)
	records.LoadEnd = v.now()
	if err = v.listener.OnVerified(ctx, records); err != nil {
		return fmt.Errorf("notify verified block %d: %w", file.Index, err)
	}
	if v.cutover != nil {
		v.cutover.Verified(records.Stripped())
	}

	if last != nil {
		v.metrics.ObserveStreamClose(time.Duration(file.ConsensusStart - last.ConsensusStart))
	}
	v.last.Store(file.Stripped())
	v.logger.Debug("verified block",
		zap.Uint64("block", file.Index),
		zap.String("source", string(file.SourceType)),
		zap.String("node", file.NodeID),
		zap.Int("transactions", file.Count))
	return nil
}

func (v *StreamVerifier) sentinelHashes(file *model.BlockFile) bool {
	if v.hashThreshold == (semver.Version{}) {
		return false
	}
	return !file.HapiVersion.LessThan(v.hashThreshold)
}
