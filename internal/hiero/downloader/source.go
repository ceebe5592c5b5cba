// Package downloader acquires blocks from the files upstream nodes upload to
// cloud storage.
package downloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path"
	"strconv"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/clock"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/chain"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// Config of the file source.
type Config struct {
	// NodeIDs are the upstream nodes whose uploads are tried.
	NodeIDs    []string
	Shard      uint64
	PathPrefix string
	// Timeout is the budget shared by all attempts of one Get.
	Timeout          time.Duration
	StartBlockNumber int64
	EndBlockNumber   int64
}

// FileSource is the block source backed by uploaded block files.
type FileSource struct {
	logger   *zap.Logger
	cfg      Config
	store    ObjectStore
	reader   BlockReader
	verifier StreamVerifier
	archiver Archiver
	metrics  Metrics
	clock    clock.Clock
	shuffle  func(n int, swap func(i, j int))
}

var _ chain.BlockSource = (*FileSource)(nil)

// NewFileSource creates a FileSource. archiver is optional.
func NewFileSource(
	logger *zap.Logger,
	cfg Config,
	store ObjectStore,
	reader BlockReader,
	verifier StreamVerifier,
	archiver Archiver,
	metrics Metrics,
) (*FileSource, error) {
	if store == nil {
		return nil, errors.New("object store is required")
	}
	if reader == nil {
		return nil, errors.New("block reader is required")
	}
	if verifier == nil {
		return nil, errors.New("stream verifier is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &FileSource{
		logger:   logger.Named("file_source"),
		cfg:      cfg,
		store:    store,
		reader:   reader,
		verifier: verifier,
		archiver: archiver,
		metrics:  metrics,
		clock:    clock.System,
		shuffle:  rand.Shuffle,
	}, nil
}

// Get downloads, verifies and archives the next block, trying the nodes in random
// order until one succeeds or the timeout budget runs out.
func (s *FileSource) Get(ctx context.Context) error {
	last, err := s.verifier.LastBlockFile(ctx)
	if err != nil {
		return fmt.Errorf("load last block file: %w", err)
	}
	block := chain.NextBlockNumber(last, s.cfg.StartBlockNumber)
	if s.cfg.EndBlockNumber >= 0 && block > uint64(s.cfg.EndBlockNumber) {
		s.logger.Debug("end block reached", zap.Uint64("block", block))
		return nil
	}
	if len(s.cfg.NodeIDs) == 0 {
		return fmt.Errorf("%w %d: no nodes configured", ErrNoNodes, block)
	}

	nodes := make([]string, len(s.cfg.NodeIDs))
	copy(nodes, s.cfg.NodeIDs)
	s.shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })

	filename := model.BlockFilename(block, true)
	remaining := s.cfg.Timeout
	var result *multierror.Error
	for _, node := range nodes {
		if remaining <= 0 {
			return fmt.Errorf("%w for block %d: %w", ErrTimeoutBudget, block, result.ErrorOrNil())
		}

		started := s.clock.Now()
		err := s.download(ctx, node, filename, remaining)
		s.metrics.ObserveDownload(node, err, started)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		remaining -= s.clock.Now().Sub(started)
		s.logger.Warn("block download failed",
			zap.String("node", node),
			zap.Uint64("block", block),
			zap.Duration("remaining", remaining),
			zap.Error(err))
		result = multierror.Append(result, fmt.Errorf("node %s: %w", node, err))
	}
	return fmt.Errorf("%w %d: %w", ErrNoNodes, block, result.ErrorOrNil())
}

func (s *FileSource) download(ctx context.Context, node, filename string, budget time.Duration) error {
	loadStart := s.clock.Now()
	fetchCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	obj, err := s.store.GetObject(fetchCtx, s.key(node, filename))
	if err != nil {
		return err
	}
	data, err := gunzip(obj.Body)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", filename, err)
	}
	items, err := blockstream.DecodeBlockItems(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", filename, err)
	}

	stream := &model.BlockStream{
		Items:     items,
		Bytes:     data,
		Filename:  filename,
		LoadStart: loadStart,
		NodeID:    node,
	}
	file, err := s.reader.Read(stream)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}
	file.SourceType = model.SourceFile
	if err = s.verifier.Verify(ctx, file); err != nil {
		return err
	}

	consensus := time.Unix(0, file.LastConsensusTimestamp())
	s.metrics.ObserveCloudStorageLatency(obj.LastModified.Sub(consensus))
	s.metrics.ObserveVerificationLatency(s.clock.Now().Sub(consensus))

	if s.archiver != nil {
		if err = s.archiver.Archive(ctx, stream, file); err != nil {
			s.logger.Warn("archive block failed", zap.Uint64("block", file.Index), zap.Error(err))
		}
	}
	return nil
}

// key returns <prefix>/<shard>/<nodeId>/<filename>.
func (s *FileSource) key(node, filename string) string {
	return path.Join(s.cfg.PathPrefix, strconv.FormatUint(s.cfg.Shard, 10), node, filename)
}

func gunzip(b []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err = buf.ReadFrom(zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
