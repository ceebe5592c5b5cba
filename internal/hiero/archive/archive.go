// Package archive keeps the raw bytes of accepted blocks on local disk.
package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/chain"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/goodnatureofminers/hiero-importer/pkg/batcher"
	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// Config of the archive writer.
type Config struct {
	Dir      string
	Compress bool
	Batch    batcher.Config
}

type entry struct {
	path string
	data []byte
}

// Writer writes accepted blocks to <dir>/<nodeId>/<filename> in the background.
type Writer struct {
	logger   *zap.Logger
	dir      string
	compress bool
	metrics  Metrics
	batcher  *batcher.Batcher[entry]
}

var _ chain.Archiver = (*Writer)(nil)

// New creates a Writer. Start must be called before blocks are archived.
func New(logger *zap.Logger, cfg Config, metrics Metrics) (*Writer, error) {
	if cfg.Dir == "" {
		return nil, errors.New("archive dir is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if cfg.Batch.FlushSize <= 0 {
		cfg.Batch.FlushSize = defaultFlushSize
	}
	if cfg.Batch.FlushInterval <= 0 {
		cfg.Batch.FlushInterval = defaultFlushInterval
	}
	if cfg.Batch.RPS <= 0 {
		cfg.Batch.RPS = defaultFlushRPS
	}

	w := &Writer{
		logger:   logger.Named("archive"),
		dir:      cfg.Dir,
		compress: cfg.Compress,
		metrics:  metrics,
	}
	w.batcher = batcher.New(w.logger, w.write, cfg.Batch)
	return w, nil
}

// Start begins writing queued blocks.
func (w *Writer) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop writes every queued block and returns.
func (w *Writer) Stop() {
	w.batcher.Stop()
}

// Archive queues the block for writing.
func (w *Writer) Archive(ctx context.Context, stream *model.BlockStream, file *model.BlockFile) error {
	data := stream.Bytes
	if len(data) == 0 {
		data = blockstream.EncodeBlockItems(stream.Items)
	}
	nodeID := file.NodeID
	if nodeID == "" {
		nodeID = model.UnknownNodeID
	}
	return w.batcher.Add(ctx, entry{
		path: filepath.Join(w.dir, nodeID, model.BlockFilename(file.Index, w.compress)),
		data: data,
	})
}

func (w *Writer) write(_ context.Context, entries []entry) (err error) {
	started := time.Now()
	defer func() {
		w.metrics.ObserveArchive(err, len(entries), started)
	}()

	var result *multierror.Error
	for _, e := range entries {
		if err := w.writeFile(e); err != nil {
			result = multierror.Append(result, fmt.Errorf("archive %s: %w", e.path, err))
		}
	}
	return result.ErrorOrNil()
}

// writeFile writes through a temporary file so readers never see a partial block.
func (w *Writer) writeFile(e entry) (err error) {
	dir := filepath.Dir(e.path)
	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(e.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if w.compress {
		zw := gzip.NewWriter(tmp)
		if _, err = zw.Write(e.data); err != nil {
			return err
		}
		if err = zw.Close(); err != nil {
			return err
		}
	} else if _, err = tmp.Write(e.data); err != nil {
		return err
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), e.path)
}
