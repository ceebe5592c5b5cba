// Package chain defines the contracts shared between block acquisition components.
package chain

import (
	"context"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

// BlockSource acquires and fully processes the next block. Success and failure are
// observed through the returned error and the persistence side effects.
type BlockSource interface {
	Get(ctx context.Context) error
}

// StreamVerifier accepts parsed blocks strictly in ledger order.
type StreamVerifier interface {
	Verify(ctx context.Context, file *model.BlockFile) error
	LastBlockFile(ctx context.Context) (*model.BlockFile, error)
}

// BlockReader parses the raw items of one block.
type BlockReader interface {
	Read(stream *model.BlockStream) (*model.BlockFile, error)
}

// Archiver keeps the raw bytes of accepted blocks.
type Archiver interface {
	Archive(ctx context.Context, stream *model.BlockStream, file *model.BlockFile) error
}

// NextBlockNumber returns the block a source should acquire next: the successor of
// the last accepted block, else the configured start block (negative when unset),
// else genesis.
func NextBlockNumber(last *model.BlockFile, startBlockNumber int64) uint64 {
	if last != nil {
		return last.Index + 1
	}
	if startBlockNumber >= 0 {
		return uint64(startBlockNumber)
	}
	return 0
}
