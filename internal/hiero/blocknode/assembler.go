package blocknode

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

// assembler collects the item fragments of one block until its end marker.
type assembler struct {
	maxItems int
	maxBytes int

	items     []model.BlockItem
	size      int
	number    uint64
	loadStart time.Time
}

func (a *assembler) pending() bool {
	return len(a.items) > 0
}

// add appends a fragment and reports whether it opened a new block.
func (a *assembler) add(items []model.BlockItem, now time.Time) (bool, error) {
	if len(items) == 0 {
		return false, nil
	}

	opened := false
	first := items[0]
	switch {
	case !a.pending():
		if !first.Kind.StartsBlock() {
			return false, fmt.Errorf("%w: block must start with a block header or record file, got %s", ErrFraming, first.Kind)
		}
		number, err := blockNumber(first)
		if err != nil {
			return false, err
		}
		a.number = number
		a.loadStart = now
		opened = true
	case first.Kind.StartsBlock():
		return false, fmt.Errorf("%w: block %d still pending when the next block started", ErrFraming, a.number)
	}

	for _, item := range items {
		a.size += len(item.Raw)
	}
	a.items = append(a.items, items...)

	if len(a.items) > a.maxItems {
		return opened, fmt.Errorf("%w: block %d exceeds %d items", ErrFraming, a.number, a.maxItems)
	}
	if a.size > a.maxBytes {
		return opened, fmt.Errorf("%w: block %d exceeds %d bytes", ErrFraming, a.number, a.maxBytes)
	}
	return opened, nil
}

// finish hands out the assembled block and clears the buffer.
func (a *assembler) finish() *model.BlockStream {
	stream := &model.BlockStream{
		Items:     a.items,
		Filename:  model.BlockFilename(a.number, false),
		LoadStart: a.loadStart,
		NodeID:    model.UnknownNodeID,
	}
	a.release()
	return stream
}

func (a *assembler) release() {
	a.items = nil
	a.size = 0
	a.number = 0
	a.loadStart = time.Time{}
}

func blockNumber(item model.BlockItem) (uint64, error) {
	if item.Kind == model.BlockItemRecordFile {
		record, err := blockstream.DecodeRecordFileItem(item.Raw)
		if err != nil {
			return 0, fmt.Errorf("%w: decode record file item: %v", ErrFraming, err)
		}
		return record.Number, nil
	}
	header, err := blockstream.DecodeBlockHeader(item.Raw)
	if err != nil {
		return 0, fmt.Errorf("%w: decode block header: %v", ErrFraming, err)
	}
	return header.Number, nil
}
