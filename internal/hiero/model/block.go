// Package model defines domain models for block stream ingestion.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coreos/go-semver/semver"
)

// SourceType identifies where a block was acquired from.
type SourceType string

var (
	// SourceFile marks blocks downloaded from cloud or file storage.
	SourceFile SourceType = "FILE"
	// SourceBlockNode marks blocks streamed from a block node.
	SourceBlockNode SourceType = "BLOCK_NODE"
)

// StreamType identifies one of the two wire formats of the ledger stream.
type StreamType string

var (
	StreamTypeRecord StreamType = "RECORD"
	StreamTypeBlock  StreamType = "BLOCK"
)

const (
	// UnknownNodeID is used when a source does not track per-item provenance.
	UnknownNodeID = "unknown"

	// RecordFileVersion is the format version of wrapped legacy record files.
	RecordFileVersion = 6
	// BlockFileVersion is the format version of native block stream blocks.
	BlockFileVersion = 7

	blockFilenameDigits    = 36
	blockFilenameExtension = ".blk"
	gzipExtension          = ".gz"
)

// HashSentinel replaces both hash fields once the chain is hashed with an algorithm
// that does not link blocks yet. It is the hex form of 48 zero bytes.
var HashSentinel = strings.Repeat("0", 96)

// BlockItemKind is the decoded tag of a raw block item.
type BlockItemKind int

const (
	BlockItemUnknown BlockItemKind = iota
	BlockItemHeader
	BlockItemEventHeader
	BlockItemRoundHeader
	BlockItemSignedTransaction
	BlockItemTransactionResult
	BlockItemTransactionOutput
	BlockItemStateChanges
	BlockItemFilteredItemHash
	BlockItemProof
	BlockItemRecordFile
	BlockItemTraceData
)

var blockItemKindNames = map[BlockItemKind]string{
	BlockItemUnknown:           "unknown",
	BlockItemHeader:            "block_header",
	BlockItemEventHeader:       "event_header",
	BlockItemRoundHeader:       "round_header",
	BlockItemSignedTransaction: "signed_transaction",
	BlockItemTransactionResult: "transaction_result",
	BlockItemTransactionOutput: "transaction_output",
	BlockItemStateChanges:      "state_changes",
	BlockItemFilteredItemHash:  "filtered_item_hash",
	BlockItemProof:             "block_proof",
	BlockItemRecordFile:        "record_file",
	BlockItemTraceData:         "trace_data",
}

func (k BlockItemKind) String() string {
	if name, ok := blockItemKindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// StartsBlock reports whether an item of this kind may open a block.
func (k BlockItemKind) StartsBlock() bool {
	return k == BlockItemHeader || k == BlockItemRecordFile
}

// BlockItem is one encoded ledger item.
type BlockItem struct {
	Kind BlockItemKind
	// Raw holds the encoded item payload (the oneof value, without the BlockItem envelope).
	Raw []byte
}

// BlockStream is the transient output of a source for exactly one block.
type BlockStream struct {
	Items     []BlockItem
	Bytes     []byte
	Filename  string
	LoadStart time.Time
	NodeID    string
}

// Size returns the encoded size of all items.
func (s *BlockStream) Size() int {
	if len(s.Bytes) > 0 {
		return len(s.Bytes)
	}
	size := 0
	for _, item := range s.Items {
		size += len(item.Raw)
	}
	return size
}

// BlockFile is the durable unit of ingestion.
type BlockFile struct {
	Index           uint64
	Hash            string
	PreviousHash    string
	ConsensusStart  int64
	ConsensusEnd    int64
	Count           int
	Size            int
	HapiVersion     semver.Version
	SoftwareVersion semver.Version
	Version         int
	NodeID          string
	SourceType      SourceType
	Name            string
	LoadStart       time.Time
	Bytes           []byte
	RoundStart      uint64
	RoundEnd        uint64

	Transactions       []*BlockTransaction
	StateChangeContext *StateChangeContext
}

// Stripped returns a copy that carries only sequencing state.
func (b *BlockFile) Stripped() *BlockFile {
	if b == nil {
		return nil
	}
	c := *b
	c.Transactions = nil
	c.StateChangeContext = nil
	c.Bytes = nil
	return &c
}

// LastConsensusTimestamp returns the consensus time of the last transaction, or the
// block end when the block carries none.
func (b *BlockFile) LastConsensusTimestamp() int64 {
	if n := len(b.Transactions); n > 0 {
		return b.Transactions[n-1].ConsensusTimestamp
	}
	return b.ConsensusEnd
}

// BlockFilename derives the canonical filename of a block number.
func BlockFilename(number uint64, gzipped bool) string {
	name := fmt.Sprintf("%0*d%s", blockFilenameDigits, number, blockFilenameExtension)
	if gzipped {
		name += gzipExtension
	}
	return name
}

// BlockNumberFromFilename parses the block number encoded in a canonical filename.
// Leading directories are ignored.
func BlockNumberFromFilename(filename string) (uint64, error) {
	name := filename
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSuffix(name, gzipExtension)
	if !strings.HasSuffix(name, blockFilenameExtension) {
		return 0, fmt.Errorf("block filename %q has unexpected extension", filename)
	}
	digits := strings.TrimSuffix(name, blockFilenameExtension)
	if len(digits) != blockFilenameDigits {
		return 0, fmt.Errorf("block filename %q has %d digits, want %d", filename, len(digits), blockFilenameDigits)
	}
	number, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse block number from %q: %w", filename, err)
	}
	return number, nil
}
