package blockstream

import (
	"github.com/coreos/go-semver/semver"
)

// BlockHeader opens a native block.
type BlockHeader struct {
	HapiVersion     semver.Version
	SoftwareVersion semver.Version
	Number          uint64
	Timestamp       int64
	HashAlgorithm   int32
}

// DecodeBlockHeader decodes a block header item.
func DecodeBlockHeader(b []byte) (BlockHeader, error) {
	var h BlockHeader
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			h.HapiVersion, err = decodeVersion(f.bytes)
		case 2:
			h.SoftwareVersion, err = decodeVersion(f.bytes)
		case 3:
			h.Number = f.v
		case 4:
			h.Timestamp, err = decodeTimestamp(f.bytes)
		case 5:
			h.HashAlgorithm = f.int32()
		}
		return err
	})
	return h, err
}

// EncodeBlockHeader encodes a block header item.
func EncodeBlockHeader(h BlockHeader) []byte {
	var b []byte
	b = appendVersion(b, 1, h.HapiVersion)
	b = appendVersion(b, 2, h.SoftwareVersion)
	b = appendVarint(b, 3, h.Number)
	b = appendTimestamp(b, 4, h.Timestamp)
	return appendVarint(b, 5, uint64(h.HashAlgorithm))
}

// RoundHeader marks the start of a consensus round.
type RoundHeader struct {
	RoundNumber uint64
}

func DecodeRoundHeader(b []byte) (RoundHeader, error) {
	var h RoundHeader
	err := walk(b, func(f field) error {
		if f.num == 1 {
			h.RoundNumber = f.v
		}
		return nil
	})
	return h, err
}

func EncodeRoundHeader(h RoundHeader) []byte {
	return appendVarint(nil, 1, h.RoundNumber)
}

// BlockProof closes a native block.
type BlockProof struct {
	Block                     uint64
	PreviousBlockRootHash     []byte
	StartOfBlockStateRootHash []byte
}

func DecodeBlockProof(b []byte) (BlockProof, error) {
	var p BlockProof
	err := walk(b, func(f field) error {
		switch f.num {
		case 1:
			p.Block = f.v
		case 2:
			p.PreviousBlockRootHash = f.bytes
		case 3:
			p.StartOfBlockStateRootHash = f.bytes
		}
		return nil
	})
	return p, err
}

func EncodeBlockProof(p BlockProof) []byte {
	var b []byte
	b = appendVarint(b, 1, p.Block)
	b = appendBytes(b, 2, p.PreviousBlockRootHash)
	return appendBytes(b, 3, p.StartOfBlockStateRootHash)
}

// RecordFileItem wraps a legacy record file as a single block item.
type RecordFileItem struct {
	Number           uint64
	HapiVersion      semver.Version
	ConsensusStart   int64
	ConsensusEnd     int64
	StartRunningHash []byte
	EndRunningHash   []byte
	Count            int
	Contents         []byte
}

func DecodeRecordFileItem(b []byte) (RecordFileItem, error) {
	var r RecordFileItem
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Number = f.v
		case 2:
			r.HapiVersion, err = decodeVersion(f.bytes)
		case 3:
			r.ConsensusStart, err = decodeTimestamp(f.bytes)
		case 4:
			r.ConsensusEnd, err = decodeTimestamp(f.bytes)
		case 5:
			r.StartRunningHash = f.bytes
		case 6:
			r.EndRunningHash = f.bytes
		case 7:
			r.Count = int(f.v)
		case 8:
			r.Contents = f.bytes
		}
		return err
	})
	return r, err
}

func EncodeRecordFileItem(r RecordFileItem) []byte {
	var b []byte
	b = appendVarint(b, 1, r.Number)
	b = appendVersion(b, 2, r.HapiVersion)
	b = appendTimestamp(b, 3, r.ConsensusStart)
	b = appendTimestamp(b, 4, r.ConsensusEnd)
	b = appendBytes(b, 5, r.StartRunningHash)
	b = appendBytes(b, 6, r.EndRunningHash)
	b = appendVarint(b, 7, uint64(r.Count))
	return appendBytes(b, 8, r.Contents)
}
