package blockstream

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"go.uber.org/zap"
)

// Reader turns the raw items of one block into a BlockFile.
type Reader struct {
	logger *zap.Logger
}

// NewReader creates a Reader.
func NewReader(logger *zap.Logger) *Reader {
	return &Reader{logger: logger.Named("blockstream_reader")}
}

// Read parses a block stream. The first item must open a block: a block header or
// a wrapped record file.
func (r *Reader) Read(stream *model.BlockStream) (*model.BlockFile, error) {
	if len(stream.Items) == 0 {
		return nil, malformed("block stream %q has no items", stream.Filename)
	}

	var (
		file *model.BlockFile
		err  error
	)
	switch first := stream.Items[0]; first.Kind {
	case model.BlockItemHeader:
		file, err = r.readBlock(stream)
	case model.BlockItemRecordFile:
		file, err = r.readRecordFile(stream)
	default:
		return nil, malformed("block stream %q starts with %s", stream.Filename, first.Kind)
	}
	if err != nil {
		return nil, err
	}

	file.Name = stream.Filename
	if file.Name == "" {
		file.Name = model.BlockFilename(file.Index, false)
	}
	file.NodeID = stream.NodeID
	file.LoadStart = stream.LoadStart
	file.Bytes = stream.Bytes
	file.Size = stream.Size()
	return file, nil
}

func (r *Reader) readRecordFile(stream *model.BlockStream) (*model.BlockFile, error) {
	if len(stream.Items) != 1 {
		return nil, malformed("wrapped record file carries %d items", len(stream.Items))
	}
	item, err := DecodeRecordFileItem(stream.Items[0].Raw)
	if err != nil {
		return nil, fmt.Errorf("decode record file item: %w", err)
	}

	ctx := model.NewStateChangeContext()
	ctx.Freeze()
	return &model.BlockFile{
		Index:              item.Number,
		Hash:               hex.EncodeToString(item.EndRunningHash),
		PreviousHash:       hex.EncodeToString(item.StartRunningHash),
		ConsensusStart:     item.ConsensusStart,
		ConsensusEnd:       item.ConsensusEnd,
		Count:              item.Count,
		HapiVersion:        item.HapiVersion,
		SoftwareVersion:    item.HapiVersion,
		Version:            model.RecordFileVersion,
		StateChangeContext: ctx,
	}, nil
}

func (r *Reader) readBlock(stream *model.BlockStream) (*model.BlockFile, error) {
	ctx := model.NewStateChangeContext()
	file := &model.BlockFile{Version: model.BlockFileVersion, StateChangeContext: ctx}

	var (
		header    BlockHeader
		proof     *BlockProof
		txs       []*model.BlockTransaction
		round     uint64
		haveRound bool
	)

	for i, item := range stream.Items {
		switch item.Kind {
		case model.BlockItemHeader:
			if i != 0 {
				return nil, malformed("block header at item %d", i)
			}
			h, err := DecodeBlockHeader(item.Raw)
			if err != nil {
				return nil, fmt.Errorf("decode block header: %w", err)
			}
			header = h

		case model.BlockItemRoundHeader:
			h, err := DecodeRoundHeader(item.Raw)
			if err != nil {
				return nil, fmt.Errorf("decode round header: %w", err)
			}
			if !haveRound {
				file.RoundStart = h.RoundNumber
				haveRound = true
			}
			round = h.RoundNumber

		case model.BlockItemSignedTransaction:
			signed, body, err := DecodeSignedTransaction(item.Raw)
			if err != nil {
				return nil, fmt.Errorf("decode transaction %d: %w", len(txs), err)
			}
			txs = append(txs, &model.BlockTransaction{
				Index:                  len(txs),
				HapiVersion:            header.HapiVersion,
				SignedTransactionBytes: item.Raw,
				SignedTransaction:      signed,
				Body:                   body,
				StateChangeContext:     ctx,
			})

		case model.BlockItemTransactionResult:
			tx := lastTransaction(txs)
			if tx == nil || tx.Result.ConsensusTimestamp != 0 {
				return nil, malformed("transaction result at item %d has no pending transaction", i)
			}
			result, err := DecodeTransactionResult(item.Raw)
			if err != nil {
				return nil, fmt.Errorf("decode transaction result %d: %w", tx.Index, err)
			}
			tx.Result = result
			tx.ConsensusTimestamp = result.ConsensusTimestamp
			tx.ParentConsensusTimestamp = result.ParentConsensusTimestamp

		case model.BlockItemTransactionOutput:
			tx := lastTransaction(txs)
			if tx == nil {
				return nil, malformed("transaction output at item %d has no transaction", i)
			}
			output, err := DecodeTransactionOutput(item.Raw)
			if err != nil {
				return nil, fmt.Errorf("decode transaction output %d: %w", tx.Index, err)
			}
			tx.Outputs = append(tx.Outputs, output)

		case model.BlockItemStateChanges:
			changes, err := DecodeStateChanges(item.Raw)
			if err != nil {
				return nil, fmt.Errorf("decode state changes: %w", err)
			}
			apply(ctx, changes)

		case model.BlockItemProof:
			p, err := DecodeBlockProof(item.Raw)
			if err != nil {
				return nil, fmt.Errorf("decode block proof: %w", err)
			}
			proof = &p

		case model.BlockItemRecordFile:
			return nil, malformed("record file item inside block %d", header.Number)

		default:
			r.logger.Debug("skipping block item", zap.Stringer("kind", item.Kind), zap.Uint64("block", header.Number))
		}
	}

	if proof == nil {
		return nil, malformed("block %d has no proof", header.Number)
	}
	if proof.Block != header.Number {
		return nil, malformed("block proof number %d does not match header %d", proof.Block, header.Number)
	}
	for _, tx := range txs {
		if tx.ConsensusTimestamp == 0 {
			return nil, malformed("transaction %d of block %d has no result", tx.Index, header.Number)
		}
	}
	ctx.Freeze()

	file.Index = header.Number
	file.HapiVersion = header.HapiVersion
	file.SoftwareVersion = header.SoftwareVersion
	file.Transactions = txs
	file.Count = len(txs)
	file.ConsensusStart = header.Timestamp
	file.ConsensusEnd = header.Timestamp
	if len(txs) > 0 {
		file.ConsensusStart = txs[0].ConsensusTimestamp
		file.ConsensusEnd = txs[len(txs)-1].ConsensusTimestamp
	}
	if haveRound {
		file.RoundEnd = round
	}
	file.PreviousHash = hex.EncodeToString(proof.PreviousBlockRootHash)
	file.Hash = hex.EncodeToString(BlockHash(stream.Items, proof.PreviousBlockRootHash, proof.StartOfBlockStateRootHash))
	return file, nil
}

func lastTransaction(txs []*model.BlockTransaction) *model.BlockTransaction {
	if len(txs) == 0 {
		return nil
	}
	return txs[len(txs)-1]
}
