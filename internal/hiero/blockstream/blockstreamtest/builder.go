// Package blockstreamtest builds encoded blocks for tests.
package blockstreamtest

import (
	"github.com/coreos/go-semver/semver"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

// Transaction is one transaction with everything the stream emits for it.
type Transaction struct {
	Body    model.TransactionBody
	Result  model.TransactionResult
	Outputs []model.TransactionOutput
}

// Block describes a native block.
type Block struct {
	Number       uint64
	Timestamp    int64
	HapiVersion  semver.Version
	PreviousHash []byte
	Transactions []Transaction
	StateChanges []blockstream.StateChange
}

// Items encodes the block as header, round header, transactions, state changes and proof.
func (b Block) Items() []model.BlockItem {
	version := b.HapiVersion
	if version == (semver.Version{}) {
		version = semver.Version{Minor: 60}
	}
	items := []model.BlockItem{
		{Kind: model.BlockItemHeader, Raw: blockstream.EncodeBlockHeader(blockstream.BlockHeader{
			HapiVersion:     version,
			SoftwareVersion: version,
			Number:          b.Number,
			Timestamp:       b.Timestamp,
		})},
		{Kind: model.BlockItemRoundHeader, Raw: blockstream.EncodeRoundHeader(blockstream.RoundHeader{RoundNumber: b.Number + 1000})},
	}

	last := b.Timestamp
	for _, tx := range b.Transactions {
		items = append(items,
			model.BlockItem{Kind: model.BlockItemSignedTransaction, Raw: blockstream.EncodeSignedTransaction(tx.Body, nil)},
			model.BlockItem{Kind: model.BlockItemTransactionResult, Raw: blockstream.EncodeTransactionResult(tx.Result)},
		)
		for _, out := range tx.Outputs {
			items = append(items, model.BlockItem{Kind: model.BlockItemTransactionOutput, Raw: blockstream.EncodeTransactionOutput(out)})
		}
		last = tx.Result.ConsensusTimestamp
	}
	if len(b.StateChanges) > 0 {
		items = append(items, model.BlockItem{Kind: model.BlockItemStateChanges, Raw: blockstream.EncodeStateChanges(last, b.StateChanges)})
	}

	return append(items, model.BlockItem{Kind: model.BlockItemProof, Raw: blockstream.EncodeBlockProof(blockstream.BlockProof{
		Block:                 b.Number,
		PreviousBlockRootHash: b.PreviousHash,
	})})
}

// Bytes encodes the block as a Block message.
func (b Block) Bytes() []byte {
	return blockstream.EncodeBlockItems(b.Items())
}

// Hash returns the root hash a reader computes for the block.
func (b Block) Hash() []byte {
	return blockstream.BlockHash(b.Items(), b.PreviousHash, nil)
}

// Chain returns count empty blocks starting at start, each linked to the hash of
// its predecessor.
func Chain(start uint64, count int, previousHash []byte) []Block {
	blocks := make([]Block, 0, count)
	for i := 0; i < count; i++ {
		number := start + uint64(i)
		block := Block{
			Number:       number,
			Timestamp:    int64(number+1) * 2_000_000_000,
			PreviousHash: previousHash,
		}
		blocks = append(blocks, block)
		previousHash = block.Hash()
	}
	return blocks
}

// Transfer builds a successful crypto transfer executed at consensus.
func Transfer(consensus int64, payer int64) Transaction {
	account := model.AccountID{EntityID: model.EntityID{Num: payer}}
	return Transaction{
		Body: model.TransactionBody{
			TransactionID: model.TransactionID{ValidStart: consensus - 1_000, AccountID: account},
			Fee:           100,
			Type:          model.TransactionTypeCryptoTransfer,
			CryptoTransfer: &model.CryptoTransferBody{
				Transfers: []model.AccountAmount{{AccountID: account, Amount: -10}, {AccountID: model.AccountID{EntityID: model.EntityID{Num: 98}}, Amount: 10}},
			},
		},
		Result: model.TransactionResult{
			Status:                model.ResponseCodeSuccess,
			ConsensusTimestamp:    consensus,
			TransactionFeeCharged: 100,
		},
	}
}
