package blockstream

import (
	"crypto/sha512"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// BlockHash computes the block root hash: SHA-384 over the previous block hash,
// the input and output item merkle roots and the start-of-block state root.
func BlockHash(items []model.BlockItem, previousHash, stateRoot []byte) []byte {
	var inputs, outputs [][]byte
	for _, item := range items {
		switch item.Kind {
		case model.BlockItemEventHeader, model.BlockItemRoundHeader, model.BlockItemSignedTransaction:
			inputs = append(inputs, leafHash(item))
		case model.BlockItemHeader, model.BlockItemTransactionResult, model.BlockItemTransactionOutput,
			model.BlockItemStateChanges, model.BlockItemTraceData:
			outputs = append(outputs, leafHash(item))
		}
	}

	h := sha512.New384()
	h.Write(previousHash)
	h.Write(merkleRoot(inputs))
	h.Write(merkleRoot(outputs))
	h.Write(stateRoot)
	return h.Sum(nil)
}

func leafHash(item model.BlockItem) []byte {
	h := sha512.New384()
	h.Write([]byte{leafPrefix})
	h.Write(EncodeBlockItem(item))
	return h.Sum(nil)
}

// merkleRoot folds leaves pairwise; an odd node is promoted to the next level.
func merkleRoot(level [][]byte) []byte {
	if len(level) == 0 {
		sum := sha512.Sum384(nil)
		return sum[:]
	}
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			h := sha512.New384()
			h.Write([]byte{nodePrefix})
			h.Write(level[i])
			h.Write(level[i+1])
			next = append(next, h.Sum(nil))
		}
		level = next
	}
	return level[0]
}
