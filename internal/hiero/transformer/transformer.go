// Package transformer converts verified blocks into persistence-ready records.
package transformer

import (
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"go.uber.org/zap"
)

// strategy fills the type specific fields of a record. It runs after applyCommon.
type strategy func(tx *model.BlockTransaction, item *model.RecordItem)

// Transformer dispatches each transaction to the strategy of its type.
type Transformer struct {
	logger     *zap.Logger
	strategies map[model.TransactionType]strategy
}

// New builds a Transformer with its strategy table.
func New(logger *zap.Logger) *Transformer {
	t := &Transformer{logger: logger.Named("transformer")}
	t.strategies = map[model.TransactionType]strategy{
		model.TransactionTypeConsensusCreateTopic:   t.consensusCreateTopic,
		model.TransactionTypeConsensusSubmitMessage: t.consensusSubmitMessage,
		model.TransactionTypeContractCall:           t.contractCall,
		model.TransactionTypeContractCreate:         t.contractCreate,
		model.TransactionTypeCryptoCreateAccount:    t.cryptoCreateAccount,
		model.TransactionTypeCryptoTransfer:         t.cryptoTransfer,
		model.TransactionTypeEthereumTransaction:    t.ethereumTransaction,
		model.TransactionTypeFileCreate:             t.fileCreate,
		model.TransactionTypeNodeCreate:             t.nodeCreate,
		model.TransactionTypeScheduleCreate:         t.scheduleCreate,
		model.TransactionTypeScheduleSign:           t.scheduleSign,
		model.TransactionTypeTokenAirdrop:           t.tokenAirdrop,
		model.TransactionTypeTokenBurn:              t.tokenBurn,
		model.TransactionTypeTokenCreation:          t.tokenCreate,
		model.TransactionTypeTokenMint:              t.tokenMint,
		model.TransactionTypeTokenWipe:              t.tokenWipe,
		model.TransactionTypeUtilPrng:               t.utilPrng,
	}
	return t
}

func (t *Transformer) strategy(txType model.TransactionType) strategy {
	if s, ok := t.strategies[txType]; ok {
		return s
	}
	return noop
}

func noop(*model.BlockTransaction, *model.RecordItem) {}

// Transform builds the record file of a block. Transactions are transformed from
// last to first so that each strategy can rewind the block's final state past its
// own effect; records are then linked in consensus order.
func (t *Transformer) Transform(file *model.BlockFile) *model.RecordFile {
	records := &model.RecordFile{
		Index:           file.Index,
		Hash:            file.Hash,
		PreviousHash:    file.PreviousHash,
		ConsensusStart:  file.ConsensusStart,
		ConsensusEnd:    file.ConsensusEnd,
		Count:           file.Count,
		Size:            file.Size,
		HapiVersion:     file.HapiVersion,
		SoftwareVersion: file.SoftwareVersion,
		Version:         file.Version,
		NodeID:          file.NodeID,
		SourceType:      file.SourceType,
		Name:            file.Name,
		LoadStart:       file.LoadStart,
		RoundStart:      file.RoundStart,
		RoundEnd:        file.RoundEnd,
		Bytes:           file.Bytes,
	}

	items := make([]*model.RecordItem, len(file.Transactions))
	for i := len(file.Transactions) - 1; i >= 0; i-- {
		tx := file.Transactions[i]
		item := &model.RecordItem{}
		applyCommon(tx, item)
		t.strategy(tx.Body.Type)(tx, item)
		items[i] = item
	}

	link(items)

	var bloom []byte
	for _, item := range items {
		if item.ContractResult == nil {
			continue
		}
		records.GasUsed += item.ContractResult.GasUsed
		bloom = orBloom(bloom, item.ContractResult.Bloom)
	}
	records.LogsBloom = bloom
	records.Items = items
	return records
}

// link sets Previous in consensus order and resolves Parent by consensus timestamp.
func link(items []*model.RecordItem) {
	byTimestamp := make(map[int64]*model.RecordItem, len(items))
	for i, item := range items {
		if i > 0 {
			item.Previous = items[i-1]
		}
		byTimestamp[item.ConsensusTimestamp] = item
	}
	for _, item := range items {
		if item.ParentConsensusTimestamp == 0 {
			continue
		}
		item.Parent = byTimestamp[item.ParentConsensusTimestamp]
	}
}
