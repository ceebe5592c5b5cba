package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/goodnatureofminers/hiero-importer/pkg/safe"
)

const insertTransactionsQuery = `
INSERT INTO transaction (
	consensus_timestamp,
	block_index,
	idx,
	type,
	result,
	payer_account_id,
	valid_start_ns,
	scheduled,
	nonce,
	node_account_id,
	charged_tx_fee,
	memo,
	entity_id,
	parent_consensus_timestamp,
	transaction_hash,
	transaction_bytes
) VALUES`

// InsertTransactions stores one row per record item of the file.
func (r *Repository) InsertTransactions(ctx context.Context, rf *model.RecordFile) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	rows := make([][]any, 0, len(rf.Items))
	for _, item := range rf.Items {
		var idx uint32
		if idx, err = safe.Uint32(item.Index); err != nil {
			return fmt.Errorf("transaction %d index: %w", item.ConsensusTimestamp, err)
		}
		rows = append(rows, []any{
			item.ConsensusTimestamp,
			rf.Index,
			idx,
			int32(item.TransactionType),
			int32(item.Receipt.Status),
			item.TransactionID.AccountID.String(),
			item.TransactionID.ValidStart,
			item.TransactionID.Scheduled,
			item.TransactionID.Nonce,
			item.TransactionBody.NodeAccountID.String(),
			item.Fee,
			item.Memo,
			receiptEntityID(item.Receipt),
			item.ParentConsensusTimestamp,
			hex.EncodeToString(item.TransactionHash),
			hex.EncodeToString(item.TransactionBytes),
		})
	}

	err = r.insert(ctx, "transaction", insertTransactionsQuery, rows)
	return err
}

// receiptEntityID returns the entity created or touched by the transaction.
func receiptEntityID(receipt model.TransactionReceipt) string {
	for _, id := range []*model.EntityID{
		receipt.AccountID,
		receipt.ContractID,
		receipt.FileID,
		receipt.TokenID,
		receipt.TopicID,
		receipt.ScheduleID,
	} {
		if id != nil {
			return id.String()
		}
	}
	return ""
}
