package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/goodnatureofminers/hiero-importer/pkg/safe"
)

const insertContractLogsQuery = `
INSERT INTO contract_log (
	consensus_timestamp,
	log_index,
	contract_id,
	payer_account_id,
	bloom,
	topics,
	data
) VALUES`

// InsertContractLogs stores the EVM logs of every contract result in the file.
func (r *Repository) InsertContractLogs(ctx context.Context, rf *model.RecordFile) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_contract_logs", err, start)
	}()

	var rows [][]any
	for _, item := range rf.Items {
		if item.ContractResult == nil {
			continue
		}
		payer := item.TransactionID.AccountID.String()
		for i, log := range item.ContractResult.Logs {
			var index uint32
			if index, err = safe.Uint32(i); err != nil {
				return fmt.Errorf("contract log index: %w", err)
			}
			topics := make([]string, 0, len(log.Topics))
			for _, topic := range log.Topics {
				topics = append(topics, hex.EncodeToString(topic))
			}
			rows = append(rows, []any{
				item.ConsensusTimestamp,
				index,
				log.ContractID.String(),
				payer,
				hex.EncodeToString(log.Bloom),
				topics,
				hex.EncodeToString(log.Data),
			})
		}
	}

	err = r.insert(ctx, "contract_log", insertContractLogsQuery, rows)
	return err
}
