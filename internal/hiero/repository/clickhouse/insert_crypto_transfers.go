package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

const insertCryptoTransfersQuery = `
INSERT INTO crypto_transfer (
	consensus_timestamp,
	entity_id,
	amount,
	payer_account_id,
	is_approval
) VALUES`

// InsertCryptoTransfers stores the hbar transfer list of every record item.
func (r *Repository) InsertCryptoTransfers(ctx context.Context, rf *model.RecordFile) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_crypto_transfers", err, start)
	}()

	var rows [][]any
	for _, item := range rf.Items {
		payer := item.TransactionID.AccountID.String()
		for _, transfer := range item.TransferList {
			rows = append(rows, []any{
				item.ConsensusTimestamp,
				transfer.AccountID.String(),
				transfer.Amount,
				payer,
				transfer.IsApproval,
			})
		}
	}

	err = r.insert(ctx, "crypto_transfer", insertCryptoTransfersQuery, rows)
	return err
}
