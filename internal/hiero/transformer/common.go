package transformer

import (
	"crypto/sha512"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

// applyCommon copies the fields every transaction type shares and resolves an
// embedded EVM result.
func applyCommon(tx *model.BlockTransaction, item *model.RecordItem) {
	hash := sha512.Sum384(tx.SignedTransactionBytes)

	item.Index = tx.Index
	item.ConsensusTimestamp = tx.ConsensusTimestamp
	item.ParentConsensusTimestamp = tx.ParentConsensusTimestamp
	item.TransactionType = tx.Body.Type
	item.TransactionBody = tx.Body
	item.TransactionBytes = tx.SignedTransactionBytes
	item.SignatureMap = tx.SignedTransaction.SignatureMap
	item.HapiVersion = tx.HapiVersion
	item.TransactionHash = hash[:]

	result := tx.Result
	item.Receipt.Status = result.Status
	if !result.ScheduleRef.IsZero() {
		scheduleID := result.ScheduleRef
		item.Receipt.ScheduleID = &scheduleID
	}
	item.Fee = result.TransactionFeeCharged
	item.Memo = tx.Body.Memo
	item.TransactionID = tx.Body.TransactionID
	item.TransferList = result.TransferList
	item.TokenTransferLists = result.TokenTransferLists
	item.AssessedCustomFees = result.AssessedCustomFees
	item.AutomaticTokenAssociations = result.AutomaticTokenAssociations
	item.PaidStakingRewards = result.PaidStakingRewards

	applyContractResult(tx, item)
}

func applyContractResult(tx *model.BlockTransaction, item *model.RecordItem) {
	result, sidecars := tx.ContractResult()
	if result == nil {
		return
	}

	resolved := *result
	if len(resolved.Bloom) == 0 {
		for _, log := range resolved.Logs {
			resolved.Bloom = orBloom(resolved.Bloom, log.Bloom)
		}
	}
	item.ContractResult = &resolved
	item.Sidecars = sidecars
	if !resolved.ContractID.IsZero() {
		contractID := resolved.ContractID
		item.Receipt.ContractID = &contractID
	}
}

// orBloom merges src into dst, growing dst to the bloom width.
func orBloom(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}
	if len(dst) < model.BloomSize {
		grown := make([]byte, model.BloomSize)
		copy(grown, dst)
		dst = grown
	}
	for i := 0; i < len(src) && i < len(dst); i++ {
		dst[i] |= src[i]
	}
	return dst
}
