package transformer

import (
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"go.uber.org/zap"
)

// Entity creating strategies claim from the block's state change context. Because
// transactions arrive last to first, the largest unclaimed id belongs to the
// transaction at hand. Failed transactions created nothing and claim nothing.

func (t *Transformer) consensusCreateTopic(tx *model.BlockTransaction, item *model.RecordItem) {
	if !item.Successful() {
		return
	}
	item.Receipt.TopicID = t.claimEntity(tx, model.EntityTopic)
}

func (t *Transformer) consensusSubmitMessage(tx *model.BlockTransaction, item *model.RecordItem) {
	body := tx.Body.ConsensusSubmitMessage
	if !item.Successful() || body == nil {
		return
	}
	seq, runningHash, ok := tx.StateChangeContext.TopicMessage(body.TopicID)
	if !ok {
		t.logger.Warn("topic message has no state change",
			zap.Stringer("topic", body.TopicID), zap.Int64("consensus_timestamp", tx.ConsensusTimestamp))
		return
	}
	item.Receipt.TopicSequenceNumber = seq
	item.Receipt.TopicRunningHash = runningHash
}

func (t *Transformer) cryptoCreateAccount(tx *model.BlockTransaction, item *model.RecordItem) {
	if !item.Successful() {
		return
	}
	if out, ok := tx.Output(model.OutputAccountCreate); ok && !out.CreatedAccountID.IsZero() {
		id := out.CreatedAccountID
		item.Receipt.AccountID = &id
		return
	}
	if body := tx.Body.CryptoCreateAccount; body != nil && len(body.Alias) > 0 {
		if id, ok := tx.StateChangeContext.AccountByAlias(body.Alias); ok {
			item.Receipt.AccountID = &id
			return
		}
	}
	item.Receipt.AccountID = t.claimEntity(tx, model.EntityAccount)
}

// cryptoTransfer replaces alias-only accounts of the executed transfers with the
// numeric accounts the aliases were assigned.
func (t *Transformer) cryptoTransfer(tx *model.BlockTransaction, item *model.RecordItem) {
	ctx := tx.StateChangeContext
	item.TransferList = resolveAliases(ctx, item.TransferList)
	if len(item.TokenTransferLists) == 0 {
		return
	}
	lists := make([]model.TokenTransferList, len(item.TokenTransferLists))
	for i, list := range item.TokenTransferLists {
		list.Transfers = resolveAliases(ctx, list.Transfers)
		lists[i] = list
	}
	item.TokenTransferLists = lists
}

func (t *Transformer) fileCreate(tx *model.BlockTransaction, item *model.RecordItem) {
	if !item.Successful() {
		return
	}
	item.Receipt.FileID = t.claimEntity(tx, model.EntityFile)
}

func (t *Transformer) nodeCreate(tx *model.BlockTransaction, item *model.RecordItem) {
	if !item.Successful() {
		return
	}
	nodeID, ok := tx.StateChangeContext.NewNodeID()
	if !ok {
		t.logger.Warn("node create has no state change", zap.Int64("consensus_timestamp", tx.ConsensusTimestamp))
		return
	}
	item.Receipt.NodeID = &nodeID
}

func (t *Transformer) scheduleCreate(tx *model.BlockTransaction, item *model.RecordItem) {
	if !item.Successful() {
		return
	}
	if out, ok := tx.Output(model.OutputCreateSchedule); ok {
		item.Receipt.ScheduledTransactionID = out.ScheduledTransactionID
		if !out.ScheduleID.IsZero() {
			id := out.ScheduleID
			item.Receipt.ScheduleID = &id
			return
		}
	}
	item.Receipt.ScheduleID = t.claimEntity(tx, model.EntitySchedule)
}

func (t *Transformer) scheduleSign(tx *model.BlockTransaction, item *model.RecordItem) {
	if out, ok := tx.Output(model.OutputSignSchedule); ok {
		item.Receipt.ScheduledTransactionID = out.ScheduledTransactionID
	}
}

func (t *Transformer) tokenCreate(tx *model.BlockTransaction, item *model.RecordItem) {
	if !item.Successful() {
		return
	}
	item.Receipt.TokenID = t.claimEntity(tx, model.EntityToken)
	if item.Receipt.TokenID == nil || tx.Body.TokenCreation == nil {
		return
	}
	t.trackSupply(tx, item, *item.Receipt.TokenID, int64(tx.Body.TokenCreation.InitialSupply))
}

func (t *Transformer) tokenMint(tx *model.BlockTransaction, item *model.RecordItem) {
	body := tx.Body.TokenMint
	if !item.Successful() || body == nil {
		return
	}
	item.Receipt.TokenID = &body.Token
	if n := len(body.Metadata); n > 0 {
		item.Receipt.SerialNumbers = tx.StateChangeContext.ClaimNftSerials(body.Token, n)
		t.trackSupply(tx, item, body.Token, int64(n))
		return
	}
	t.trackSupply(tx, item, body.Token, int64(body.Amount))
}

func (t *Transformer) tokenBurn(tx *model.BlockTransaction, item *model.RecordItem) {
	body := tx.Body.TokenBurn
	if !item.Successful() || body == nil {
		return
	}
	item.Receipt.TokenID = &body.Token
	item.Receipt.SerialNumbers = body.SerialNumbers
	t.trackSupply(tx, item, body.Token, -removedUnits(body.Amount, body.SerialNumbers))
}

func (t *Transformer) tokenWipe(tx *model.BlockTransaction, item *model.RecordItem) {
	body := tx.Body.TokenWipe
	if !item.Successful() || body == nil {
		return
	}
	item.Receipt.TokenID = &body.Token
	item.Receipt.SerialNumbers = body.SerialNumbers
	t.trackSupply(tx, item, body.Token, -removedUnits(body.Amount, body.SerialNumbers))
}

// tokenAirdrop records as pending every requested credit that did not execute.
func (t *Transformer) tokenAirdrop(tx *model.BlockTransaction, item *model.RecordItem) {
	body := tx.Body.TokenAirdrop
	if !item.Successful() || body == nil {
		return
	}

	executed := make(map[model.EntityID]model.TokenTransferList, len(item.TokenTransferLists))
	for _, list := range item.TokenTransferLists {
		executed[list.Token] = list
	}

	var pending []model.PendingAirdrop
	for _, requested := range body.TokenTransfers {
		done := executed[requested.Token]
		sender := debitedAccount(requested.Transfers)
		for _, credit := range requested.Transfers {
			if credit.Amount <= 0 || containsCredit(done.Transfers, credit) {
				continue
			}
			pending = append(pending, model.PendingAirdrop{
				Sender:   sender,
				Receiver: credit.AccountID,
				Token:    requested.Token,
				Amount:   credit.Amount,
			})
		}
		for _, nft := range requested.NftTransfers {
			if containsNft(done.NftTransfers, nft) {
				continue
			}
			pending = append(pending, model.PendingAirdrop{
				Sender:       nft.Sender,
				Receiver:     nft.Receiver,
				Token:        requested.Token,
				SerialNumber: nft.SerialNumber,
			})
		}
	}
	item.PendingAirdrops = pending
}

func (t *Transformer) contractCreate(tx *model.BlockTransaction, item *model.RecordItem) {
	if !item.Successful() {
		return
	}
	t.resolveCreatedContract(tx, item)
}

func (t *Transformer) contractCall(tx *model.BlockTransaction, item *model.RecordItem) {
	if item.Receipt.ContractID != nil || tx.Body.ContractCall == nil {
		return
	}
	if id := tx.Body.ContractCall.ContractID; !id.IsZero() {
		item.Receipt.ContractID = &id
	}
}

func (t *Transformer) ethereumTransaction(tx *model.BlockTransaction, item *model.RecordItem) {
	for _, out := range tx.Outputs {
		if len(out.EthereumHash) > 0 {
			item.EthereumHash = out.EthereumHash
			break
		}
	}
	if !item.Successful() {
		return
	}
	if _, ok := tx.Output(model.OutputContractCreate); ok {
		t.resolveCreatedContract(tx, item)
	}
}

func (t *Transformer) utilPrng(tx *model.BlockTransaction, item *model.RecordItem) {
	out, ok := tx.Output(model.OutputUtilPrng)
	if !ok {
		return
	}
	item.PrngBytes = out.PrngBytes
	item.PrngNumber = out.PrngNumber
}

// claimEntity claims the largest unclaimed id of kind, logging when the block's
// state changes carry none.
func (t *Transformer) claimEntity(tx *model.BlockTransaction, kind model.EntityKind) *model.EntityID {
	id, ok := tx.StateChangeContext.NewEntityID(kind)
	if !ok {
		t.logger.Warn("entity create has no state change",
			zap.Stringer("type", tx.Body.Type), zap.Int64("consensus_timestamp", tx.ConsensusTimestamp))
		return nil
	}
	return &id
}

// resolveCreatedContract prefers the id the EVM result reports and falls back to
// the state change context.
func (t *Transformer) resolveCreatedContract(tx *model.BlockTransaction, item *model.RecordItem) {
	if item.Receipt.ContractID != nil {
		return
	}
	if result := item.ContractResult; result != nil && len(result.CreatedContractIDs) > 0 {
		id := result.CreatedContractIDs[0]
		item.Receipt.ContractID = &id
		return
	}
	item.Receipt.ContractID = t.claimEntity(tx, model.EntityContract)
}

// trackSupply attributes the supply after the transaction and rewinds the block
// aggregate to the supply before it.
func (t *Transformer) trackSupply(tx *model.BlockTransaction, item *model.RecordItem, token model.EntityID, change int64) {
	after, before, ok := tx.StateChangeContext.TrackTokenSupply(token, change)
	if !ok {
		t.logger.Warn("token supply has no state change",
			zap.Stringer("token", token), zap.Int64("consensus_timestamp", tx.ConsensusTimestamp))
		return
	}
	item.Receipt.NewTotalSupply = after
	item.TotalSupplyBefore = &before
}

func removedUnits(amount uint64, serials []int64) int64 {
	if len(serials) > 0 {
		return int64(len(serials))
	}
	return int64(amount)
}

func resolveAliases(ctx *model.StateChangeContext, transfers []model.AccountAmount) []model.AccountAmount {
	if ctx == nil {
		return transfers
	}
	var resolved []model.AccountAmount
	for i, aa := range transfers {
		if !aa.AccountID.HasAlias() {
			continue
		}
		id, ok := ctx.AccountByAlias(aa.AccountID.Alias)
		if !ok {
			continue
		}
		if resolved == nil {
			resolved = append([]model.AccountAmount(nil), transfers...)
		}
		resolved[i].AccountID = model.AccountID{EntityID: id}
	}
	if resolved == nil {
		return transfers
	}
	return resolved
}

func debitedAccount(transfers []model.AccountAmount) model.AccountID {
	for _, aa := range transfers {
		if aa.Amount < 0 {
			return aa.AccountID
		}
	}
	return model.AccountID{}
}

func containsCredit(transfers []model.AccountAmount, credit model.AccountAmount) bool {
	for _, aa := range transfers {
		if aa.Amount == credit.Amount && sameAccount(aa.AccountID, credit.AccountID) {
			return true
		}
	}
	return false
}

func containsNft(transfers []model.NftTransfer, nft model.NftTransfer) bool {
	for _, done := range transfers {
		if done.SerialNumber == nft.SerialNumber && sameAccount(done.Receiver, nft.Receiver) {
			return true
		}
	}
	return false
}

func sameAccount(a, b model.AccountID) bool {
	return a.EntityID == b.EntityID && string(a.Alias) == string(b.Alias)
}
