package model

import (
	"encoding/hex"
	"fmt"
)

// EntityID is a shard.realm.num ledger entity identifier.
type EntityID struct {
	Shard int64
	Realm int64
	Num   int64
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// IsZero reports whether the id is unset.
func (id EntityID) IsZero() bool {
	return id == EntityID{}
}

// AccountID references an account either numerically or through an alias.
type AccountID struct {
	EntityID
	Alias []byte
}

// HasAlias reports whether the account is referenced by alias only.
func (a AccountID) HasAlias() bool {
	return len(a.Alias) > 0 && a.Num == 0
}

func (a AccountID) String() string {
	if a.HasAlias() {
		return fmt.Sprintf("%d.%d.%s", a.Shard, a.Realm, hex.EncodeToString(a.Alias))
	}
	return a.EntityID.String()
}

// TransactionID identifies a transaction by payer and valid start.
type TransactionID struct {
	ValidStart int64
	AccountID  AccountID
	Scheduled  bool
	Nonce      int32
}

// AccountAmount is one hbar or fungible token balance change.
type AccountAmount struct {
	AccountID  AccountID
	Amount     int64
	IsApproval bool
}

// NftTransfer moves one serial of a non-fungible token.
type NftTransfer struct {
	Sender       AccountID
	Receiver     AccountID
	SerialNumber int64
	IsApproval   bool
}

// TokenTransferList groups the changes of one token.
type TokenTransferList struct {
	Token        EntityID
	Transfers    []AccountAmount
	NftTransfers []NftTransfer
	Decimals     *uint32
}

// AssessedCustomFee is a custom fee charged while executing a transfer.
type AssessedCustomFee struct {
	Amount            int64
	Token             EntityID
	FeeCollector      AccountID
	EffectivePayerIDs []AccountID
}

// TokenAssociation is an automatic token association created by a transaction.
type TokenAssociation struct {
	Token   EntityID
	Account AccountID
}

// PendingAirdrop is an airdropped amount the receiver still has to claim.
type PendingAirdrop struct {
	Sender       AccountID
	Receiver     AccountID
	Token        EntityID
	Amount       int64
	SerialNumber int64
}
