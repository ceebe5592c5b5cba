package model

import (
	"time"

	"github.com/coreos/go-semver/semver"
)

// TransactionReceipt holds the receipt fields the importer computes for a record.
type TransactionReceipt struct {
	Status                 ResponseCode
	AccountID              *EntityID
	ContractID             *EntityID
	FileID                 *EntityID
	NodeID                 *uint64
	ScheduleID             *EntityID
	TokenID                *EntityID
	TopicID                *EntityID
	TopicSequenceNumber    uint64
	TopicRunningHash       []byte
	NewTotalSupply         uint64
	SerialNumbers          []int64
	ScheduledTransactionID *TransactionID
}

// RecordItem is the canonical, persistence-ready form of one transaction. It is
// immutable once built; Previous links records in consensus order.
type RecordItem struct {
	Index                    int
	ConsensusTimestamp       int64
	ParentConsensusTimestamp int64
	TransactionType          TransactionType
	TransactionBody          TransactionBody
	TransactionBytes         []byte
	SignatureMap             []byte
	HapiVersion              semver.Version
	TransactionHash          []byte

	Receipt                    TransactionReceipt
	Fee                        uint64
	Memo                       string
	TransactionID              TransactionID
	TransferList               []AccountAmount
	TokenTransferLists         []TokenTransferList
	AssessedCustomFees         []AssessedCustomFee
	AutomaticTokenAssociations []TokenAssociation
	PaidStakingRewards         []AccountAmount

	ContractResult  *ContractResult
	Sidecars        []Sidecar
	PendingAirdrops []PendingAirdrop
	PrngBytes       []byte
	PrngNumber      *int32
	EthereumHash    []byte

	// TotalSupplyBefore is the token supply immediately before this transaction executed.
	TotalSupplyBefore *uint64

	Previous *RecordItem
	Parent   *RecordItem
}

// Successful reports whether the transaction took effect on the ledger.
func (r *RecordItem) Successful() bool {
	return r.Receipt.Status.IsSuccessful()
}

// RecordFile is the canonical persistence shape of one accepted block.
type RecordFile struct {
	Index           uint64
	Hash            string
	PreviousHash    string
	ConsensusStart  int64
	ConsensusEnd    int64
	Count           int
	Size            int
	HapiVersion     semver.Version
	SoftwareVersion semver.Version
	Version         int
	NodeID          string
	SourceType      SourceType
	Name            string
	LoadStart       time.Time
	LoadEnd         time.Time
	RoundStart      uint64
	RoundEnd        uint64
	GasUsed         uint64
	LogsBloom       []byte
	Bytes           []byte

	Items []*RecordItem
}

// Stripped returns a copy without record items and raw bytes.
func (r *RecordFile) Stripped() *RecordFile {
	if r == nil {
		return nil
	}
	c := *r
	c.Items = nil
	c.Bytes = nil
	return &c
}

// StreamType reports which ledger format produced the record file.
func (r *RecordFile) StreamType() StreamType {
	if r.Version >= BlockFileVersion {
		return StreamTypeBlock
	}
	return StreamTypeRecord
}
