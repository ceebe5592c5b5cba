package model

import "github.com/coreos/go-semver/semver"

// SignedTransaction is the signed envelope of a transaction body.
type SignedTransaction struct {
	BodyBytes    []byte
	SignatureMap []byte
}

// TransactionBody is the decoded body. Exactly one of the typed bodies is set for
// types this importer understands; Data always keeps the raw oneof payload.
type TransactionBody struct {
	TransactionID TransactionID
	NodeAccountID AccountID
	Fee           uint64
	ValidDuration int64
	Memo          string
	Type          TransactionType
	Data          []byte

	ConsensusCreateTopic   *ConsensusCreateTopicBody
	ConsensusSubmitMessage *ConsensusSubmitMessageBody
	ContractCall           *ContractCallBody
	ContractCreate         *ContractCreateBody
	CryptoCreateAccount    *CryptoCreateAccountBody
	CryptoTransfer         *CryptoTransferBody
	EthereumTransaction    *EthereumTransactionBody
	TokenAirdrop           *TokenAirdropBody
	TokenBurn              *TokenBurnBody
	TokenCreation          *TokenCreationBody
	TokenMint              *TokenMintBody
	TokenWipe              *TokenWipeBody
	UtilPrng               *UtilPrngBody
}

type ConsensusCreateTopicBody struct {
	Memo string
}

type ConsensusSubmitMessageBody struct {
	TopicID EntityID
	Message []byte
}

type ContractCallBody struct {
	ContractID         EntityID
	Gas                int64
	Amount             int64
	FunctionParameters []byte
}

type ContractCreateBody struct {
	FileID          EntityID
	Gas             int64
	InitialBalance  int64
	ConstructorArgs []byte
	Memo            string
}

type CryptoCreateAccountBody struct {
	InitialBalance uint64
	Alias          []byte
	Memo           string
}

type CryptoTransferBody struct {
	Transfers      []AccountAmount
	TokenTransfers []TokenTransferList
}

type EthereumTransactionBody struct {
	EthereumData   []byte
	CallDataFileID EntityID
	MaxGasAllowed  int64
}

type TokenAirdropBody struct {
	TokenTransfers []TokenTransferList
}

type TokenBurnBody struct {
	Token         EntityID
	Amount        uint64
	SerialNumbers []int64
}

type TokenCreationBody struct {
	Name          string
	Symbol        string
	Decimals      uint32
	InitialSupply uint64
	Treasury      AccountID
}

type TokenMintBody struct {
	Token    EntityID
	Amount   uint64
	Metadata [][]byte
}

type TokenWipeBody struct {
	Token         EntityID
	Account       AccountID
	Amount        uint64
	SerialNumbers []int64
}

type UtilPrngBody struct {
	Range int32
}

// TransactionResult is the execution result the consensus node emitted for a transaction.
type TransactionResult struct {
	Status                     ResponseCode
	ConsensusTimestamp         int64
	ParentConsensusTimestamp   int64
	ScheduleRef                EntityID
	TransactionFeeCharged      uint64
	TransferList               []AccountAmount
	TokenTransferLists         []TokenTransferList
	AutomaticTokenAssociations []TokenAssociation
	PaidStakingRewards         []AccountAmount
	AssessedCustomFees         []AssessedCustomFee
}

// TransactionOutputKind tags the decoded variant of a transaction output.
type TransactionOutputKind int

const (
	OutputUnknown TransactionOutputKind = iota
	OutputUtilPrng
	OutputContractCall
	OutputEthereumCall
	OutputContractCreate
	OutputCreateSchedule
	OutputSignSchedule
	OutputAccountCreate
)

// TransactionOutput carries type specific execution output.
type TransactionOutput struct {
	Kind TransactionOutputKind

	PrngBytes  []byte
	PrngNumber *int32

	ContractResult *ContractResult
	Sidecars       []Sidecar
	EthereumHash   []byte

	ScheduleID             EntityID
	ScheduledTransactionID *TransactionID

	CreatedAccountID EntityID
}

// BlockTransaction is one transaction of a block with everything the stream emitted for it.
type BlockTransaction struct {
	Index                    int
	ConsensusTimestamp       int64
	ParentConsensusTimestamp int64
	HapiVersion              semver.Version
	SignedTransactionBytes   []byte
	SignedTransaction        SignedTransaction
	Body                     TransactionBody
	Result                   TransactionResult
	Outputs                  []TransactionOutput
	StateChangeContext       *StateChangeContext
}

// Output returns the first output of the given kind.
func (t *BlockTransaction) Output(kind TransactionOutputKind) (*TransactionOutput, bool) {
	for i := range t.Outputs {
		if t.Outputs[i].Kind == kind {
			return &t.Outputs[i], true
		}
	}
	return nil, false
}

// ContractResult returns the embedded EVM result, if any output carries one.
func (t *BlockTransaction) ContractResult() (*ContractResult, []Sidecar) {
	for i := range t.Outputs {
		if t.Outputs[i].ContractResult != nil {
			return t.Outputs[i].ContractResult, t.Outputs[i].Sidecars
		}
	}
	return nil, nil
}
