package model

// BloomSize is the byte width of an EVM logs bloom filter.
const BloomSize = 256

// ContractLog is one EVM log emitted by a contract execution.
type ContractLog struct {
	ContractID EntityID
	Bloom      []byte
	Topics     [][]byte
	Data       []byte
}

// ContractResult is the EVM execution result embedded in a transaction output.
type ContractResult struct {
	ContractID         EntityID
	CallResult         []byte
	ErrorMessage       string
	Bloom              []byte
	GasUsed            uint64
	Logs               []ContractLog
	CreatedContractIDs []EntityID
	EvmAddress         []byte
	Gas                int64
	Amount             int64
	FunctionParameters []byte
	SenderID           AccountID
}

// SidecarKind tags the variant of a transaction sidecar record.
type SidecarKind int

const (
	SidecarUnknown SidecarKind = iota
	SidecarStateChanges
	SidecarActions
	SidecarBytecode
)

// StorageChange is a read or write of one contract storage slot.
type StorageChange struct {
	Slot         []byte
	ValueRead    []byte
	ValueWritten []byte
}

// ContractStateChange groups the storage changes of one contract.
type ContractStateChange struct {
	ContractID     EntityID
	StorageChanges []StorageChange
}

// ContractAction is one call frame of an EVM execution trace.
type ContractAction struct {
	CallType          int32
	CallingAccount    AccountID
	CallingContract   EntityID
	Gas               int64
	Input             []byte
	RecipientAccount  AccountID
	RecipientContract EntityID
	Value             int64
	GasUsed           int64
	Output            []byte
	RevertReason      []byte
	Error             []byte
	CallDepth         int32
}

// ContractBytecode is the init and runtime code of a created contract.
type ContractBytecode struct {
	ContractID      EntityID
	Initcode        []byte
	RuntimeBytecode []byte
}

// Sidecar is auxiliary per-transaction EVM data delivered next to the result.
type Sidecar struct {
	Kind               SidecarKind
	ConsensusTimestamp int64
	Migration          bool
	StateChanges       []ContractStateChange
	Actions            []ContractAction
	Bytecode           *ContractBytecode
}
