package blockstream

import (
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"google.golang.org/protobuf/encoding/protowire"
)

// DecodeTransactionResult decodes a transaction result item.
func DecodeTransactionResult(b []byte) (model.TransactionResult, error) {
	var r model.TransactionResult
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.Status = model.ResponseCode(f.int32())
		case 2:
			r.ConsensusTimestamp, err = decodeTimestamp(f.bytes)
		case 3:
			r.ParentConsensusTimestamp, err = decodeTimestamp(f.bytes)
		case 4:
			r.ScheduleRef, err = decodeEntityID(f.bytes)
		case 5:
			r.TransactionFeeCharged = f.v
		case 6:
			r.TransferList, err = decodeTransferList(f.bytes)
		case 7:
			r.TokenTransferLists, err = decodeTokenTransferLists(r.TokenTransferLists, f.bytes)
		case 8:
			var assoc model.TokenAssociation
			assoc, err = decodeTokenAssociation(f.bytes)
			r.AutomaticTokenAssociations = append(r.AutomaticTokenAssociations, assoc)
		case 9:
			var aa model.AccountAmount
			aa, err = decodeAccountAmount(f.bytes)
			r.PaidStakingRewards = append(r.PaidStakingRewards, aa)
		case 10:
			var fee model.AssessedCustomFee
			fee, err = decodeAssessedCustomFee(f.bytes)
			r.AssessedCustomFees = append(r.AssessedCustomFees, fee)
		}
		return err
	})
	return r, err
}

// EncodeTransactionResult encodes a transaction result item.
func EncodeTransactionResult(r model.TransactionResult) []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(r.Status))
	b = appendTimestamp(b, 2, r.ConsensusTimestamp)
	if r.ParentConsensusTimestamp != 0 {
		b = appendTimestamp(b, 3, r.ParentConsensusTimestamp)
	}
	b = appendEntityID(b, 4, r.ScheduleRef)
	b = appendVarint(b, 5, r.TransactionFeeCharged)
	if len(r.TransferList) > 0 {
		b = appendMessage(b, 6, encodeTransferList(r.TransferList))
	}
	for _, list := range r.TokenTransferLists {
		b = appendMessage(b, 7, encodeTokenTransferList(list))
	}
	for _, assoc := range r.AutomaticTokenAssociations {
		var msg []byte
		msg = appendEntityID(msg, 1, assoc.Token)
		msg = appendAccountID(msg, 2, assoc.Account)
		b = appendMessage(b, 8, msg)
	}
	for _, aa := range r.PaidStakingRewards {
		b = appendMessage(b, 9, encodeAccountAmount(aa))
	}
	for _, fee := range r.AssessedCustomFees {
		var msg []byte
		msg = appendVarint(msg, 1, uint64(fee.Amount))
		msg = appendEntityID(msg, 2, fee.Token)
		msg = appendAccountID(msg, 3, fee.FeeCollector)
		for _, payer := range fee.EffectivePayerIDs {
			msg = appendAccountID(msg, 4, payer)
		}
		b = appendMessage(b, 10, msg)
	}
	return b
}

func decodeTokenAssociation(b []byte) (model.TokenAssociation, error) {
	var assoc model.TokenAssociation
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			assoc.Token, err = decodeEntityID(f.bytes)
		case 2:
			assoc.Account, err = decodeAccountID(f.bytes)
		}
		return err
	})
	return assoc, err
}

func decodeAssessedCustomFee(b []byte) (model.AssessedCustomFee, error) {
	var fee model.AssessedCustomFee
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			fee.Amount = f.int64()
		case 2:
			fee.Token, err = decodeEntityID(f.bytes)
		case 3:
			fee.FeeCollector, err = decodeAccountID(f.bytes)
		case 4:
			var payer model.AccountID
			payer, err = decodeAccountID(f.bytes)
			fee.EffectivePayerIDs = append(fee.EffectivePayerIDs, payer)
		}
		return err
	})
	return fee, err
}

// DecodeTransactionOutput decodes a transaction output item. The oneof field number
// selects the output kind.
func DecodeTransactionOutput(b []byte) (model.TransactionOutput, error) {
	var out model.TransactionOutput
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			out.Kind = model.OutputUtilPrng
			err = walk(f.bytes, func(v field) error {
				switch v.num {
				case 1:
					out.PrngBytes = v.bytes
				case 2:
					n := v.int32()
					out.PrngNumber = &n
				}
				return nil
			})
		case 2, 3, 4:
			err = decodeContractOutput(&out, f)
		case 5:
			out.Kind = model.OutputCreateSchedule
			err = walk(f.bytes, func(v field) (err error) {
				switch v.num {
				case 1:
					out.ScheduleID, err = decodeEntityID(v.bytes)
				case 2:
					var id model.TransactionID
					id, err = decodeTransactionID(v.bytes)
					out.ScheduledTransactionID = &id
				}
				return err
			})
		case 6:
			out.Kind = model.OutputSignSchedule
			err = walk(f.bytes, func(v field) (err error) {
				if v.num == 1 {
					var id model.TransactionID
					id, err = decodeTransactionID(v.bytes)
					out.ScheduledTransactionID = &id
				}
				return err
			})
		case 7:
			out.Kind = model.OutputAccountCreate
			err = walk(f.bytes, func(v field) (err error) {
				if v.num == 1 {
					out.CreatedAccountID, err = decodeEntityID(v.bytes)
				}
				return err
			})
		}
		return err
	})
	return out, err
}

// Contract outputs share a layout: sidecars = 1, result = 2, ethereum hash = 3.
func decodeContractOutput(out *model.TransactionOutput, f field) error {
	switch f.num {
	case 2:
		out.Kind = model.OutputContractCall
	case 3:
		out.Kind = model.OutputEthereumCall
	case 4:
		out.Kind = model.OutputContractCreate
	}
	return walk(f.bytes, func(v field) error {
		switch v.num {
		case 1:
			sidecar, err := decodeSidecar(v.bytes)
			if err != nil {
				return err
			}
			out.Sidecars = append(out.Sidecars, sidecar)
		case 2:
			result, err := decodeContractResult(v.bytes)
			if err != nil {
				return err
			}
			out.ContractResult = &result
		case 3:
			out.EthereumHash = v.bytes
		}
		return nil
	})
}

// EncodeTransactionOutput encodes a transaction output item.
func EncodeTransactionOutput(out model.TransactionOutput) []byte {
	var msg []byte
	switch out.Kind {
	case model.OutputUtilPrng:
		msg = appendBytes(msg, 1, out.PrngBytes)
		if out.PrngNumber != nil {
			msg = appendVarint(msg, 2, uint64(*out.PrngNumber))
		}
		return appendMessage(nil, 1, msg)
	case model.OutputContractCall, model.OutputEthereumCall, model.OutputContractCreate:
		for _, sidecar := range out.Sidecars {
			msg = appendMessage(msg, 1, encodeSidecar(sidecar))
		}
		if out.ContractResult != nil {
			msg = appendMessage(msg, 2, encodeContractResult(*out.ContractResult))
		}
		msg = appendBytes(msg, 3, out.EthereumHash)
		var num protowire.Number = 2
		switch out.Kind {
		case model.OutputEthereumCall:
			num = 3
		case model.OutputContractCreate:
			num = 4
		}
		return appendMessage(nil, num, msg)
	case model.OutputCreateSchedule:
		msg = appendEntityID(msg, 1, out.ScheduleID)
		if out.ScheduledTransactionID != nil {
			msg = appendMessage(msg, 2, encodeTransactionID(*out.ScheduledTransactionID))
		}
		return appendMessage(nil, 5, msg)
	case model.OutputSignSchedule:
		if out.ScheduledTransactionID != nil {
			msg = appendMessage(msg, 1, encodeTransactionID(*out.ScheduledTransactionID))
		}
		return appendMessage(nil, 6, msg)
	case model.OutputAccountCreate:
		msg = appendEntityID(msg, 1, out.CreatedAccountID)
		return appendMessage(nil, 7, msg)
	}
	return nil
}

func decodeContractResult(b []byte) (model.ContractResult, error) {
	var r model.ContractResult
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			r.ContractID, err = decodeEntityID(f.bytes)
		case 2:
			r.CallResult = f.bytes
		case 3:
			r.ErrorMessage = string(f.bytes)
		case 4:
			r.Bloom = f.bytes
		case 5:
			r.GasUsed = f.v
		case 6:
			var log model.ContractLog
			log, err = decodeContractLog(f.bytes)
			r.Logs = append(r.Logs, log)
		case 7:
			var id model.EntityID
			id, err = decodeEntityID(f.bytes)
			r.CreatedContractIDs = append(r.CreatedContractIDs, id)
		case 8:
			r.EvmAddress = f.bytes
		case 9:
			r.Gas = f.int64()
		case 10:
			r.Amount = f.int64()
		case 11:
			r.FunctionParameters = f.bytes
		case 12:
			r.SenderID, err = decodeAccountID(f.bytes)
		}
		return err
	})
	return r, err
}

func encodeContractResult(r model.ContractResult) []byte {
	var b []byte
	b = appendEntityID(b, 1, r.ContractID)
	b = appendBytes(b, 2, r.CallResult)
	b = appendString(b, 3, r.ErrorMessage)
	b = appendBytes(b, 4, r.Bloom)
	b = appendVarint(b, 5, r.GasUsed)
	for _, log := range r.Logs {
		var msg []byte
		msg = appendEntityID(msg, 1, log.ContractID)
		msg = appendBytes(msg, 2, log.Bloom)
		for _, topic := range log.Topics {
			msg = appendMessage(msg, 3, topic)
		}
		msg = appendBytes(msg, 4, log.Data)
		b = appendMessage(b, 6, msg)
	}
	for _, id := range r.CreatedContractIDs {
		b = appendMessage(b, 7, encodeEntityID(id))
	}
	b = appendBytes(b, 8, r.EvmAddress)
	b = appendVarint(b, 9, uint64(r.Gas))
	b = appendVarint(b, 10, uint64(r.Amount))
	b = appendBytes(b, 11, r.FunctionParameters)
	return appendAccountID(b, 12, r.SenderID)
}

func decodeContractLog(b []byte) (model.ContractLog, error) {
	var log model.ContractLog
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			log.ContractID, err = decodeEntityID(f.bytes)
		case 2:
			log.Bloom = f.bytes
		case 3:
			log.Topics = append(log.Topics, f.bytes)
		case 4:
			log.Data = f.bytes
		}
		return err
	})
	return log, err
}

// Sidecar: consensus timestamp = 1, migration = 2, state changes = 3, actions = 4,
// bytecode = 5.
func decodeSidecar(b []byte) (model.Sidecar, error) {
	var s model.Sidecar
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			s.ConsensusTimestamp, err = decodeTimestamp(f.bytes)
		case 2:
			s.Migration = f.bool()
		case 3:
			s.Kind = model.SidecarStateChanges
			err = walk(f.bytes, func(v field) error {
				if v.num != 1 {
					return nil
				}
				change, err := decodeContractStateChange(v.bytes)
				s.StateChanges = append(s.StateChanges, change)
				return err
			})
		case 4:
			s.Kind = model.SidecarActions
			err = walk(f.bytes, func(v field) error {
				if v.num != 1 {
					return nil
				}
				action, err := decodeContractAction(v.bytes)
				s.Actions = append(s.Actions, action)
				return err
			})
		case 5:
			s.Kind = model.SidecarBytecode
			bytecode := &model.ContractBytecode{}
			s.Bytecode = bytecode
			err = walk(f.bytes, func(v field) (err error) {
				switch v.num {
				case 1:
					bytecode.ContractID, err = decodeEntityID(v.bytes)
				case 2:
					bytecode.Initcode = v.bytes
				case 3:
					bytecode.RuntimeBytecode = v.bytes
				}
				return err
			})
		}
		return err
	})
	return s, err
}

func encodeSidecar(s model.Sidecar) []byte {
	var b []byte
	b = appendTimestamp(b, 1, s.ConsensusTimestamp)
	b = appendBool(b, 2, s.Migration)
	switch s.Kind {
	case model.SidecarStateChanges:
		var msg []byte
		for _, change := range s.StateChanges {
			var c []byte
			c = appendEntityID(c, 1, change.ContractID)
			for _, storage := range change.StorageChanges {
				var sc []byte
				sc = appendBytes(sc, 1, storage.Slot)
				sc = appendBytes(sc, 2, storage.ValueRead)
				sc = appendBytes(sc, 3, storage.ValueWritten)
				c = appendMessage(c, 2, sc)
			}
			msg = appendMessage(msg, 1, c)
		}
		b = appendMessage(b, 3, msg)
	case model.SidecarActions:
		var msg []byte
		for _, action := range s.Actions {
			msg = appendMessage(msg, 1, encodeContractAction(action))
		}
		b = appendMessage(b, 4, msg)
	case model.SidecarBytecode:
		var msg []byte
		if s.Bytecode != nil {
			msg = appendEntityID(msg, 1, s.Bytecode.ContractID)
			msg = appendBytes(msg, 2, s.Bytecode.Initcode)
			msg = appendBytes(msg, 3, s.Bytecode.RuntimeBytecode)
		}
		b = appendMessage(b, 5, msg)
	}
	return b
}

func decodeContractStateChange(b []byte) (model.ContractStateChange, error) {
	var c model.ContractStateChange
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			c.ContractID, err = decodeEntityID(f.bytes)
		case 2:
			var storage model.StorageChange
			err = walk(f.bytes, func(v field) error {
				switch v.num {
				case 1:
					storage.Slot = v.bytes
				case 2:
					storage.ValueRead = v.bytes
				case 3:
					storage.ValueWritten = v.bytes
				}
				return nil
			})
			c.StorageChanges = append(c.StorageChanges, storage)
		}
		return err
	})
	return c, err
}

func decodeContractAction(b []byte) (model.ContractAction, error) {
	var a model.ContractAction
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			a.CallType = f.int32()
		case 2:
			a.CallingAccount, err = decodeAccountID(f.bytes)
		case 3:
			a.CallingContract, err = decodeEntityID(f.bytes)
		case 4:
			a.Gas = f.int64()
		case 5:
			a.Input = f.bytes
		case 6:
			a.RecipientAccount, err = decodeAccountID(f.bytes)
		case 7:
			a.RecipientContract, err = decodeEntityID(f.bytes)
		case 8:
			a.Value = f.int64()
		case 9:
			a.GasUsed = f.int64()
		case 10:
			a.Output = f.bytes
		case 11:
			a.RevertReason = f.bytes
		case 12:
			a.Error = f.bytes
		case 13:
			a.CallDepth = f.int32()
		}
		return err
	})
	return a, err
}

func encodeContractAction(a model.ContractAction) []byte {
	var b []byte
	b = appendVarint(b, 1, uint64(a.CallType))
	b = appendAccountID(b, 2, a.CallingAccount)
	b = appendEntityID(b, 3, a.CallingContract)
	b = appendVarint(b, 4, uint64(a.Gas))
	b = appendBytes(b, 5, a.Input)
	b = appendAccountID(b, 6, a.RecipientAccount)
	b = appendEntityID(b, 7, a.RecipientContract)
	b = appendVarint(b, 8, uint64(a.Value))
	b = appendVarint(b, 9, uint64(a.GasUsed))
	b = appendBytes(b, 10, a.Output)
	b = appendBytes(b, 11, a.RevertReason)
	b = appendBytes(b, 12, a.Error)
	return appendVarint(b, 13, uint64(a.CallDepth))
}
