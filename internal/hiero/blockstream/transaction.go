package blockstream

import (
	"fmt"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"google.golang.org/protobuf/encoding/protowire"
)

// DecodeSignedTransaction decodes a signed transaction item and its body.
func DecodeSignedTransaction(b []byte) (model.SignedTransaction, model.TransactionBody, error) {
	var signed model.SignedTransaction
	err := walk(b, func(f field) error {
		switch f.num {
		case 1:
			signed.BodyBytes = f.bytes
		case 2:
			signed.SignatureMap = f.bytes
		}
		return nil
	})
	if err != nil {
		return signed, model.TransactionBody{}, err
	}
	if len(signed.BodyBytes) == 0 {
		return signed, model.TransactionBody{}, malformed("signed transaction without body")
	}
	body, err := DecodeTransactionBody(signed.BodyBytes)
	return signed, body, err
}

// EncodeSignedTransaction encodes a body together with a signature map.
func EncodeSignedTransaction(body model.TransactionBody, signatureMap []byte) []byte {
	var b []byte
	b = appendMessage(b, 1, EncodeTransactionBody(body))
	return appendBytes(b, 2, signatureMap)
}

// DecodeTransactionBody decodes the common body fields and dispatches the data
// oneof, whose field number is the transaction type.
func DecodeTransactionBody(b []byte) (model.TransactionBody, error) {
	var body model.TransactionBody
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			body.TransactionID, err = decodeTransactionID(f.bytes)
		case 2:
			body.NodeAccountID, err = decodeAccountID(f.bytes)
		case 3:
			body.Fee = f.v
		case 4:
			body.ValidDuration, err = decodeDuration(f.bytes)
		case 6:
			body.Memo = string(f.bytes)
		default:
			if f.typ != protowire.BytesType || f.num < protowire.Number(model.TransactionTypeContractCall) {
				return nil
			}
			body.Type = model.TransactionType(f.num)
			body.Data = f.bytes
		}
		return err
	})
	if err != nil {
		return body, err
	}
	if err = decodeTypedBody(&body); err != nil {
		return body, fmt.Errorf("decode %s body: %w", body.Type, err)
	}
	return body, nil
}

// EncodeTransactionBody encodes common fields and the typed body matching body.Type.
// Types without a typed body are written from Data.
func EncodeTransactionBody(body model.TransactionBody) []byte {
	var b []byte
	b = appendMessage(b, 1, encodeTransactionID(body.TransactionID))
	b = appendAccountID(b, 2, body.NodeAccountID)
	b = appendVarint(b, 3, body.Fee)
	if body.ValidDuration != 0 {
		b = appendMessage(b, 4, appendVarint(nil, 1, uint64(body.ValidDuration)))
	}
	b = appendString(b, 6, body.Memo)
	if body.Type != model.TransactionTypeUnknown {
		data := encodeTypedBody(body)
		if data == nil {
			data = body.Data
		}
		b = appendMessage(b, protowire.Number(body.Type), data)
	}
	return b
}

func decodeDuration(b []byte) (int64, error) {
	var seconds int64
	err := walk(b, func(f field) error {
		if f.num == 1 {
			seconds = f.int64()
		}
		return nil
	})
	return seconds, err
}

// Transaction id: valid start = 1, account = 2, scheduled = 3, nonce = 4.
func decodeTransactionID(b []byte) (model.TransactionID, error) {
	var id model.TransactionID
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			id.ValidStart, err = decodeTimestamp(f.bytes)
		case 2:
			id.AccountID, err = decodeAccountID(f.bytes)
		case 3:
			id.Scheduled = f.bool()
		case 4:
			id.Nonce = f.int32()
		}
		return err
	})
	return id, err
}

func encodeTransactionID(id model.TransactionID) []byte {
	var b []byte
	b = appendTimestamp(b, 1, id.ValidStart)
	b = appendAccountID(b, 2, id.AccountID)
	b = appendBool(b, 3, id.Scheduled)
	return appendVarint(b, 4, uint64(id.Nonce))
}

// Account amount: account = 1, amount = 2, approval = 3.
func decodeAccountAmount(b []byte) (model.AccountAmount, error) {
	var aa model.AccountAmount
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			aa.AccountID, err = decodeAccountID(f.bytes)
		case 2:
			aa.Amount = f.int64()
		case 3:
			aa.IsApproval = f.bool()
		}
		return err
	})
	return aa, err
}

func encodeAccountAmount(aa model.AccountAmount) []byte {
	var b []byte
	b = appendAccountID(b, 1, aa.AccountID)
	b = appendVarint(b, 2, uint64(aa.Amount))
	return appendBool(b, 3, aa.IsApproval)
}

// Transfer list: repeated account amounts = 1.
func decodeTransferList(b []byte) ([]model.AccountAmount, error) {
	var list []model.AccountAmount
	err := walk(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		aa, err := decodeAccountAmount(f.bytes)
		list = append(list, aa)
		return err
	})
	return list, err
}

func encodeTransferList(list []model.AccountAmount) []byte {
	var b []byte
	for _, aa := range list {
		b = appendMessage(b, 1, encodeAccountAmount(aa))
	}
	return b
}

// Token transfer list: token = 1, transfers = 2, nft transfers = 3, expected decimals = 4.
func decodeTokenTransferList(b []byte) (model.TokenTransferList, error) {
	var list model.TokenTransferList
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			list.Token, err = decodeEntityID(f.bytes)
		case 2:
			var aa model.AccountAmount
			aa, err = decodeAccountAmount(f.bytes)
			list.Transfers = append(list.Transfers, aa)
		case 3:
			var nft model.NftTransfer
			nft, err = decodeNftTransfer(f.bytes)
			list.NftTransfers = append(list.NftTransfers, nft)
		case 4:
			var decimals uint32
			err = walk(f.bytes, func(v field) error {
				if v.num == 1 {
					decimals = uint32(v.v)
				}
				return nil
			})
			list.Decimals = &decimals
		}
		return err
	})
	return list, err
}

func encodeTokenTransferList(list model.TokenTransferList) []byte {
	var b []byte
	b = appendEntityID(b, 1, list.Token)
	for _, aa := range list.Transfers {
		b = appendMessage(b, 2, encodeAccountAmount(aa))
	}
	for _, nft := range list.NftTransfers {
		b = appendMessage(b, 3, encodeNftTransfer(nft))
	}
	if list.Decimals != nil {
		b = appendMessage(b, 4, appendVarint(nil, 1, uint64(*list.Decimals)))
	}
	return b
}

func decodeTokenTransferLists(dst []model.TokenTransferList, b []byte) ([]model.TokenTransferList, error) {
	list, err := decodeTokenTransferList(b)
	if err != nil {
		return dst, err
	}
	return append(dst, list), nil
}

// Nft transfer: sender = 1, receiver = 2, serial = 3, approval = 4.
func decodeNftTransfer(b []byte) (model.NftTransfer, error) {
	var nft model.NftTransfer
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case 1:
			nft.Sender, err = decodeAccountID(f.bytes)
		case 2:
			nft.Receiver, err = decodeAccountID(f.bytes)
		case 3:
			nft.SerialNumber = f.int64()
		case 4:
			nft.IsApproval = f.bool()
		}
		return err
	})
	return nft, err
}

func encodeNftTransfer(nft model.NftTransfer) []byte {
	var b []byte
	b = appendAccountID(b, 1, nft.Sender)
	b = appendAccountID(b, 2, nft.Receiver)
	b = appendVarint(b, 3, uint64(nft.SerialNumber))
	return appendBool(b, 4, nft.IsApproval)
}

func decodeTypedBody(body *model.TransactionBody) error {
	data := body.Data
	switch body.Type {
	case model.TransactionTypeConsensusCreateTopic:
		v := &model.ConsensusCreateTopicBody{}
		body.ConsensusCreateTopic = v
		return walk(data, func(f field) error {
			if f.num == 1 {
				v.Memo = string(f.bytes)
			}
			return nil
		})
	case model.TransactionTypeConsensusSubmitMessage:
		v := &model.ConsensusSubmitMessageBody{}
		body.ConsensusSubmitMessage = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.TopicID, err = decodeEntityID(f.bytes)
			case 2:
				v.Message = f.bytes
			}
			return err
		})
	case model.TransactionTypeContractCall:
		v := &model.ContractCallBody{}
		body.ContractCall = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.ContractID, err = decodeEntityID(f.bytes)
			case 2:
				v.Gas = f.int64()
			case 3:
				v.Amount = f.int64()
			case 4:
				v.FunctionParameters = f.bytes
			}
			return err
		})
	case model.TransactionTypeContractCreate:
		v := &model.ContractCreateBody{}
		body.ContractCreate = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.FileID, err = decodeEntityID(f.bytes)
			case 2:
				v.Gas = f.int64()
			case 3:
				v.InitialBalance = f.int64()
			case 4:
				v.ConstructorArgs = f.bytes
			case 5:
				v.Memo = string(f.bytes)
			}
			return err
		})
	case model.TransactionTypeCryptoCreateAccount:
		v := &model.CryptoCreateAccountBody{}
		body.CryptoCreateAccount = v
		return walk(data, func(f field) error {
			switch f.num {
			case 1:
				v.InitialBalance = f.v
			case 2:
				v.Alias = f.bytes
			case 3:
				v.Memo = string(f.bytes)
			}
			return nil
		})
	case model.TransactionTypeCryptoTransfer:
		v := &model.CryptoTransferBody{}
		body.CryptoTransfer = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.Transfers, err = decodeTransferList(f.bytes)
			case 2:
				v.TokenTransfers, err = decodeTokenTransferLists(v.TokenTransfers, f.bytes)
			}
			return err
		})
	case model.TransactionTypeEthereumTransaction:
		v := &model.EthereumTransactionBody{}
		body.EthereumTransaction = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.EthereumData = f.bytes
			case 2:
				v.CallDataFileID, err = decodeEntityID(f.bytes)
			case 3:
				v.MaxGasAllowed = f.int64()
			}
			return err
		})
	case model.TransactionTypeTokenAirdrop:
		v := &model.TokenAirdropBody{}
		body.TokenAirdrop = v
		return walk(data, func(f field) (err error) {
			if f.num == 1 {
				v.TokenTransfers, err = decodeTokenTransferLists(v.TokenTransfers, f.bytes)
			}
			return err
		})
	case model.TransactionTypeTokenBurn:
		v := &model.TokenBurnBody{}
		body.TokenBurn = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.Token, err = decodeEntityID(f.bytes)
			case 2:
				v.Amount = f.v
			case 3:
				v.SerialNumbers, err = packedInt64s(v.SerialNumbers, f)
			}
			return err
		})
	case model.TransactionTypeTokenCreation:
		v := &model.TokenCreationBody{}
		body.TokenCreation = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.Name = string(f.bytes)
			case 2:
				v.Symbol = string(f.bytes)
			case 3:
				v.Decimals = uint32(f.v)
			case 4:
				v.InitialSupply = f.v
			case 5:
				v.Treasury, err = decodeAccountID(f.bytes)
			}
			return err
		})
	case model.TransactionTypeTokenMint:
		v := &model.TokenMintBody{}
		body.TokenMint = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.Token, err = decodeEntityID(f.bytes)
			case 2:
				v.Amount = f.v
			case 3:
				v.Metadata = append(v.Metadata, f.bytes)
			}
			return err
		})
	case model.TransactionTypeTokenWipe:
		v := &model.TokenWipeBody{}
		body.TokenWipe = v
		return walk(data, func(f field) (err error) {
			switch f.num {
			case 1:
				v.Token, err = decodeEntityID(f.bytes)
			case 2:
				v.Account, err = decodeAccountID(f.bytes)
			case 3:
				v.Amount = f.v
			case 4:
				v.SerialNumbers, err = packedInt64s(v.SerialNumbers, f)
			}
			return err
		})
	case model.TransactionTypeUtilPrng:
		v := &model.UtilPrngBody{}
		body.UtilPrng = v
		return walk(data, func(f field) error {
			if f.num == 1 {
				v.Range = f.int32()
			}
			return nil
		})
	}
	return nil
}

func encodeTypedBody(body model.TransactionBody) []byte {
	var b []byte
	switch {
	case body.ConsensusCreateTopic != nil:
		b = appendString(b, 1, body.ConsensusCreateTopic.Memo)
	case body.ConsensusSubmitMessage != nil:
		v := body.ConsensusSubmitMessage
		b = appendEntityID(b, 1, v.TopicID)
		b = appendBytes(b, 2, v.Message)
	case body.ContractCall != nil:
		v := body.ContractCall
		b = appendEntityID(b, 1, v.ContractID)
		b = appendVarint(b, 2, uint64(v.Gas))
		b = appendVarint(b, 3, uint64(v.Amount))
		b = appendBytes(b, 4, v.FunctionParameters)
	case body.ContractCreate != nil:
		v := body.ContractCreate
		b = appendEntityID(b, 1, v.FileID)
		b = appendVarint(b, 2, uint64(v.Gas))
		b = appendVarint(b, 3, uint64(v.InitialBalance))
		b = appendBytes(b, 4, v.ConstructorArgs)
		b = appendString(b, 5, v.Memo)
	case body.CryptoCreateAccount != nil:
		v := body.CryptoCreateAccount
		b = appendVarint(b, 1, v.InitialBalance)
		b = appendBytes(b, 2, v.Alias)
		b = appendString(b, 3, v.Memo)
	case body.CryptoTransfer != nil:
		v := body.CryptoTransfer
		if len(v.Transfers) > 0 {
			b = appendMessage(b, 1, encodeTransferList(v.Transfers))
		}
		for _, list := range v.TokenTransfers {
			b = appendMessage(b, 2, encodeTokenTransferList(list))
		}
	case body.EthereumTransaction != nil:
		v := body.EthereumTransaction
		b = appendBytes(b, 1, v.EthereumData)
		b = appendEntityID(b, 2, v.CallDataFileID)
		b = appendVarint(b, 3, uint64(v.MaxGasAllowed))
	case body.TokenAirdrop != nil:
		for _, list := range body.TokenAirdrop.TokenTransfers {
			b = appendMessage(b, 1, encodeTokenTransferList(list))
		}
	case body.TokenBurn != nil:
		v := body.TokenBurn
		b = appendEntityID(b, 1, v.Token)
		b = appendVarint(b, 2, v.Amount)
		b = appendPackedInt64s(b, 3, v.SerialNumbers)
	case body.TokenCreation != nil:
		v := body.TokenCreation
		b = appendString(b, 1, v.Name)
		b = appendString(b, 2, v.Symbol)
		b = appendVarint(b, 3, uint64(v.Decimals))
		b = appendVarint(b, 4, v.InitialSupply)
		b = appendAccountID(b, 5, v.Treasury)
	case body.TokenMint != nil:
		v := body.TokenMint
		b = appendEntityID(b, 1, v.Token)
		b = appendVarint(b, 2, v.Amount)
		for _, metadata := range v.Metadata {
			b = appendMessage(b, 3, metadata)
		}
	case body.TokenWipe != nil:
		v := body.TokenWipe
		b = appendEntityID(b, 1, v.Token)
		b = appendAccountID(b, 2, v.Account)
		b = appendVarint(b, 3, v.Amount)
		b = appendPackedInt64s(b, 4, v.SerialNumbers)
	case body.UtilPrng != nil:
		b = appendVarint(b, 1, uint64(body.UtilPrng.Range))
	default:
		return nil
	}
	if b == nil {
		b = []byte{}
	}
	return b
}
