package blockstream

import (
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"google.golang.org/protobuf/encoding/protowire"
)

// StateChange is one decoded map update of a StateChanges item. Exactly one of the
// value fields is set.
type StateChange struct {
	Account  *AccountState
	Contract *model.EntityID
	File     *model.EntityID
	Schedule *model.EntityID
	Token    *TokenState
	Topic    *TopicState
	Nft      *NftState
	Node     *uint64
}

type AccountState struct {
	ID    model.EntityID
	Alias []byte
}

type TokenState struct {
	ID          model.EntityID
	TotalSupply uint64
}

type TopicState struct {
	ID             model.EntityID
	SequenceNumber uint64
	RunningHash    []byte
}

type NftState struct {
	Token  model.EntityID
	Serial int64
}

// Map value oneof field numbers. The key oneof uses the same numbers.
const (
	valueAccount protowire.Number = iota + 1
	valueContract
	valueFile
	valueSchedule
	valueToken
	valueTopic
	valueNft
	valueNode
)

// DecodeStateChanges decodes a StateChanges item. Deletions and singleton updates
// carry nothing the importer attributes and are skipped.
func DecodeStateChanges(b []byte) ([]StateChange, error) {
	var changes []StateChange
	err := walk(b, func(f field) error {
		if f.num != 2 {
			return nil
		}
		return walk(f.bytes, func(sc field) error {
			if sc.num != 2 {
				return nil
			}
			return walk(sc.bytes, func(update field) error {
				if update.num != 2 {
					return nil
				}
				change, err := decodeMapValue(update.bytes)
				if err != nil {
					return err
				}
				changes = append(changes, change)
				return nil
			})
		})
	})
	if err != nil {
		return nil, err
	}
	return changes, nil
}

func decodeMapValue(b []byte) (StateChange, error) {
	var change StateChange
	err := walk(b, func(f field) (err error) {
		switch f.num {
		case valueAccount:
			v := &AccountState{}
			change.Account = v
			err = walk(f.bytes, func(a field) (err error) {
				switch a.num {
				case 1:
					v.ID, err = decodeEntityID(a.bytes)
				case 2:
					v.Alias = a.bytes
				}
				return err
			})
		case valueContract, valueFile, valueSchedule:
			var id model.EntityID
			err = walk(f.bytes, func(a field) (err error) {
				if a.num == 1 {
					id, err = decodeEntityID(a.bytes)
				}
				return err
			})
			switch f.num {
			case valueContract:
				change.Contract = &id
			case valueFile:
				change.File = &id
			default:
				change.Schedule = &id
			}
		case valueToken:
			v := &TokenState{}
			change.Token = v
			err = walk(f.bytes, func(a field) (err error) {
				switch a.num {
				case 1:
					v.ID, err = decodeEntityID(a.bytes)
				case 2:
					v.TotalSupply = a.v
				}
				return err
			})
		case valueTopic:
			v := &TopicState{}
			change.Topic = v
			err = walk(f.bytes, func(a field) (err error) {
				switch a.num {
				case 1:
					v.ID, err = decodeEntityID(a.bytes)
				case 2:
					v.SequenceNumber = a.v
				case 3:
					v.RunningHash = a.bytes
				}
				return err
			})
		case valueNft:
			v := &NftState{}
			change.Nft = v
			err = walk(f.bytes, func(a field) error {
				if a.num != 1 {
					return nil
				}
				return walk(a.bytes, func(id field) (err error) {
					switch id.num {
					case 1:
						v.Token, err = decodeEntityID(id.bytes)
					case 2:
						v.Serial = id.int64()
					}
					return err
				})
			})
		case valueNode:
			var nodeID uint64
			err = walk(f.bytes, func(a field) error {
				if a.num == 1 {
					nodeID = a.v
				}
				return nil
			})
			change.Node = &nodeID
		}
		return err
	})
	return change, err
}

// EncodeStateChanges encodes map updates as one StateChanges item.
func EncodeStateChanges(consensusTimestamp int64, changes []StateChange) []byte {
	var b []byte
	b = appendTimestamp(b, 1, consensusTimestamp)
	for _, change := range changes {
		num, key, value := encodeMapUpdate(change)
		if num == 0 {
			continue
		}
		var update []byte
		update = appendMessage(update, 1, appendMessage(nil, num, key))
		update = appendMessage(update, 2, appendMessage(nil, num, value))

		var sc []byte
		sc = appendVarint(sc, 1, uint64(num))
		sc = appendMessage(sc, 2, update)
		b = appendMessage(b, 2, sc)
	}
	return b
}

func encodeMapUpdate(change StateChange) (protowire.Number, []byte, []byte) {
	switch {
	case change.Account != nil:
		key := encodeEntityID(change.Account.ID)
		value := appendMessage(nil, 1, key)
		return valueAccount, key, appendBytes(value, 2, change.Account.Alias)
	case change.Contract != nil:
		key := encodeEntityID(*change.Contract)
		return valueContract, key, appendMessage(nil, 1, key)
	case change.File != nil:
		key := encodeEntityID(*change.File)
		return valueFile, key, appendMessage(nil, 1, key)
	case change.Schedule != nil:
		key := encodeEntityID(*change.Schedule)
		return valueSchedule, key, appendMessage(nil, 1, key)
	case change.Token != nil:
		key := encodeEntityID(change.Token.ID)
		value := appendMessage(nil, 1, key)
		return valueToken, key, appendVarint(value, 2, change.Token.TotalSupply)
	case change.Topic != nil:
		key := encodeEntityID(change.Topic.ID)
		value := appendMessage(nil, 1, key)
		value = appendVarint(value, 2, change.Topic.SequenceNumber)
		return valueTopic, key, appendBytes(value, 3, change.Topic.RunningHash)
	case change.Nft != nil:
		var key []byte
		key = appendMessage(key, 1, encodeEntityID(change.Nft.Token))
		key = appendVarint(key, 2, uint64(change.Nft.Serial))
		return valueNft, key, appendMessage(nil, 1, key)
	case change.Node != nil:
		key := appendVarint(nil, 1, *change.Node)
		return valueNode, key, key
	}
	return 0, nil, nil
}

// apply populates a state change context from decoded changes.
func apply(ctx *model.StateChangeContext, changes []StateChange) {
	for _, change := range changes {
		switch {
		case change.Account != nil:
			ctx.AddAccount(change.Account.ID, change.Account.Alias)
		case change.Contract != nil:
			ctx.AddEntity(model.EntityContract, *change.Contract)
		case change.File != nil:
			ctx.AddEntity(model.EntityFile, *change.File)
		case change.Schedule != nil:
			ctx.AddEntity(model.EntitySchedule, *change.Schedule)
		case change.Token != nil:
			ctx.AddToken(change.Token.ID, change.Token.TotalSupply)
		case change.Topic != nil:
			ctx.AddTopic(change.Topic.ID, change.Topic.SequenceNumber, change.Topic.RunningHash)
		case change.Nft != nil:
			ctx.AddNft(change.Nft.Token, change.Nft.Serial)
		case change.Node != nil:
			ctx.AddNode(*change.Node)
		}
	}
}
