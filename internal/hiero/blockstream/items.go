package blockstream

import (
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"google.golang.org/protobuf/encoding/protowire"
)

// BlockItem oneof field numbers.
var itemFields = map[protowire.Number]model.BlockItemKind{
	1:  model.BlockItemHeader,
	2:  model.BlockItemEventHeader,
	3:  model.BlockItemRoundHeader,
	4:  model.BlockItemSignedTransaction,
	5:  model.BlockItemTransactionResult,
	6:  model.BlockItemTransactionOutput,
	7:  model.BlockItemStateChanges,
	8:  model.BlockItemFilteredItemHash,
	9:  model.BlockItemProof,
	10: model.BlockItemRecordFile,
	11: model.BlockItemTraceData,
}

var itemNumbers = func() map[model.BlockItemKind]protowire.Number {
	numbers := make(map[model.BlockItemKind]protowire.Number, len(itemFields))
	for num, kind := range itemFields {
		numbers[kind] = num
	}
	return numbers
}()

// DecodeBlockItem decodes one encoded BlockItem message.
func DecodeBlockItem(b []byte) (model.BlockItem, error) {
	var item model.BlockItem
	err := walk(b, func(f field) error {
		kind, ok := itemFields[f.num]
		if !ok {
			return nil
		}
		if f.typ != protowire.BytesType {
			return malformed("block item field %d has wire type %d", f.num, f.typ)
		}
		item = model.BlockItem{Kind: kind, Raw: f.bytes}
		return nil
	})
	if err != nil {
		return model.BlockItem{}, err
	}
	return item, nil
}

// EncodeBlockItem encodes one BlockItem message.
func EncodeBlockItem(item model.BlockItem) []byte {
	num, ok := itemNumbers[item.Kind]
	if !ok {
		return nil
	}
	return appendMessage(nil, num, item.Raw)
}

// DecodeBlockItems decodes a Block (or a BlockItemSet) message, whose first field
// is the repeated item list.
func DecodeBlockItems(b []byte) ([]model.BlockItem, error) {
	var items []model.BlockItem
	err := walk(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		item, err := DecodeBlockItem(f.bytes)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// EncodeBlockItems is the inverse of DecodeBlockItems.
func EncodeBlockItems(items []model.BlockItem) []byte {
	var b []byte
	for _, item := range items {
		b = appendMessage(b, 1, EncodeBlockItem(item))
	}
	return b
}
