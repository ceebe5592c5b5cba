package blockstream

import (
	"math"
	"strconv"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"google.golang.org/protobuf/encoding/protowire"
)

// UnboundedEnd asks a block node to keep streaming new blocks as they arrive.
const UnboundedEnd uint64 = math.MaxUint64

// SubscribeStreamRequest opens a block subscription.
type SubscribeStreamRequest struct {
	StartBlockNumber uint64
	EndBlockNumber   uint64
}

func (r *SubscribeStreamRequest) Marshal() ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, r.StartBlockNumber)
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	return protowire.AppendVarint(b, r.EndBlockNumber), nil
}

func (r *SubscribeStreamRequest) Unmarshal(b []byte) error {
	*r = SubscribeStreamRequest{}
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			r.StartBlockNumber = f.v
		case 2:
			r.EndBlockNumber = f.v
		}
		return nil
	})
}

// ResponseCode is the terminal status of a subscription.
type ResponseCode int32

const (
	ResponseCodeUnknown ResponseCode = iota
	ResponseCodeSuccess
	ResponseCodeInvalidRequest
	ResponseCodeError
	ResponseCodeNotAvailable
	ResponseCodeInvalidStartBlockNumber
	ResponseCodeInvalidEndBlockNumber
)

var responseCodeNames = map[ResponseCode]string{
	ResponseCodeUnknown:                 "UNKNOWN",
	ResponseCodeSuccess:                 "SUCCESS",
	ResponseCodeInvalidRequest:          "INVALID_REQUEST",
	ResponseCodeError:                   "ERROR",
	ResponseCodeNotAvailable:            "NOT_AVAILABLE",
	ResponseCodeInvalidStartBlockNumber: "INVALID_START_BLOCK_NUMBER",
	ResponseCodeInvalidEndBlockNumber:   "INVALID_END_BLOCK_NUMBER",
}

func (c ResponseCode) String() string {
	if name, ok := responseCodeNames[c]; ok {
		return name
	}
	return "CODE_" + strconv.Itoa(int(c))
}

// ResponseKind tells which member of the subscription response union is set.
type ResponseKind int

const (
	ResponseUnset ResponseKind = iota
	ResponseStatus
	ResponseBlockItems
	ResponseEndOfBlock
)

// SubscribeStreamResponse is one message of a block subscription.
type SubscribeStreamResponse struct {
	Kind       ResponseKind
	Status     ResponseCode
	BlockItems []model.BlockItem
	EndOfBlock uint64
}

func (r *SubscribeStreamResponse) Marshal() ([]byte, error) {
	var b []byte
	switch r.Kind {
	case ResponseStatus:
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.Status))
	case ResponseBlockItems:
		b = appendMessage(b, 2, EncodeBlockItems(r.BlockItems))
	case ResponseEndOfBlock:
		var end []byte
		end = protowire.AppendTag(end, 1, protowire.VarintType)
		end = protowire.AppendVarint(end, r.EndOfBlock)
		b = appendMessage(b, 3, end)
	}
	return b, nil
}

func (r *SubscribeStreamResponse) Unmarshal(b []byte) error {
	*r = SubscribeStreamResponse{}
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			r.Kind = ResponseStatus
			r.Status = ResponseCode(f.int32())
			r.BlockItems = nil
		case 2:
			items, err := DecodeBlockItems(f.bytes)
			if err != nil {
				return err
			}
			r.Kind = ResponseBlockItems
			r.BlockItems = items
		case 3:
			r.Kind = ResponseEndOfBlock
			r.BlockItems = nil
			return walk(f.bytes, func(f field) error {
				if f.num == 1 {
					r.EndOfBlock = f.v
				}
				return nil
			})
		}
		return nil
	})
}

// ServerStatusRequest asks a block node for the blocks it can serve.
type ServerStatusRequest struct{}

func (r *ServerStatusRequest) Marshal() ([]byte, error) { return nil, nil }

func (r *ServerStatusRequest) Unmarshal([]byte) error { return nil }

// ServerStatusResponse advertises the inclusive range of available blocks.
type ServerStatusResponse struct {
	FirstAvailableBlock uint64
	LastAvailableBlock  uint64
}

func (r *ServerStatusResponse) Marshal() ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, r.FirstAvailableBlock)
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	return protowire.AppendVarint(b, r.LastAvailableBlock), nil
}

func (r *ServerStatusResponse) Unmarshal(b []byte) error {
	*r = ServerStatusResponse{}
	return walk(b, func(f field) error {
		switch f.num {
		case 1:
			r.FirstAvailableBlock = f.v
		case 2:
			r.LastAvailableBlock = f.v
		}
		return nil
	})
}
