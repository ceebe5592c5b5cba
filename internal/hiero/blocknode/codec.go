package blocknode

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

const (
	subscribeMethod    = "/org.hiero.block.api.BlockStreamSubscribeService/subscribeBlockStream"
	serverStatusMethod = "/org.hiero.block.api.BlockNodeService/serverStatus"
)

// message is implemented by the block node API messages of the blockstream package.
type message interface {
	Marshal() ([]byte, error)
	Unmarshal(b []byte) error
}

// codec carries the hand-decoded block node messages over the standard protobuf
// content subtype, so block nodes see ordinary protobuf calls.
type codec struct{}

var _ encoding.Codec = codec{}

func (codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(message)
	if !ok {
		return nil, fmt.Errorf("blocknode codec: unsupported message type %T", v)
	}
	return m.Marshal()
}

func (codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(message)
	if !ok {
		return fmt.Errorf("blocknode codec: unsupported message type %T", v)
	}
	return m.Unmarshal(data)
}

func (codec) Name() string { return "proto" }
