package blocknode

import "errors"

var (
	// ErrNoBlockNode reports that no configured node can serve the needed block.
	ErrNoBlockNode = errors.New("no block node can provide block")
	// ErrFraming reports a subscription that broke block framing.
	ErrFraming = errors.New("block stream framing violation")
	// ErrStreamStatus reports a subscription that ended with a failure status.
	ErrStreamStatus = errors.New("block stream ended with failure status")
	// ErrIdleTimeout reports a subscription that went silent for too long.
	ErrIdleTimeout = errors.New("block stream idle timeout")
)
