package downloader

import "errors"

var (
	// ErrTimeoutBudget is returned when the shared download budget ran out before
	// any node provided the block.
	ErrTimeoutBudget = errors.New("download timeout budget exhausted")
	// ErrNoNodes is returned when every node was tried without success.
	ErrNoNodes = errors.New("no node could provide the block")
	// ErrNotFound is returned by an ObjectStore for a missing key.
	ErrNotFound = errors.New("object not found")
)
