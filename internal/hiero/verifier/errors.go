package verifier

import (
	"errors"
	"fmt"
)

var (
	// ErrNonConsecutive reports a block that does not follow the last accepted one.
	ErrNonConsecutive = errors.New("non-consecutive block")
	// ErrFilenameMismatch reports a filename that does not encode the block's number.
	ErrFilenameMismatch = errors.New("block filename does not match block number")
	// ErrHashMismatch reports a broken hash chain.
	ErrHashMismatch = errors.New("previous hash mismatch")
)

// SequenceError is an ErrNonConsecutive with the expected and actual block numbers.
type SequenceError struct {
	Expected uint64
	Actual   uint64
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s: expected block %d, got %d", ErrNonConsecutive, e.Expected, e.Actual)
}

func (e *SequenceError) Unwrap() error { return ErrNonConsecutive }

// HashMismatchError is an ErrHashMismatch naming both hashes.
type HashMismatchError struct {
	Block    uint64
	Expected string
	Actual   string
}

func (e *HashMismatchError) Error() string {
	return fmt.Sprintf("%s for block %d: expected previous hash %s, actual %s", ErrHashMismatch, e.Block, e.Expected, e.Actual)
}

func (e *HashMismatchError) Unwrap() error { return ErrHashMismatch }
