// Package safe provides numeric conversions that fail instead of wrapping.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of builtin integer kinds accepted by the conversions.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint8 converts v to uint8, rejecting negative and oversized values.
func Uint8[T Integer](v T) (uint8, error) {
	return narrow[T, uint8](v, math.MaxUint8)
}

// Uint32 converts v to uint32, rejecting negative and oversized values.
func Uint32[T Integer](v T) (uint32, error) {
	return narrow[T, uint32](v, math.MaxUint32)
}

// Uint64 converts v to uint64, rejecting negative values.
func Uint64[T Integer](v T) (uint64, error) {
	return narrow[T, uint64](v, math.MaxUint64)
}

func narrow[T Integer, U uint8 | uint32 | uint64](v T, limit uint64) (U, error) {
	if v < 0 || uint64(v) > limit {
		return 0, fmt.Errorf("value %d out of %T range", v, U(0))
	}
	return U(v), nil
}
