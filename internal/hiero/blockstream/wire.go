// Package blockstream decodes and encodes the ledger's block stream wire format.
package blockstream

import (
	"errors"
	"fmt"

	"github.com/coreos/go-semver/semver"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMalformed is returned when a message cannot be decoded.
var ErrMalformed = errors.New("malformed block stream message")

type field struct {
	num   protowire.Number
	typ   protowire.Type
	v     uint64
	bytes []byte
}

func (f field) int64() int64 { return int64(f.v) }
func (f field) int32() int32 { return int32(f.v) }
func (f field) bool() bool   { return f.v != 0 }

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// walk iterates the top level fields of one message.
func walk(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return malformed("tag: %v", protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.v, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		case protowire.Fixed64Type:
			f.v, n = protowire.ConsumeFixed64(b)
		case protowire.Fixed32Type:
			var v uint32
			v, n = protowire.ConsumeFixed32(b)
			f.v = uint64(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return malformed("field %d: %v", num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// packedInt64s appends a repeated int64 field in either packed or expanded form.
func packedInt64s(dst []int64, f field) ([]int64, error) {
	if f.typ == protowire.VarintType {
		return append(dst, f.int64()), nil
	}
	b := f.bytes
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, malformed("packed field %d: %v", f.num, protowire.ParseError(n))
		}
		dst = append(dst, int64(v))
		b = b[n:]
	}
	return dst, nil
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendVarint(b, num, protowire.EncodeBool(v))
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// appendMessage always emits the field so that empty oneof members stay present.
func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendPackedInt64s(b []byte, num protowire.Number, vs []int64) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	return appendMessage(b, num, packed)
}

// Timestamp: seconds = 1, nanos = 2.
func decodeTimestamp(b []byte) (int64, error) {
	var seconds, nanos int64
	err := walk(b, func(f field) error {
		switch f.num {
		case 1:
			seconds = f.int64()
		case 2:
			nanos = int64(f.int32())
		}
		return nil
	})
	return seconds*1_000_000_000 + nanos, err
}

func appendTimestamp(b []byte, num protowire.Number, ns int64) []byte {
	var msg []byte
	msg = appendVarint(msg, 1, uint64(ns/1_000_000_000))
	msg = appendVarint(msg, 2, uint64(ns%1_000_000_000))
	return appendMessage(b, num, msg)
}

// Entity id: shard = 1, realm = 2, num = 3, alias = 4 (accounts only).
func decodeEntityID(b []byte) (model.EntityID, error) {
	account, err := decodeAccountID(b)
	return account.EntityID, err
}

func decodeAccountID(b []byte) (model.AccountID, error) {
	var id model.AccountID
	err := walk(b, func(f field) error {
		switch f.num {
		case 1:
			id.Shard = f.int64()
		case 2:
			id.Realm = f.int64()
		case 3:
			id.Num = f.int64()
		case 4:
			id.Alias = f.bytes
		}
		return nil
	})
	return id, err
}

func encodeEntityID(id model.EntityID) []byte {
	var msg []byte
	msg = appendVarint(msg, 1, uint64(id.Shard))
	msg = appendVarint(msg, 2, uint64(id.Realm))
	return appendVarint(msg, 3, uint64(id.Num))
}

func appendEntityID(b []byte, num protowire.Number, id model.EntityID) []byte {
	if id.IsZero() {
		return b
	}
	return appendMessage(b, num, encodeEntityID(id))
}

func appendAccountID(b []byte, num protowire.Number, id model.AccountID) []byte {
	if id.IsZero() && len(id.Alias) == 0 {
		return b
	}
	msg := encodeEntityID(id.EntityID)
	msg = appendBytes(msg, 4, id.Alias)
	return appendMessage(b, num, msg)
}

// Semantic version: major = 1, minor = 2, patch = 3.
func decodeVersion(b []byte) (semver.Version, error) {
	var v semver.Version
	err := walk(b, func(f field) error {
		switch f.num {
		case 1:
			v.Major = f.int64()
		case 2:
			v.Minor = f.int64()
		case 3:
			v.Patch = f.int64()
		}
		return nil
	})
	return v, err
}

func appendVersion(b []byte, num protowire.Number, v semver.Version) []byte {
	var msg []byte
	msg = appendVarint(msg, 1, uint64(v.Major))
	msg = appendVarint(msg, 2, uint64(v.Minor))
	msg = appendVarint(msg, 3, uint64(v.Patch))
	return appendMessage(b, num, msg)
}
