//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package iterhash

import (
	"encoding/binary"
	"fmt"
)

// Serialized states start with "shs" followed by the algorithm magic
// byte, then the full chaining state, the block buffer, and the
// message length, all big-endian.
const magic = "shs"

func (e *Engine) marshaledSize() int {
	return len(magic) + 1 + e.p.StateSize + e.p.BlockSize + 8
}

// MarshalBinary encodes the hash state so that hashing can be resumed
// later with UnmarshalBinary.
func (e *Engine) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, e.marshaledSize())
	b = append(b, magic...)
	b = append(b, e.p.Magic)
	b = e.t.AppendState(b)
	b = append(b, e.x[:e.nx]...)
	b = b[:len(b)+len(e.x)-e.nx] // already zero
	b = binary.BigEndian.AppendUint64(b, e.len)
	return b, nil
}

// UnmarshalBinary restores a hash state encoded by MarshalBinary. The
// state must come from an engine of the same algorithm.
func (e *Engine) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic)+1 || string(b[:len(magic)]) != magic ||
		b[len(magic)] != e.p.Magic {
		return fmt.Errorf("%s: invalid hash state identifier", e.p.Name)
	}
	if len(b) != e.marshaledSize() {
		return fmt.Errorf("%s: invalid hash state size", e.p.Name)
	}
	b = b[len(magic)+1:]
	e.t.SetState(b[:e.p.StateSize])
	b = b[e.p.StateSize:]
	copy(e.x, b[:e.p.BlockSize])
	b = b[e.p.BlockSize:]
	e.len = binary.BigEndian.Uint64(b)
	e.nx = int(e.len % uint64(e.p.BlockSize))
	return nil
}
