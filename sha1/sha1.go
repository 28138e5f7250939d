//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS
// 180-4.
//
// SHA-1 is cryptographically broken and should only be used where it
// is required for interoperability with legacy formats.
package sha1

import (
	"hash"

	"github.com/markkurossi/shs/iterhash"
)

// Size is the size of a SHA-1 checksum in bytes.
const Size = 20

// BlockSize is the block size of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

var params = iterhash.Params{
	Name:       "SHA-1",
	BlockSize:  BlockSize,
	Size:       Size,
	StateSize:  Size,
	LengthSize: 8,
	Magic:      0x01,
}

// state is the SHA-1 chaining state.
type state struct {
	h [5]uint32
}

func (s *state) Params() iterhash.Params {
	return params
}

func (s *state) Init() {
	InitState(&s.h)
}

func (s *state) Blocks(p []byte) int {
	return hashBlocks(&s.h, p)
}

func (s *state) AppendState(dst []byte) []byte {
	return iterhash.AppendWords32(dst, s.h[:])
}

func (s *state) SetState(src []byte) {
	iterhash.DecodeWords32(s.h[:], src)
}

func (s *state) Clone() iterhash.Transform {
	c := *s
	return &c
}

// New returns a new hash.Hash computing the SHA-1 checksum. The Hash
// also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler to marshal and unmarshal the internal
// state of the hash.
func New() hash.Hash {
	return iterhash.New(new(state))
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) [Size]byte {
	e := iterhash.New(new(state))
	e.Write(data)

	var sum [Size]byte
	e.Sum(sum[:0])
	return sum
}

// InitState sets h to the SHA-1 initialization vector.
func InitState(h *[5]uint32) {
	h[0] = init0
	h[1] = init1
	h[2] = init2
	h[3] = init3
	h[4] = init4
}

// Transform runs the SHA-1 compression function over one 64-byte
// block, updating the chaining state h in place. It is the building
// block for protocols that do their own message scheduling; normal
// hashing should use New or Sum.
func Transform(h *[5]uint32, block *[BlockSize]byte) {
	compress(h, block[:])
}
