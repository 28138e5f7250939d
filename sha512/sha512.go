//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha512 implements the SHA-512 and SHA-384 hash algorithms
// as defined in FIPS 180-4. The two algorithms share the compression
// function; SHA-384 starts from its own initialization vector and
// reveals the first 48 bytes of the final state.
package sha512

import (
	"hash"

	"github.com/markkurossi/shs/iterhash"
)

// Size is the size of a SHA-512 checksum in bytes.
const Size = 64

// Size384 is the size of a SHA-384 checksum in bytes.
const Size384 = 48

// BlockSize is the block size of SHA-512 and SHA-384 in bytes.
const BlockSize = 128

const (
	init0 = 0x6a09e667f3bcc908
	init1 = 0xbb67ae8584caa73b
	init2 = 0x3c6ef372fe94f82b
	init3 = 0xa54ff53a5f1d36f1
	init4 = 0x510e527fade682d1
	init5 = 0x9b05688c2b3e6c1f
	init6 = 0x1f83d9abfb41bd6b
	init7 = 0x5be0cd19137e2179

	init0_384 = 0xcbbb9d5dc1059ed8
	init1_384 = 0x629a292a367cd507
	init2_384 = 0x9159015a3070dd17
	init3_384 = 0x152fecd8f70e5939
	init4_384 = 0x67332667ffc00b31
	init5_384 = 0x8eb44a8768581511
	init6_384 = 0xdb0c2e0d64f98fa7
	init7_384 = 0x47b5481dbefa4fa4
)

var params512 = iterhash.Params{
	Name:       "SHA-512",
	BlockSize:  BlockSize,
	Size:       Size,
	StateSize:  Size,
	LengthSize: 16,
	Magic:      0x05,
}

var params384 = iterhash.Params{
	Name:       "SHA-384",
	BlockSize:  BlockSize,
	Size:       Size384,
	StateSize:  Size,
	LengthSize: 16,
	Magic:      0x04,
}

// state is the chaining state shared by SHA-512 and SHA-384.
type state struct {
	h     [8]uint64
	is384 bool
}

func (s *state) Params() iterhash.Params {
	if s.is384 {
		return params384
	}
	return params512
}

func (s *state) Init() {
	if s.is384 {
		InitState384(&s.h)
	} else {
		InitState(&s.h)
	}
}

func (s *state) Blocks(p []byte) int {
	return hashBlocks(&s.h, p)
}

func (s *state) AppendState(dst []byte) []byte {
	return iterhash.AppendWords64(dst, s.h[:])
}

func (s *state) SetState(src []byte) {
	iterhash.DecodeWords64(s.h[:], src)
}

func (s *state) Clone() iterhash.Transform {
	c := *s
	return &c
}

// New returns a new hash.Hash computing the SHA-512 checksum. The
// Hash also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler to marshal and unmarshal the internal
// state of the hash.
func New() hash.Hash {
	return iterhash.New(new(state))
}

// New384 returns a new hash.Hash computing the SHA-384 checksum.
func New384() hash.Hash {
	return iterhash.New(&state{is384: true})
}

// Sum512 returns the SHA-512 checksum of the data.
func Sum512(data []byte) [Size]byte {
	e := iterhash.New(new(state))
	e.Write(data)

	var sum [Size]byte
	e.Sum(sum[:0])
	return sum
}

// Sum384 returns the SHA-384 checksum of the data.
func Sum384(data []byte) [Size384]byte {
	e := iterhash.New(&state{is384: true})
	e.Write(data)

	var sum [Size384]byte
	e.Sum(sum[:0])
	return sum
}

// InitState sets h to the SHA-512 initialization vector.
func InitState(h *[8]uint64) {
	h[0] = init0
	h[1] = init1
	h[2] = init2
	h[3] = init3
	h[4] = init4
	h[5] = init5
	h[6] = init6
	h[7] = init7
}

// InitState384 sets h to the SHA-384 initialization vector.
func InitState384(h *[8]uint64) {
	h[0] = init0_384
	h[1] = init1_384
	h[2] = init2_384
	h[3] = init3_384
	h[4] = init4_384
	h[5] = init5_384
	h[6] = init6_384
	h[7] = init7_384
}

// Transform runs the SHA-512 compression function over one 128-byte
// block, updating the chaining state h in place. SHA-384 uses the
// same function over its own initialization vector. Normal hashing
// should use New or Sum512; Transform is the building block for
// protocols that do their own message scheduling.
func Transform(h *[8]uint64, block *[BlockSize]byte) {
	compress(h, block[:])
}
