//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha256 implements the SHA-256 and SHA-224 hash algorithms
// as defined in FIPS 180-4. The two algorithms share the compression
// function; SHA-224 starts from its own initialization vector and
// reveals the first 28 bytes of the final state.
package sha256

import (
	"hash"

	"github.com/markkurossi/shs/iterhash"
)

// Size is the size of a SHA-256 checksum in bytes.
const Size = 32

// Size224 is the size of a SHA-224 checksum in bytes.
const Size224 = 28

// BlockSize is the block size of SHA-256 and SHA-224 in bytes.
const BlockSize = 64

const (
	init0 = 0x6A09E667
	init1 = 0xBB67AE85
	init2 = 0x3C6EF372
	init3 = 0xA54FF53A
	init4 = 0x510E527F
	init5 = 0x9B05688C
	init6 = 0x1F83D9AB
	init7 = 0x5BE0CD19

	init0_224 = 0xC1059ED8
	init1_224 = 0x367CD507
	init2_224 = 0x3070DD17
	init3_224 = 0xF70E5939
	init4_224 = 0xFFC00B31
	init5_224 = 0x68581511
	init6_224 = 0x64F98FA7
	init7_224 = 0xBEFA4FA4
)

var params256 = iterhash.Params{
	Name:       "SHA-256",
	BlockSize:  BlockSize,
	Size:       Size,
	StateSize:  Size,
	LengthSize: 8,
	Magic:      0x03,
}

var params224 = iterhash.Params{
	Name:       "SHA-224",
	BlockSize:  BlockSize,
	Size:       Size224,
	StateSize:  Size,
	LengthSize: 8,
	Magic:      0x02,
}

// state is the chaining state shared by SHA-256 and SHA-224.
type state struct {
	h     [8]uint32
	is224 bool
}

func (s *state) Params() iterhash.Params {
	if s.is224 {
		return params224
	}
	return params256
}

func (s *state) Init() {
	if s.is224 {
		InitState224(&s.h)
	} else {
		InitState(&s.h)
	}
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

// New returns a new hash.Hash computing the SHA-256 checksum. The
// Hash also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler to marshal and unmarshal the internal
// state of the hash.
func New() hash.Hash {
	return iterhash.New(new(state))
}

// New224 returns a new hash.Hash computing the SHA-224 checksum.
func New224() hash.Hash {
	return iterhash.New(&state{is224: true})
}

// Sum256 returns the SHA-256 checksum of the data.
func Sum256(data []byte) [Size]byte {
	e := iterhash.New(new(state))
	e.Write(data)

	var sum [Size]byte
	e.Sum(sum[:0])
	return sum
}

// Sum224 returns the SHA-224 checksum of the data.
func Sum224(data []byte) [Size224]byte {
	e := iterhash.New(&state{is224: true})
	e.Write(data)

	var sum [Size224]byte
	e.Sum(sum[:0])
	return sum
}

// InitState sets h to the SHA-256 initialization vector.
func InitState(h *[8]uint32) {
	h[0] = init0
	h[1] = init1
	h[2] = init2
	h[3] = init3
	h[4] = init4
	h[5] = init5
	h[6] = init6
	h[7] = init7
}

// InitState224 sets h to the SHA-224 initialization vector.
func InitState224(h *[8]uint32) {
	h[0] = init0_224
	h[1] = init1_224
	h[2] = init2_224
	h[3] = init3_224
	h[4] = init4_224
	h[5] = init5_224
	h[6] = init6_224
	h[7] = init7_224
}

// Transform runs the SHA-256 compression function over one 64-byte
// block, updating the chaining state h in place. SHA-224 uses the
// same function over its own initialization vector. Normal hashing
// should use New or Sum256; Transform is the building block for
// protocols that do their own message scheduling.
func Transform(h *[8]uint32, block *[BlockSize]byte) {
	compress(h, block[:])
}
