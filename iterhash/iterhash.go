//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package iterhash implements the iterated hash construction shared by
// the FIPS 180-4 algorithms: block buffering, message length counting,
// and the 0x80 plus big-endian bit count padding. The algorithm
// specific compression function is plugged in as a Transform and the
// Engine drives it block by block, so the per-algorithm packages only
// provide the chaining state and the block kernels.
package iterhash

import (
	"encoding/binary"
	"fmt"
	"hash"
)

// Params describes the fixed geometry of one hash algorithm.
type Params struct {
	// Name is the algorithm name, for example "SHA-256".
	Name string

	// BlockSize is the input block size in bytes.
	BlockSize int

	// Size is the digest size in bytes.
	Size int

	// StateSize is the encoded chaining state size in bytes. It is
	// equal to Size except for the truncated variants, which carry
	// the full state of their wide sibling.
	StateSize int

	// LengthSize is the size of the message length trailer in bytes,
	// 8 for the 32-bit algorithms and 16 for the 64-bit ones.
	LengthSize int

	// Magic tags serialized hash states.
	Magic byte
}

// Transform is the compression core of one algorithm. Its methods
// operate on the chaining state only; buffering, length counting and
// padding belong to the Engine.
type Transform interface {
	// Params returns the algorithm geometry. The result must not
	// change over the lifetime of the transform.
	Params() Params

	// Init loads the initialization vector into the chaining state.
	Init()

	// Blocks compresses whole blocks from p into the chaining state
	// and returns the number of bytes consumed. The result is a
	// multiple of the block size. A transform may consume fewer
	// blocks than offered but it must consume at least one whole
	// block whenever p contains one.
	Blocks(p []byte) int

	// AppendState appends the big-endian encoding of the full
	// chaining state to dst and returns the extended buffer.
	AppendState(dst []byte) []byte

	// SetState replaces the chaining state with the big-endian
	// encoded state in src. len(src) is Params().StateSize.
	SetState(src []byte)

	// Clone returns an independent copy of the transform.
	Clone() Transform
}

// Engine computes an iterated hash over a Transform. It implements
// hash.Hash and the encoding.BinaryMarshaler and BinaryUnmarshaler
// interfaces for resumable hashing.
//
// The message length is tracked as a 64-bit byte count, so the total
// input must stay below 2^64 bytes. Sum does not change the state:
// writes after Sum continue the same message and Reset starts a new
// one.
type Engine struct {
	t   Transform
	p   Params
	x   []byte
	nx  int
	len uint64
}

var (
	_ hash.Hash = &Engine{}
)

// New creates a hash engine computing the checksum defined by the
// transform t.
func New(t Transform) *Engine {
	e := &Engine{
		t: t,
		p: t.Params(),
	}
	e.x = make([]byte, e.p.BlockSize)
	e.Reset()
	return e
}

// Size returns the digest size in bytes.
func (e *Engine) Size() int {
	return e.p.Size
}

// BlockSize returns the block size of the algorithm in bytes.
func (e *Engine) BlockSize() int {
	return e.p.BlockSize
}

// Reset resets the engine to the initialization vector, discarding
// any buffered input.
func (e *Engine) Reset() {
	e.t.Init()
	e.nx = 0
	e.len = 0
}

// Write adds more data to the running hash. It never returns an
// error.
func (e *Engine) Write(p []byte) (nn int, err error) {
	nn = len(p)
	e.len += uint64(nn)
	if e.nx > 0 {
		n := copy(e.x[e.nx:], p)
		e.nx += n
		if e.nx == e.p.BlockSize {
			e.consume(e.x)
			e.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= e.p.BlockSize {
		n := len(p) - len(p)%e.p.BlockSize
		e.consume(p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		e.nx = copy(e.x, p)
	}
	return
}

// consume runs the whole blocks of p through the transform,
// re-offering any blocks the transform did not take. len(p) is a
// multiple of the block size.
func (e *Engine) consume(p []byte) {
	for len(p) > 0 {
		n := e.t.Blocks(p)
		if n <= 0 || n%e.p.BlockSize != 0 {
			panic(fmt.Sprintf("iterhash: %s: Blocks consumed %d of %d",
				e.p.Name, n, len(p)))
		}
		p = p[n:]
	}
}

// Sum appends the current hash to in and returns the resulting slice.
// It does not change the underlying hash state.
func (e *Engine) Sum(in []byte) []byte {
	d := e.clone()
	d.finish()

	// The truncated variants encode more state than they reveal.
	var tmp [64]byte
	state := d.t.AppendState(tmp[:0])
	return append(in, state[:d.p.Size]...)
}

func (e *Engine) clone() *Engine {
	d := &Engine{
		t:   e.t.Clone(),
		p:   e.p,
		nx:  e.nx,
		len: e.len,
	}
	d.x = make([]byte, len(e.x))
	copy(d.x, e.x)
	return d
}

// finish pads the message and compresses the final block(s). The
// trailer is a single 0x80 byte, zeros up to LengthSize bytes before
// a block boundary, and the message length in bits as a big-endian
// LengthSize-byte integer.
func (e *Engine) finish() {
	l := e.len

	var tmp [144]byte
	tmp[0] = 0x80

	edge := e.p.BlockSize - e.p.LengthSize
	rem := int(l % uint64(e.p.BlockSize))
	var pad int
	if rem < edge {
		pad = edge - rem
	} else {
		pad = e.p.BlockSize + edge - rem
	}

	trailer := tmp[:pad+e.p.LengthSize]
	if e.p.LengthSize == 16 {
		binary.BigEndian.PutUint64(trailer[pad:], l>>61)
		binary.BigEndian.PutUint64(trailer[pad+8:], l<<3)
	} else {
		binary.BigEndian.PutUint64(trailer[pad:], l<<3)
	}
	e.Write(trailer)

	if e.nx != 0 {
		panic("iterhash: " + e.p.Name + ": padding left a partial block")
	}
}
