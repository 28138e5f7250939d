//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"bytes"
	stdsha1 "crypto/sha1"
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"math/rand"
	"testing"
)

var vectors = []struct {
	in  string
	out string
}{
	{
		in:  "",
		out: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	},
	{
		in:  "abc",
		out: "a9993e364706816aba3e25717850c26c9cd0d89d",
	},
	{
		in:  "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		out: "84983e441c3bd26ebaae4aa1f95129e5e54670f1",
	},
}

func TestVectors(t *testing.T) {
	for _, v := range vectors {
		sum := Sum([]byte(v.in))
		if got := hex.EncodeToString(sum[:]); got != v.out {
			t.Errorf("Sum(%q)=%s, expected %s", v.in, got, v.out)
		}

		h := New()
		h.Write([]byte(v.in))
		if got := hex.EncodeToString(h.Sum(nil)); got != v.out {
			t.Errorf("New(%q)=%s, expected %s", v.in, got, v.out)
		}
	}
}

func TestMillionA(t *testing.T) {
	const expected = "34aa973cd4c4daa4f61eeb2bdbad27316534016f"

	h := New()
	chunk := bytes.Repeat([]byte("a"), 997)
	n := 1000000
	for n > 0 {
		if n < len(chunk) {
			chunk = chunk[:n]
		}
		h.Write(chunk)
		n -= len(chunk)
	}
	if got := hex.EncodeToString(h.Sum(nil)); got != expected {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

func TestVsStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, 65537)
	rng.Read(data)

	lengths := []int{
		4096, 10000, 65536, 65537,
	}
	for n := 0; n <= 1024; n++ {
		lengths = append(lengths, n)
	}

	for _, n := range lengths {
		if got, want := Sum(data[:n]), stdsha1.Sum(data[:n]); got != want {
			t.Errorf("length %d: got %x, expected %x", n, got, want)
		}
	}
}

func TestChunkedWrites(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := make([]byte, 10000)
	rng.Read(data)

	want := stdsha1.Sum(data)

	for _, chunk := range []int{1, 3, 7, 63, 64, 65, 997} {
		h := New()
		for i := 0; i < len(data); i += chunk {
			end := i + chunk
			if end > len(data) {
				end = len(data)
			}
			h.Write(data[i:end])
		}
		if !bytes.Equal(h.Sum(nil), want[:]) {
			t.Errorf("chunk %d: bad digest", chunk)
		}
	}
}

func TestKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for blocks := 0; blocks <= 17; blocks++ {
		data := make([]byte, blocks*BlockSize+13)
		rng.Read(data)

		var hg [5]uint32
		for i := range hg {
			hg[i] = rng.Uint32()
		}
		hb := hg
		hh := hg

		ng := blocksGeneric(&hg, data)
		nb := blocksBatch(&hb, data)
		nh := hashBlocks(&hh, data)

		if ng != blocks*BlockSize || nb != ng || nh != ng {
			t.Fatalf("blocks %d: consumed %d/%d/%d, expected %d",
				blocks, ng, nb, nh, blocks*BlockSize)
		}
		if hg != hb {
			t.Errorf("blocks %d: batch kernel state differs", blocks)
		}
		if hg != hh {
			t.Errorf("blocks %d: bound kernel state differs", blocks)
		}
	}
}

// singleBlock pads a message shorter than 56 bytes into one block.
func singleBlock(msg string) [BlockSize]byte {
	var block [BlockSize]byte
	copy(block[:], msg)
	block[len(msg)] = 0x80
	binary.BigEndian.PutUint16(block[BlockSize-2:], uint16(len(msg)*8))
	return block
}

func TestTransform(t *testing.T) {
	for _, v := range vectors {
		if len(v.in) >= 56 {
			continue
		}

		var h [5]uint32
		InitState(&h)

		block := singleBlock(v.in)
		Transform(&h, &block)

		if got, sum := digestBytes(h), Sum([]byte(v.in)); got != sum {
			t.Errorf("Transform(%q)=%x, expected %x", v.in, got, sum)
		}
	}
}

func digestBytes(h [5]uint32) [Size]byte {
	var d [Size]byte
	for i, w := range h {
		binary.BigEndian.PutUint32(d[i*4:], w)
	}
	return d
}

func TestMarshalBinary(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := make([]byte, 557)
	rng.Read(data)

	h := New()
	h.Write(data[:200])

	state, err := h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	h2 := New()
	if err := h2.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	h.Write(data[200:])
	h2.Write(data[200:])

	want := stdsha1.Sum(data)
	if !bytes.Equal(h.Sum(nil), want[:]) {
		t.Errorf("bad digest after marshal")
	}
	if !bytes.Equal(h2.Sum(nil), want[:]) {
		t.Errorf("bad digest after unmarshal")
	}

	state[3] ^= 0xff
	if err := h2.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err == nil {
		t.Errorf("corrupted state accepted")
	}
}

func BenchmarkWrite8K(b *testing.B) {
	buf := make([]byte, 8192)
	h := New()
	b.SetBytes(int64(len(buf)))
	for b.Loop() {
		h.Write(buf)
	}
}

func BenchmarkSum(b *testing.B) {
	buf := make([]byte, 8192)
	b.SetBytes(int64(len(buf)))
	for b.Loop() {
		Sum(buf)
	}
}

func BenchmarkKernelGeneric(b *testing.B) {
	buf := make([]byte, 64*BlockSize)
	var h [5]uint32
	InitState(&h)
	b.SetBytes(int64(len(buf)))
	for b.Loop() {
		blocksGeneric(&h, buf)
	}
}

func BenchmarkKernelBatch(b *testing.B) {
	buf := make([]byte, 64*BlockSize)
	var h [5]uint32
	InitState(&h)
	b.SetBytes(int64(len(buf)))
	for b.Loop() {
		blocksBatch(&h, buf)
	}
}
