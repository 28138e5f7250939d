//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package iterhash

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// stub is a toy transform with an order-sensitive block mix. It lets
// the tests observe the exact byte stream the engine compresses.
type stub struct {
	p    Params
	s0   uint64
	s1   uint64
	step int // max blocks consumed per Blocks call, 0 for all
}

func newStub(step int) *stub {
	return &stub{
		p: Params{
			Name:       "STUB-96",
			BlockSize:  16,
			Size:       12,
			StateSize:  16,
			LengthSize: 8,
			Magic:      0x7f,
		},
		step: step,
	}
}

func (s *stub) Params() Params {
	return s.p
}

func (s *stub) Init() {
	s.s0 = 0x0123456789abcdef
	s.s1 = 0xfedcba9876543210
}

func (s *stub) Blocks(p []byte) int {
	bs := s.p.BlockSize
	n := len(p) - len(p)%bs
	if s.step > 0 && n > s.step*bs {
		n = s.step * bs
	}
	for q := p[:n]; len(q) > 0; q = q[bs:] {
		for i := 0; i < bs; i += 8 {
			s.s0 = s.s0*0x100000001b3 ^ binary.BigEndian.Uint64(q[i:])
			s.s0, s.s1 = s.s1, s.s0^s.s1
		}
	}
	return n
}

func (s *stub) AppendState(dst []byte) []byte {
	return AppendWords64(dst, []uint64{s.s0, s.s1})
}

func (s *stub) SetState(src []byte) {
	var ws [2]uint64
	DecodeWords64(ws[:], src)
	s.s0, s.s1 = ws[0], ws[1]
}

func (s *stub) Clone() Transform {
	c := *s
	return &c
}

// pad appends the standard trailer to msg: 0x80, zeros, and the
// big-endian bit count in the final lengthSize bytes of a block.
func pad(msg []byte, blockSize, lengthSize int) []byte {
	l := uint64(len(msg))
	out := append([]byte{}, msg...)
	out = append(out, 0x80)
	for len(out)%blockSize != blockSize-lengthSize {
		out = append(out, 0)
	}
	if lengthSize == 16 {
		out = binary.BigEndian.AppendUint64(out, l>>61)
	}
	return binary.BigEndian.AppendUint64(out, l<<3)
}

// message returns n bytes of deterministic test data.
func message(n int) []byte {
	msg := make([]byte, n)
	for i := range msg {
		msg[i] = byte(i*7 + 1)
	}
	return msg
}

// expected computes the digest of msg by folding the explicitly
// padded stream through a fresh stub.
func expected(t *testing.T, msg []byte) []byte {
	t.Helper()

	s := newStub(0)
	s.Init()
	stream := pad(msg, s.p.BlockSize, s.p.LengthSize)
	if n := s.Blocks(stream); n != len(stream) {
		t.Fatalf("padded stream not a multiple of blocks: %d", n)
	}
	return s.AppendState(nil)[:s.p.Size]
}

func TestPadding(t *testing.T) {
	for n := 0; n <= 64; n++ {
		msg := message(n)

		e := New(newStub(0))
		e.Write(msg)
		got := e.Sum(nil)

		if !bytes.Equal(got, expected(t, msg)) {
			t.Errorf("length %d: bad digest", n)
		}
		if len(got) != e.Size() {
			t.Errorf("length %d: digest size %d, expected %d",
				n, len(got), e.Size())
		}
	}
}

func TestSplits(t *testing.T) {
	msg := message(53)
	want := expected(t, msg)

	for i := 0; i <= len(msg); i++ {
		e := New(newStub(0))
		e.Write(msg[:i])
		e.Write(msg[i:])
		if !bytes.Equal(e.Sum(nil), want) {
			t.Errorf("split %d: bad digest", i)
		}
	}
}

// TestPartialConsumption verifies that the engine re-offers blocks a
// transform did not take on the first call.
func TestPartialConsumption(t *testing.T) {
	msg := message(153)
	want := expected(t, msg)

	for step := 1; step <= 3; step++ {
		e := New(newStub(step))
		e.Write(msg)
		if !bytes.Equal(e.Sum(nil), want) {
			t.Errorf("step %d: bad digest", step)
		}
	}
}

// broken consumes a non-multiple of the block size.
type broken struct {
	stub
}

func (b *broken) Blocks(p []byte) int {
	if len(p) >= 3 {
		return 3
	}
	return len(p)
}

func TestBlocksContract(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("engine accepted a partial block consumption")
		}
	}()

	b := &broken{stub: *newStub(0)}
	e := New(b)
	e.Write(message(64))
}

func TestSumThenWrite(t *testing.T) {
	msg := message(100)

	e := New(newStub(0))
	e.Write(msg[:60])

	first := e.Sum(nil)
	if !bytes.Equal(first, e.Sum(nil)) {
		t.Fatalf("Sum changed the state")
	}
	if !bytes.Equal(first, expected(t, msg[:60])) {
		t.Fatalf("bad digest for the first part")
	}

	// Sum did not finalize the stream; more writes continue the
	// same message.
	e.Write(msg[60:])
	if !bytes.Equal(e.Sum(nil), expected(t, msg)) {
		t.Fatalf("bad digest after Sum and Write")
	}

	e.Reset()
	if !bytes.Equal(e.Sum(nil), expected(t, nil)) {
		t.Fatalf("bad digest after Reset")
	}
}

func TestSumAppends(t *testing.T) {
	e := New(newStub(0))
	e.Write(message(10))

	prefix := []byte("prefix")
	out := e.Sum(prefix)
	if !bytes.Equal(out[:len(prefix)], prefix) {
		t.Fatalf("Sum overwrote its argument")
	}
	if !bytes.Equal(out[len(prefix):], e.Sum(nil)) {
		t.Fatalf("appended digest differs")
	}
}

func TestMarshal(t *testing.T) {
	msg := message(200)

	for _, cut := range []int{0, 1, 15, 16, 17, 100, 200} {
		e := New(newStub(0))
		e.Write(msg[:cut])

		state, err := e.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary: %v", err)
		}

		r := New(newStub(0))
		if err := r.UnmarshalBinary(state); err != nil {
			t.Fatalf("UnmarshalBinary: %v", err)
		}
		r.Write(msg[cut:])

		if !bytes.Equal(r.Sum(nil), expected(t, msg)) {
			t.Errorf("cut %d: bad digest after restore", cut)
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	e := New(newStub(0))
	e.Write(message(20))
	state, err := e.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	r := New(newStub(0))
	if err := r.UnmarshalBinary(state[:len(state)-1]); err == nil {
		t.Errorf("truncated state accepted")
	}

	bad := append([]byte{}, state...)
	bad[len(magic)] ^= 0xff
	if err := r.UnmarshalBinary(bad); err == nil {
		t.Errorf("foreign magic accepted")
	}
	if err := r.UnmarshalBinary(nil); err == nil {
		t.Errorf("empty state accepted")
	}
}

// wide is the stub geometry of the 64-bit algorithms: 32-byte blocks
// with a 16-byte length trailer.
func newWide() *stub {
	return &stub{
		p: Params{
			Name:       "STUB-WIDE",
			BlockSize:  32,
			Size:       16,
			StateSize:  16,
			LengthSize: 16,
			Magic:      0x7e,
		},
	}
}

func TestWideTrailer(t *testing.T) {
	for n := 0; n <= 100; n++ {
		msg := message(n)

		e := New(newWide())
		e.Write(msg)
		got := e.Sum(nil)

		s := newWide()
		s.Init()
		stream := pad(msg, s.p.BlockSize, s.p.LengthSize)
		if len(stream)%s.p.BlockSize != 0 {
			t.Fatalf("length %d: bad padded length %d", n, len(stream))
		}
		s.Blocks(stream)
		want := s.AppendState(nil)[:s.p.Size]

		if !bytes.Equal(got, want) {
			t.Errorf("length %d: bad digest", n)
		}
	}
}
