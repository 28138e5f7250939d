//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package iterhash

import (
	"encoding/binary"
)

// The FIPS 180-4 algorithms interpret byte sequences as big-endian
// words. These helpers convert between the two representations for
// both word widths.

// AppendWords32 appends the big-endian encoding of the 32-bit words
// ws to dst and returns the extended buffer.
func AppendWords32(dst []byte, ws []uint32) []byte {
	for _, w := range ws {
		dst = binary.BigEndian.AppendUint32(dst, w)
	}
	return dst
}

// AppendWords64 appends the big-endian encoding of the 64-bit words
// ws to dst and returns the extended buffer.
func AppendWords64(dst []byte, ws []uint64) []byte {
	for _, w := range ws {
		dst = binary.BigEndian.AppendUint64(dst, w)
	}
	return dst
}

// DecodeWords32 decodes len(ws) big-endian 32-bit words from src
// into ws.
func DecodeWords32(ws []uint32, src []byte) {
	for i := range ws {
		ws[i] = binary.BigEndian.Uint32(src[i*4:])
	}
}

// DecodeWords64 decodes len(ws) big-endian 64-bit words from src
// into ws.
func DecodeWords64(ws []uint64, src []byte) {
	for i := range ws {
		ws[i] = binary.BigEndian.Uint64(src[i*8:])
	}
}
