//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build !amd64 && !arm64

package sha512

func hashBlocks(h *[8]uint64, p []byte) int {
	return blocksGeneric(h, p)
}
