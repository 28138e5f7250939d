//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build !amd64 && !arm64

package sha1

func hashBlocks(h *[5]uint32, p []byte) int {
	return blocksGeneric(h, p)
}
