//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build amd64 || arm64

package sha256

func hashBlocks(h *[8]uint32, p []byte) int {
	return blocksBatch(h, p)
}
