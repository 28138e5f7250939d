//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package shs implements the FIPS 180-4 Secure Hash Standard
// algorithms SHA-1, SHA-224, SHA-256, SHA-384, and SHA-512. The
// algorithm packages sha1, sha256, and sha512 implement the digests
// themselves; this package provides the algorithm registry for
// callers that select the algorithm at runtime.
package shs

import (
	"fmt"
	"hash"
	"strings"

	"github.com/markkurossi/shs/sha1"
	"github.com/markkurossi/shs/sha256"
	"github.com/markkurossi/shs/sha512"
)

// Algorithm identifies a hash algorithm.
type Algorithm int

// Hash algorithms.
const (
	SHA1 Algorithm = iota + 1
	SHA224
	SHA256
	SHA384
	SHA512
)

// Names maps algorithm names to algorithms.
var Names = map[string]Algorithm{
	"SHA-1":   SHA1,
	"SHA-224": SHA224,
	"SHA-256": SHA256,
	"SHA-384": SHA384,
	"SHA-512": SHA512,
}

var algorithms = []Algorithm{SHA1, SHA224, SHA256, SHA384, SHA512}

func (a Algorithm) String() string {
	for k, v := range Names {
		if v == a {
			return k
		}
	}
	return fmt.Sprintf("{Algorithm %d}", int(a))
}

// Size returns the digest size of the algorithm in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA1:
		return sha1.Size
	case SHA224:
		return sha256.Size224
	case SHA256:
		return sha256.Size
	case SHA384:
		return sha512.Size384
	case SHA512:
		return sha512.Size
	default:
		panic("shs: unknown algorithm " + a.String())
	}
}

// BlockSize returns the block size of the algorithm in bytes.
func (a Algorithm) BlockSize() int {
	switch a {
	case SHA1:
		return sha1.BlockSize
	case SHA224, SHA256:
		return sha256.BlockSize
	case SHA384, SHA512:
		return sha512.BlockSize
	default:
		panic("shs: unknown algorithm " + a.String())
	}
}

// New creates a new hash.Hash computing the algorithm checksum.
func (a Algorithm) New() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New()
	case SHA224:
		return sha256.New224()
	case SHA256:
		return sha256.New()
	case SHA384:
		return sha512.New384()
	case SHA512:
		return sha512.New()
	default:
		panic("shs: unknown algorithm " + a.String())
	}
}

// Sum returns the algorithm checksum of the data.
func (a Algorithm) Sum(data []byte) []byte {
	h := a.New()
	h.Write(data)
	return h.Sum(nil)
}

// Algorithms returns the supported algorithms in identifier order.
func Algorithms() []Algorithm {
	return append([]Algorithm{}, algorithms...)
}

// FromString returns the algorithm by name. The comparison ignores
// case and dashes so "sha256", "SHA256", and "SHA-256" all name the
// same algorithm.
func FromString(name string) (Algorithm, error) {
	for k, v := range Names {
		if normalize(k) == normalize(name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("shs: unknown algorithm %q", name)
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "")
}
