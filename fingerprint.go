// File fingerprints.
//
// A fingerprint is a 64-bit digest of a document's full content, taken once
// when the first bookmark for that document is created. It only needs good
// distribution for change detection; it is not an integrity check.
package bookmarks

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// HashSeed is the fixed seed mixed into every fingerprint. Changing it
// invalidates every stored file_hash.
const HashSeed uint64 = 1337

// Fingerprint algorithm constants.
const (
	AlgXXHash3  = 1 // Fastest
	AlgFNV1a    = 2 // No external dependencies
	AlgBlake2b  = 3 // Best distribution
	AlgXXHash64 = 4 // Default, the function behind unlabelled store files
)

// Fingerprint digests data with the default algorithm.
func Fingerprint(data []byte) uint64 {
	sum, _ := fingerprint(data, AlgXXHash64)
	return sum
}

// FingerprintFile reads the file at path and digests its content with alg.
func FingerprintFile(path string, alg int) (uint64, error) {
	if !validAlgorithm(alg) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, alg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: fingerprint: %w", ErrIO, err)
	}
	return fingerprint(data, alg)
}

func fingerprint(data []byte, alg int) (uint64, error) {
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], HashSeed)

	switch alg {
	case AlgXXHash3:
		return xxh3.HashSeed(data, HashSeed), nil
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(seed[:])
		h.Write(data)
		return h.Sum64(), nil
	case AlgBlake2b:
		h, _ := blake2b.New(8, seed[:]) // 8 bytes = 64 bits, seed as key
		h.Write(data)
		return binary.BigEndian.Uint64(h.Sum(nil)), nil
	case AlgXXHash64:
		h := xxhash.NewWithSeed(HashSeed)
		h.Write(data)
		return h.Sum64(), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, alg)
	}
}

func validAlgorithm(alg int) bool {
	return alg >= AlgXXHash3 && alg <= AlgXXHash64
}
