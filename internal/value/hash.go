package value

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// hashKey is the process-wide secret seeded once by Init, per spec.md §5
// "Process-wide initialization state". Hashing is representation-
// independent: a flat string and a rope with the same bytes hash the same,
// because both are walked chunk-by-chunk through the same FNV-1a-with-key
// accumulator.
var (
	hashKeyOnce sync.Once
	hashKey     uint64
)

// Init seeds the hashing key. Spec.md §5 requires this be called exactly
// once before any value construction that relies on hashing; subsequent
// calls are no-ops (sync.Once), matching "the init must be called exactly
// once" as a safety net rather than a hard requirement.
func Init() {
	hashKeyOnce.Do(func() {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand failing is catastrophic for the process; fall
			// back to a fixed key rather than hashing with an
			// uninitialized (zero) one, which would be a silent
			// correctness bug rather than a loud one.
			hashKey = 0x9e3779b97f4a7c15
			return
		}
		hashKey = binary.LittleEndian.Uint64(buf[:])
	})
}

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// HashStr computes a deterministic hash of s's byte sequence, independent
// of whether s is inline, flat, or a rope (spec.md §4.1 "Hashing").
func HashStr(s Str) uint64 {
	h := uint64(fnvOffset) ^ hashKey
	it := StringChunkIterator(s)
	for {
		chunk, ok := IterateStringChunk(it)
		if !ok {
			break
		}
		for _, c := range chunk {
			h ^= uint64(c)
			h *= fnvPrime
		}
	}
	return h
}
