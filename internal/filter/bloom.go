package filter

import (
	"github.com/twmb/murmur3"

	"membuf/pkg/utils"
)

const (
	// DefaultBitsPerKey gives roughly a 1% false positive rate.
	DefaultBitsPerKey = 10

	minBits = 64
	maxK    = 30
)

// Bloom is a fixed-size bloom filter over integer keys. It is not safe
// for concurrent use on its own; callers hold their own lock.
type Bloom struct {
	bits []uint64
	m    uint64
	k    int
	keys int
}

// NewBloom sizes a filter for the expected number of keys. bitsPerKey
// values below 1 fall back to DefaultBitsPerKey.
func NewBloom(expectedKeys, bitsPerKey int) *Bloom {
	if bitsPerKey < 1 {
		bitsPerKey = DefaultBitsPerKey
	}

	nBits := expectedKeys * bitsPerKey
	if nBits < minBits {
		nBits = minBits
	}
	nWords := (nBits + 63) / 64

	// k = bitsPerKey * ln(2), clamped to a sane probe count.
	k := int(float64(bitsPerKey) * 0.69)
	if k < 1 {
		k = 1
	}
	if k > maxK {
		k = maxK
	}

	return &Bloom{
		bits: make([]uint64, nWords),
		m:    uint64(nWords) * 64,
		k:    k,
	}
}

// Add records a key.
func (b *Bloom) Add(key int64) {
	h1, h2 := murmur3.Sum128(utils.KeyBytes(key))
	for i := 0; i < b.k; i++ {
		pos := (h1 + uint64(i)*h2) % b.m
		b.bits[pos/64] |= 1 << (pos % 64)
	}
	b.keys++
}

// MayContain reports whether the key might have been added. False
// means definitely absent.
func (b *Bloom) MayContain(key int64) bool {
	h1, h2 := murmur3.Sum128(utils.KeyBytes(key))
	for i := 0; i < b.k; i++ {
		pos := (h1 + uint64(i)*h2) % b.m
		if b.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

// Reset clears all recorded keys.
func (b *Bloom) Reset() {
	for i := range b.bits {
		b.bits[i] = 0
	}
	b.keys = 0
}

// KeyCount returns the number of Add calls since the last Reset.
func (b *Bloom) KeyCount() int {
	return b.keys
}
