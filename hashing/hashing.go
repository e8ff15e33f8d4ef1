// Package hashing fingerprints benchmark buffers so a run can prove that a
// sort only rearranged its input.
package hashing

import "github.com/zeebo/xxh3"

// Encoder appends the canonical byte form of a value to dst.
type Encoder[T any] func(dst []byte, value T) []byte

// Fingerprint summarizes a multiset of values. Two sequences holding the same
// values with the same multiplicities always share a fingerprint, whatever
// their order; sequences that differ produce a different one with
// overwhelming probability.
type Fingerprint struct {
	Count int    `json:"count" yaml:"count"`
	Sum   uint64 `json:"sum"   yaml:"sum"`
	Xor   uint64 `json:"xor"   yaml:"xor"`
}

// Add folds the element encoded by b into the fingerprint.
func (f *Fingerprint) Add(b []byte) {
	h := xxh3.Hash(b)

	f.Count++
	f.Sum += h
	f.Xor ^= h
}

// Equals reports whether both fingerprints describe the same multiset.
func (f Fingerprint) Equals(other Fingerprint) bool {
	return f == other
}

// Of fingerprints every element of seq using encode.
func Of[T any](seq []T, encode Encoder[T]) Fingerprint {
	var (
		fp  Fingerprint
		buf []byte
	)

	for _, v := range seq {
		buf = encode(buf[:0], v)
		fp.Add(buf)
	}

	return fp
}
