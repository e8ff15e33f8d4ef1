package hashing

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeUint32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

func TestOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  []uint32
		right []uint32
		equal bool
	}{
		{name: "both empty", left: nil, right: []uint32{}, equal: true},
		{name: "same order", left: []uint32{1, 2, 3}, right: []uint32{1, 2, 3}, equal: true},
		{name: "permuted", left: []uint32{3, 1, 2, 2}, right: []uint32{2, 1, 2, 3}, equal: true},
		{name: "different values", left: []uint32{1, 2, 3}, right: []uint32{1, 2, 4}, equal: false},
		{name: "different multiplicity", left: []uint32{1, 1, 2}, right: []uint32{1, 2, 2}, equal: false},
		{name: "paired duplicates", left: []uint32{7, 7}, right: []uint32{9, 9}, equal: false},
		{name: "different length", left: []uint32{5}, right: []uint32{5, 5}, equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			left := Of(tt.left, encodeUint32)
			right := Of(tt.right, encodeUint32)

			assert.Equal(t, tt.equal, left.Equals(right))
			assert.Equal(t, len(tt.left), left.Count)
		})
	}
}

func TestFingerprint_Add(t *testing.T) {
	t.Parallel()

	var fp Fingerprint

	fp.Add([]byte("a"))
	fp.Add([]byte("a"))

	assert.Equal(t, 2, fp.Count)
	assert.Zero(t, fp.Xor)
	assert.NotZero(t, fp.Sum)
}
