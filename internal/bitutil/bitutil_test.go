package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	testCases := []struct {
		name     string
		lo, hi   uint
		expected uint64
	}{
		{"single low bit", 0, 0, 0x1},
		{"single high bit", 63, 63, 1 << 63},
		{"low nibble", 0, 3, 0xf},
		{"middle", 4, 7, 0xf0},
		{"full word", 0, 63, ^uint64(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Mask(tc.lo, tc.hi))
		})
	}
}

func TestWordScan(t *testing.T) {
	w := uint64(0b0111_0010)

	assert.Equal(t, 1, NextSet(w, 0))
	assert.Equal(t, 4, NextSet(w, 2))
	assert.Equal(t, -1, NextSet(w, 7))
	assert.Equal(t, -1, NextSet(w, 64))

	assert.Equal(t, 0, NextUnset(w, 0))
	assert.Equal(t, 2, NextUnset(w, 1))
	assert.Equal(t, 7, NextUnset(w, 4))
	assert.Equal(t, -1, NextUnset(^uint64(0), 0))

	assert.Equal(t, 6, PrevSet(w, 63))
	assert.Equal(t, 1, PrevSet(w, 3))
	assert.Equal(t, -1, PrevSet(w, 0))
	assert.Equal(t, -1, PrevSet(w, -1))

	assert.Equal(t, 3, PrevUnset(w, 6))
	assert.Equal(t, 0, PrevUnset(w, 1))
	assert.Equal(t, -1, PrevUnset(^uint64(0), 63))
}

func TestSliceScan(t *testing.T) {
	// 130 bits: set 62..66 and 128..129.
	n := 130
	words := make([]uint64, WordsFor(n))
	SetRange(words, 62, 66)
	SetRange(words, 128, 129)

	assert.Equal(t, 3, len(words))
	assert.Equal(t, 62, NextSetIn(words, 0, n))
	assert.Equal(t, 67, NextUnsetIn(words, 62, n))
	assert.Equal(t, 128, NextSetIn(words, 67, n))
	assert.Equal(t, -1, NextUnsetIn(words, 128, n))
	assert.Equal(t, -1, NextSetIn(words, 130, n))

	assert.Equal(t, 66, PrevSetIn(words, 127))
	assert.Equal(t, 61, PrevUnsetIn(words, 66))
	assert.Equal(t, -1, PrevSetIn(words, 61))
	assert.Equal(t, 129, PrevSetIn(words, 500))

	assert.Equal(t, 7, Count(words))
	assert.True(t, AllSet(words, 62, 66))
	assert.False(t, AllSet(words, 61, 66))

	ClearRange(words, 63, 128)
	assert.Equal(t, 2, Count(words))
	assert.Equal(t, 62, NextSetIn(words, 0, n))
	assert.Equal(t, 129, NextSetIn(words, 63, n))
}

func TestFillSingleWord(t *testing.T) {
	words := make([]uint64, 1)
	SetRange(words, 3, 5)
	assert.Equal(t, uint64(0b111000), words[0])
	ClearRange(words, 4, 4)
	assert.Equal(t, uint64(0b101000), words[0])
}

func FuzzScanMatchesNaive(f *testing.F) {
	f.Add(uint64(0), 0)
	f.Add(^uint64(0), 63)
	f.Add(uint64(0xf0f0), 9)

	f.Fuzz(func(t *testing.T, w uint64, from int) {
		if from < 0 || from > 63 {
			t.Skip()
		}
		naiveNext := -1
		for i := from; i < 64; i++ {
			if w&(1<<uint(i)) != 0 {
				naiveNext = i
				break
			}
		}
		naivePrev := -1
		for i := from; i >= 0; i-- {
			if w&(1<<uint(i)) != 0 {
				naivePrev = i
				break
			}
		}
		assert.Equal(t, naiveNext, NextSet(w, from))
		assert.Equal(t, naivePrev, PrevSet(w, from))
	})
}
