// Package bitutil holds the bit scanning and masking primitives shared by the
// bit-packed range representations.
package bitutil

import "math/bits"

// WordBits is the number of bits held by one word.
const WordBits = 64

// Mask returns a word with bits lo through hi (inclusive) set. lo <= hi < 64.
func Mask(lo, hi uint) uint64 {
	return (^uint64(0) >> (WordBits - 1 - hi)) &^ ((uint64(1) << lo) - 1)
}

// NextSet returns the position of the first set bit of w at or after from, or -1.
func NextSet(w uint64, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= WordBits {
		return -1
	}
	m := w >> uint(from)
	if m == 0 {
		return -1
	}
	return from + bits.TrailingZeros64(m)
}

// NextUnset returns the position of the first clear bit of w at or after from, or -1.
func NextUnset(w uint64, from int) int {
	return NextSet(^w, from)
}

// PrevSet returns the position of the last set bit of w at or before from, or -1.
func PrevSet(w uint64, from int) int {
	if from < 0 {
		return -1
	}
	if from >= WordBits {
		from = WordBits - 1
	}
	m := w & Mask(0, uint(from))
	if m == 0 {
		return -1
	}
	return WordBits - 1 - bits.LeadingZeros64(m)
}

// PrevUnset returns the position of the last clear bit of w at or before from, or -1.
func PrevUnset(w uint64, from int) int {
	return PrevSet(^w, from)
}

// WordsFor returns the number of words needed to hold n bits.
func WordsFor(n int) int {
	return (n + WordBits - 1) / WordBits
}

// NextSetIn scans the first n bits of words for a set bit at or after from.
func NextSetIn(words []uint64, from, n int) int {
	return nextIn(words, from, n, false)
}

// NextUnsetIn scans the first n bits of words for a clear bit at or after from.
func NextUnsetIn(words []uint64, from, n int) int {
	return nextIn(words, from, n, true)
}

func nextIn(words []uint64, from, n int, invert bool) int {
	if from < 0 {
		from = 0
	}
	if from >= n {
		return -1
	}
	i := from / WordBits
	off := from % WordBits
	for ; i < len(words); i++ {
		w := words[i]
		if invert {
			w = ^w
		}
		if p := NextSet(w, off); p >= 0 {
			if pos := i*WordBits + p; pos < n {
				return pos
			}
			return -1
		}
		off = 0
	}
	return -1
}

// PrevSetIn scans words backwards for a set bit at or before from.
func PrevSetIn(words []uint64, from int) int {
	return prevIn(words, from, false)
}

// PrevUnsetIn scans words backwards for a clear bit at or before from.
func PrevUnsetIn(words []uint64, from int) int {
	return prevIn(words, from, true)
}

func prevIn(words []uint64, from int, invert bool) int {
	if from < 0 {
		return -1
	}
	i := from / WordBits
	off := from % WordBits
	if i >= len(words) {
		i = len(words) - 1
		off = WordBits - 1
	}
	for ; i >= 0; i-- {
		w := words[i]
		if invert {
			w = ^w
		}
		if p := PrevSet(w, off); p >= 0 {
			return i*WordBits + p
		}
		off = WordBits - 1
	}
	return -1
}

// SetRange sets bits lo through hi (inclusive).
func SetRange(words []uint64, lo, hi int) {
	fill(words, lo, hi, true)
}

// ClearRange clears bits lo through hi (inclusive).
func ClearRange(words []uint64, lo, hi int) {
	fill(words, lo, hi, false)
}

func fill(words []uint64, lo, hi int, set bool) {
	apply := func(i int, m uint64) {
		if set {
			words[i] |= m
		} else {
			words[i] &^= m
		}
	}
	wl, wh := lo/WordBits, hi/WordBits
	if wl == wh {
		apply(wl, Mask(uint(lo%WordBits), uint(hi%WordBits)))
		return
	}
	apply(wl, Mask(uint(lo%WordBits), WordBits-1))
	for i := wl + 1; i < wh; i++ {
		if set {
			words[i] = ^uint64(0)
		} else {
			words[i] = 0
		}
	}
	apply(wh, Mask(0, uint(hi%WordBits)))
}

// AllSet reports whether every bit lo through hi (inclusive) is set.
func AllSet(words []uint64, lo, hi int) bool {
	return NextUnsetIn(words, lo, hi+1) < 0
}

// Count returns the number of set bits.
func Count(words []uint64) int {
	n := 0
	for _, w := range words {
		n += bits.OnesCount64(w)
	}
	return n
}
