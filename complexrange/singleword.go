package complexrange

import (
	"fmt"
	"iter"
	"math"
	"math/bits"

	"github.com/garethgeorge/rangeshift/internal/bitutil"
)

// SingleWord is a complex range over the 64 values starting at limitStart,
// held in one machine word. Every edit is a constant number of bit operations.
type SingleWord struct {
	limitStart Int
	word       uint64
}

var (
	_ Range[Int] = SingleWord{}
	_ bitStore   = SingleWord{}
)

// NewSingleWord returns an empty range over [limitStart, limitStart+63]. The
// upper limit must not exceed math.MaxInt64.
func NewSingleWord(limitStart Int) (SingleWord, error) {
	if limitStart > math.MaxInt64-(bitutil.WordBits-1) {
		return SingleWord{}, fmt.Errorf("single word limit start %d: %w", limitStart, ErrOutOfBounds)
	}
	return SingleWord{limitStart: limitStart}, nil
}

// Limits returns the inclusive domain bounds.
func (s SingleWord) Limits() (Int, Int) {
	return s.limitStart, s.limitEnd()
}

// Word returns the raw bits; bit i stands for limitStart+i.
func (s SingleWord) Word() uint64 {
	return s.word
}

func (s SingleWord) limitEnd() Int { return s.limitStart + bitutil.WordBits - 1 }

func (s SingleWord) origin() Int { return s.limitStart }
func (s SingleWord) width() int  { return bitutil.WordBits }

func (s SingleWord) nextSet(from int) int   { return bitutil.NextSet(s.word, from) }
func (s SingleWord) nextUnset(from int) int { return bitutil.NextUnset(s.word, from) }
func (s SingleWord) prevSet(from int) int   { return bitutil.PrevSet(s.word, from) }
func (s SingleWord) prevUnset(from int) int { return bitutil.PrevUnset(s.word, from) }

func (s SingleWord) capture(lo, hi int) Range[Int] {
	return SingleWord{limitStart: s.limitStart, word: s.word & bitutil.Mask(uint(lo), uint(hi))}
}

func (s SingleWord) Len() int {
	// Each run starts at a set bit whose lower neighbour is clear.
	return bits.OnesCount64(s.word &^ (s.word << 1))
}

func (s SingleWord) At(i int) (Fragment[Int], error) {
	return at[Int](s, i)
}

func (s SingleWord) Fragments() []Fragment[Int] {
	return collect[Int](s)
}

func (s SingleWord) All() iter.Seq[Fragment[Int]] {
	return bitFragments(s)
}

func (s SingleWord) Contains(v Int) bool {
	if v < s.limitStart || v > s.limitEnd() {
		return false
	}
	return s.word&(1<<uint(v-s.limitStart)) != 0
}

func (s SingleWord) ContainsFragment(f Fragment[Int]) bool {
	if checkLimits(f, s.limitStart, s.limitEnd()) != nil {
		return false
	}
	m := bitutil.Mask(uint(f.start-s.limitStart), uint(f.end-s.limitStart))
	return s.word&m == m
}

func (s SingleWord) Count() int64 {
	return int64(bits.OnesCount64(s.word))
}

func (s SingleWord) IsEmpty() bool {
	return s.word == 0
}

func (s SingleWord) Span() (Fragment[Int], bool) {
	return bitSpan(s)
}

func (s SingleWord) Cursor() Cursor[Int] {
	return newBitCursor(s)
}

func (s SingleWord) Modify() Editor[Int] {
	return &singleWordEditor{cur: s}
}

func (s SingleWord) Equal(other Range[Int]) bool {
	return Equal[Int](s, other)
}

func (s SingleWord) Hash() uint64 {
	return Hash[Int](s)
}

func (s SingleWord) String() string {
	return format[Int](s)
}

// singleWordEditor edits a value copy, so it never needs an explicit copy step.
type singleWordEditor struct {
	cur SingleWord
}

func (e *singleWordEditor) edit(f Fragment[Int], set bool) error {
	if err := checkLimits(f, e.cur.limitStart, e.cur.limitEnd()); err != nil {
		return err
	}
	m := bitutil.Mask(uint(f.start-e.cur.limitStart), uint(f.end-e.cur.limitStart))
	if set {
		e.cur.word |= m
	} else {
		e.cur.word &^= m
	}
	return nil
}

func (e *singleWordEditor) Set(f Fragment[Int]) error   { return e.edit(f, true) }
func (e *singleWordEditor) Unset(f Fragment[Int]) error { return e.edit(f, false) }
func (e *singleWordEditor) SetValue(v Int) error        { return e.edit(Single(v), true) }
func (e *singleWordEditor) UnsetValue(v Int) error      { return e.edit(Single(v), false) }

func (e *singleWordEditor) Range() Range[Int] {
	return e.cur
}
