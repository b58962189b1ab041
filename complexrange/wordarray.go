package complexrange

import (
	"fmt"
	"iter"

	"github.com/garethgeorge/rangeshift/internal/bitutil"
)

// WordArray is a complex range over the bounded integer domain
// [limitStart, limitEnd], stored as one bit per value. Fragments are the runs
// of set bits. Edits cost O(words spanned).
type WordArray struct {
	limitStart Int
	limitEnd   Int
	words      []uint64
}

var (
	_ Range[Int] = (*WordArray)(nil)
	_ bitStore   = (*WordArray)(nil)
)

// MaxWordArrayBits is the widest domain a WordArray holds.
const MaxWordArrayBits uint64 = 1 << 32

// NewWordArray returns an empty range over [limitStart, limitEnd]. The domain
// may hold at most MaxWordArrayBits values.
func NewWordArray(limitStart, limitEnd Int) (*WordArray, error) {
	if limitStart > limitEnd {
		return nil, fmt.Errorf("word array limits [%d, %d]: %w", limitStart, limitEnd, ErrInvalidFragment)
	}
	// Unsigned, since the signed difference can overflow.
	if uint64(limitEnd)-uint64(limitStart) >= MaxWordArrayBits {
		return nil, fmt.Errorf("word array limits [%d, %d] wider than %d values: %w", limitStart, limitEnd, MaxWordArrayBits, ErrOutOfBounds)
	}
	n := int(limitEnd-limitStart) + 1
	return &WordArray{
		limitStart: limitStart,
		limitEnd:   limitEnd,
		words:      make([]uint64, bitutil.WordsFor(n)),
	}, nil
}

// Limits returns the inclusive domain bounds.
func (w *WordArray) Limits() (Int, Int) {
	return w.limitStart, w.limitEnd
}

func (w *WordArray) origin() Int { return w.limitStart }
func (w *WordArray) width() int  { return int(w.limitEnd-w.limitStart) + 1 }

func (w *WordArray) nextSet(from int) int   { return bitutil.NextSetIn(w.words, from, w.width()) }
func (w *WordArray) nextUnset(from int) int { return bitutil.NextUnsetIn(w.words, from, w.width()) }
func (w *WordArray) prevSet(from int) int   { return bitutil.PrevSetIn(w.words, from) }
func (w *WordArray) prevUnset(from int) int { return bitutil.PrevUnsetIn(w.words, from) }

func (w *WordArray) capture(lo, hi int) Range[Int] {
	out := &WordArray{
		limitStart: w.limitStart,
		limitEnd:   w.limitEnd,
		words:      append([]uint64(nil), w.words...),
	}
	if lo > 0 {
		bitutil.ClearRange(out.words, 0, lo-1)
	}
	if last := w.width() - 1; hi < last {
		bitutil.ClearRange(out.words, hi+1, last)
	}
	return out
}

func (w *WordArray) Len() int {
	n := 0
	for range w.All() {
		n++
	}
	return n
}

func (w *WordArray) At(i int) (Fragment[Int], error) {
	return at[Int](w, i)
}

func (w *WordArray) Fragments() []Fragment[Int] {
	return collect[Int](w)
}

func (w *WordArray) All() iter.Seq[Fragment[Int]] {
	return bitFragments(w)
}

func (w *WordArray) Contains(v Int) bool {
	if v < w.limitStart || v > w.limitEnd {
		return false
	}
	i := int(v - w.limitStart)
	return w.words[i/bitutil.WordBits]&(1<<uint(i%bitutil.WordBits)) != 0
}

func (w *WordArray) ContainsFragment(f Fragment[Int]) bool {
	if checkLimits(f, w.limitStart, w.limitEnd) != nil {
		return false
	}
	return bitutil.AllSet(w.words, int(f.start-w.limitStart), int(f.end-w.limitStart))
}

func (w *WordArray) Count() int64 {
	return int64(bitutil.Count(w.words))
}

func (w *WordArray) IsEmpty() bool {
	return w.nextSet(0) < 0
}

func (w *WordArray) Span() (Fragment[Int], bool) {
	return bitSpan(w)
}

func (w *WordArray) Cursor() Cursor[Int] {
	return newBitCursor(w)
}

func (w *WordArray) Modify() Editor[Int] {
	return &wordArrayEditor{src: w}
}

func (w *WordArray) Equal(other Range[Int]) bool {
	return Equal[Int](w, other)
}

func (w *WordArray) Hash() uint64 {
	return Hash[Int](w)
}

func (w *WordArray) String() string {
	return format[Int](w)
}

type wordArrayEditor struct {
	src   *WordArray
	owned bool
}

func (e *wordArrayEditor) edit(f Fragment[Int], set bool) error {
	if err := checkLimits(f, e.src.limitStart, e.src.limitEnd); err != nil {
		return err
	}
	if !e.owned {
		cp := *e.src
		cp.words = append([]uint64(nil), e.src.words...)
		e.src = &cp
		e.owned = true
	}
	lo, hi := int(f.start-e.src.limitStart), int(f.end-e.src.limitStart)
	if set {
		bitutil.SetRange(e.src.words, lo, hi)
	} else {
		bitutil.ClearRange(e.src.words, lo, hi)
	}
	return nil
}

func (e *wordArrayEditor) Set(f Fragment[Int]) error   { return e.edit(f, true) }
func (e *wordArrayEditor) Unset(f Fragment[Int]) error { return e.edit(f, false) }
func (e *wordArrayEditor) SetValue(v Int) error        { return e.edit(Single(v), true) }
func (e *wordArrayEditor) UnsetValue(v Int) error      { return e.edit(Single(v), false) }

func (e *wordArrayEditor) Range() Range[Int] {
	e.owned = false
	return e.src
}
