package complexrange

import "fmt"

// bitStore is the view of a bit-packed range that the shared cursor and
// fragment scanning need. Bit i stands for the value origin()+i.
type bitStore interface {
	origin() Int
	width() int
	nextSet(from int) int
	nextUnset(from int) int
	prevSet(from int) int
	prevUnset(from int) int
	// capture returns a range of the same limits holding only bits lo..hi.
	capture(lo, hi int) Range[Int]
}

// runAt returns the run of set bits starting at the first set bit at or after
// from, as bit positions.
func runAt(b bitStore, from int) (lo, hi int, ok bool) {
	lo = b.nextSet(from)
	if lo < 0 {
		return 0, 0, false
	}
	end := b.nextUnset(lo)
	if end < 0 {
		end = b.width()
	}
	return lo, end - 1, true
}

func bitFragment(b bitStore, lo, hi int) Fragment[Int] {
	o := b.origin()
	return Fragment[Int]{start: o + Int(lo), end: o + Int(hi)}
}

func bitFragments(b bitStore) func(yield func(Fragment[Int]) bool) {
	return func(yield func(Fragment[Int]) bool) {
		for from := 0; ; {
			lo, hi, ok := runAt(b, from)
			if !ok || !yield(bitFragment(b, lo, hi)) {
				return
			}
			from = hi + 1
		}
	}
}

func bitSpan(b bitStore) (Fragment[Int], bool) {
	lo := b.nextSet(0)
	if lo < 0 {
		return Fragment[Int]{}, false
	}
	return bitFragment(b, lo, b.prevSet(b.width()-1)), true
}

// bitCursor walks the runs of set bits of a bit-packed range.
type bitCursor struct {
	bits   bitStore
	lo, hi int // current run; lo < 0 before the first Next
	markLo int // -1 without a mark
}

func newBitCursor(b bitStore) *bitCursor {
	return &bitCursor{bits: b, lo: -1, markLo: -1}
}

func (c *bitCursor) Current() (Fragment[Int], error) {
	if c.lo < 0 {
		return Fragment[Int]{}, fmt.Errorf("current before first advance: %w", ErrCursorState)
	}
	return bitFragment(c.bits, c.lo, c.hi), nil
}

func (c *bitCursor) Next() bool {
	from := 0
	if c.lo >= 0 {
		from = c.hi + 1
	}
	lo, hi, ok := runAt(c.bits, from)
	if !ok {
		return false
	}
	c.lo, c.hi = lo, hi
	return true
}

func (c *bitCursor) Prev() bool {
	if c.lo <= 0 {
		return false
	}
	hi := c.bits.prevSet(c.lo - 1)
	if hi < 0 {
		return false
	}
	c.lo, c.hi = c.bits.prevUnset(hi)+1, hi
	return true
}

func (c *bitCursor) Mark() {
	if c.lo >= 0 {
		c.markLo = c.lo
	}
}

func (c *bitCursor) CaptureSinceMark() (Range[Int], error) {
	if c.markLo < 0 {
		return nil, fmt.Errorf("capture without mark: %w", ErrCursorState)
	}
	if c.lo < c.markLo {
		return nil, fmt.Errorf("capture with current before mark: %w", ErrCursorState)
	}
	return c.bits.capture(c.markLo, c.hi), nil
}

func (c *bitCursor) Reset() {
	c.lo, c.hi, c.markLo = -1, -1, -1
}

func checkLimits(f Fragment[Int], limitStart, limitEnd Int) error {
	if f.start < limitStart || f.end > limitEnd {
		return fmt.Errorf("fragment %v outside [%d, %d]: %w", f, limitStart, limitEnd, ErrOutOfBounds)
	}
	return nil
}
