package complexrange

import "fmt"

// Fragment is an immutable closed interval [start, end] with start <= end.
type Fragment[T Element[T]] struct {
	start T // inclusive
	end   T // inclusive
}

// NewFragment returns the fragment [start, end].
func NewFragment[T Element[T]](start, end T) (Fragment[T], error) {
	if start.Compare(end) > 0 {
		return Fragment[T]{}, fmt.Errorf("new fragment [%v, %v]: %w", start, end, ErrInvalidFragment)
	}
	return Fragment[T]{start: start, end: end}, nil
}

// MustFragment is like NewFragment but panics on an invalid fragment.
func MustFragment[T Element[T]](start, end T) Fragment[T] {
	f, err := NewFragment(start, end)
	if err != nil {
		panic(err)
	}
	return f
}

// Single returns the fragment [v, v].
func Single[T Element[T]](v T) Fragment[T] {
	return Fragment[T]{start: v, end: v}
}

func (f Fragment[T]) Start() T { return f.start }
func (f Fragment[T]) End() T   { return f.end }

// EndExclusive returns the successor of End.
func (f Fragment[T]) EndExclusive() T { return f.end.Next() }

func (f Fragment[T]) Contains(v T) bool {
	return f.start.Compare(v) <= 0 && v.Compare(f.end) <= 0
}

func (f Fragment[T]) Overlaps(other Fragment[T]) bool {
	return f.start.Compare(other.end) <= 0 && other.start.Compare(f.end) <= 0
}

// Adjacent reports whether one fragment ends immediately before the other starts.
func (f Fragment[T]) Adjacent(other Fragment[T]) bool {
	return f.end.Next() == other.start || other.end.Next() == f.start
}

// CanUnite reports whether the two fragments overlap or are adjacent.
func (f Fragment[T]) CanUnite(other Fragment[T]) bool {
	return f.Overlaps(other) || f.Adjacent(other)
}

// Unite returns the fragment spanning both, or false if they cannot be united.
func (f Fragment[T]) Unite(other Fragment[T]) (Fragment[T], bool) {
	if !f.CanUnite(other) {
		return Fragment[T]{}, false
	}
	return f.Hull(other), true
}

// Hull returns the smallest fragment covering both, gaps included.
func (f Fragment[T]) Hull(other Fragment[T]) Fragment[T] {
	h := f
	if other.start.Compare(h.start) < 0 {
		h.start = other.start
	}
	if other.end.Compare(h.end) > 0 {
		h.end = other.end
	}
	return h
}

// ContainsCompletely reports whether other lies within f, bounds included.
func (f Fragment[T]) ContainsCompletely(other Fragment[T]) bool {
	return f.start.Compare(other.start) <= 0 && other.end.Compare(f.end) <= 0
}

// ContainsExclusive reports whether other lies strictly inside f, touching
// neither bound.
func (f Fragment[T]) ContainsExclusive(other Fragment[T]) bool {
	return f.start.Compare(other.start) < 0 && other.end.Compare(f.end) < 0
}

// LeftContains reports whether other covers f's start and ends inside f,
// before f's end.
//
//	    other
//	f-------t
//	    f-------t
//	        f
func (f Fragment[T]) LeftContains(other Fragment[T]) bool {
	return other.start.Compare(f.start) <= 0 &&
		f.start.Compare(other.end) <= 0 &&
		other.end.Compare(f.end) < 0
}

// RightContains reports whether other starts inside f, after f's start, and
// covers f's end.
//
//	        other
//	    f-------t
//	f-------t
//	    f
func (f Fragment[T]) RightContains(other Fragment[T]) bool {
	return f.start.Compare(other.start) < 0 &&
		other.start.Compare(f.end) <= 0 &&
		f.end.Compare(other.end) <= 0
}

// WithStart returns a copy of f starting at start.
func (f Fragment[T]) WithStart(start T) (Fragment[T], error) {
	return NewFragment(start, f.end)
}

// WithEnd returns a copy of f ending at end.
func (f Fragment[T]) WithEnd(end T) (Fragment[T], error) {
	return NewFragment(f.start, end)
}

// Size returns the number of elements in f.
func (f Fragment[T]) Size() int64 {
	if d, ok := Distance(f.start, f.end); ok {
		return d + 1
	}
	var n int64 = 1
	for v := f.start; v != f.end; v = v.Next() {
		n++
	}
	return n
}

func (f Fragment[T]) compareStart(other Fragment[T]) int {
	return f.start.Compare(other.start)
}

func (f Fragment[T]) String() string {
	return fmt.Sprintf("[%v, %v]", f.start, f.end)
}
