package complexrange

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Range is a complex range: fragments sorted ascending, pairwise disjoint and
// never adjacent. Ranges are immutable; Modify edits a private copy.
//
// Equality and hashing depend only on the fragment sequence, so ranges backed
// by different representations compare equal when they hold the same elements.
type Range[T Element[T]] interface {
	// Len returns the number of fragments.
	Len() int
	// At returns the i-th fragment.
	At(i int) (Fragment[T], error)
	Fragments() []Fragment[T]
	All() iter.Seq[Fragment[T]]
	Contains(v T) bool
	// ContainsFragment reports whether every element of f is in the range.
	ContainsFragment(f Fragment[T]) bool
	// Count returns the number of elements.
	Count() int64
	IsEmpty() bool
	// Span returns the fragment from the first element to the last.
	Span() (Fragment[T], bool)
	Cursor() Cursor[T]
	Modify() Editor[T]
	Equal(other Range[T]) bool
	Hash() uint64
	String() string
}

// Equal reports whether a and b hold the same fragment sequence.
func Equal[T Element[T]](a, b Range[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for fa := range a.All() {
		fb, ok := next()
		if !ok || fa != fb {
			return false
		}
	}
	_, more := next()
	return !more
}

// Hash folds the start and end keys of every fragment of r into an xxhash64
// digest. Equal ranges hash equally regardless of representation.
func Hash[T Element[T]](r Range[T]) uint64 {
	h := xxhash.New()
	var buf []byte
	for f := range r.All() {
		buf = f.start.AppendKey(buf[:0])
		buf = f.end.AppendKey(buf)
		h.Write(buf)
	}
	return h.Sum64()
}

func format[T Element[T]](r Range[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	for f := range r.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.String())
		i++
	}
	sb.WriteByte(']')
	return sb.String()
}

func at[T Element[T]](r Range[T], i int) (Fragment[T], error) {
	if i >= 0 {
		j := 0
		for f := range r.All() {
			if j == i {
				return f, nil
			}
			j++
		}
	}
	return Fragment[T]{}, fmt.Errorf("fragment %d of %d: %w", i, r.Len(), ErrIndexOutOfRange)
}

func collect[T Element[T]](r Range[T]) []Fragment[T] {
	out := make([]Fragment[T], 0, r.Len())
	for f := range r.All() {
		out = append(out, f)
	}
	return out
}

// Empty returns the empty range. All empty ranges of one element type are
// the same value.
func Empty[T Element[T]]() Range[T] {
	return emptyRange[T]{}
}

type emptyRange[T Element[T]] struct{}

var _ Range[Int] = emptyRange[Int]{}

func (emptyRange[T]) Len() int { return 0 }

func (emptyRange[T]) At(i int) (Fragment[T], error) {
	return Fragment[T]{}, fmt.Errorf("fragment %d of 0: %w", i, ErrIndexOutOfRange)
}

func (emptyRange[T]) Fragments() []Fragment[T]          { return nil }
func (emptyRange[T]) All() iter.Seq[Fragment[T]]        { return func(func(Fragment[T]) bool) {} }
func (emptyRange[T]) Contains(T) bool                   { return false }
func (emptyRange[T]) ContainsFragment(Fragment[T]) bool { return false }
func (emptyRange[T]) Count() int64                      { return 0 }
func (emptyRange[T]) IsEmpty() bool                     { return true }
func (emptyRange[T]) Span() (Fragment[T], bool)         { return Fragment[T]{}, false }
func (emptyRange[T]) Cursor() Cursor[T]                 { return newLinkedCursor(emptyList[T]()) }
func (emptyRange[T]) Modify() Editor[T]                 { return &linkedEditor[T]{list: emptyList[T](), owned: true} }
func (emptyRange[T]) Equal(other Range[T]) bool         { return other.IsEmpty() }
func (e emptyRange[T]) Hash() uint64                    { return Hash[T](e) }
func (emptyRange[T]) String() string                    { return "[]" }
