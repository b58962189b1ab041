package complexrange

// Editor edits a private copy of a range. Set unites a fragment into the copy,
// Unset removes one; bounded representations reject out-of-limit fragments
// with ErrOutOfBounds and leave the copy unchanged. Range returns the edited
// range; the editor stays usable and copies again on the next edit.
type Editor[T Element[T]] interface {
	Set(f Fragment[T]) error
	Unset(f Fragment[T]) error
	SetValue(v T) error
	UnsetValue(v T) error
	Range() Range[T]
}

// Modify runs fn against an editor of r and returns the edited range.
// r itself is never changed.
func Modify[T Element[T]](r Range[T], fn func(Editor[T]) error) (Range[T], error) {
	ed := r.Modify()
	if err := fn(ed); err != nil {
		return nil, err
	}
	return ed.Range(), nil
}

// Cursor is a bidirectional iterator over the fragments of a range. A new
// cursor sits before the first fragment. Cursors are not safe for concurrent
// use.
type Cursor[T Element[T]] interface {
	// Current returns the fragment under the cursor, or ErrCursorState before
	// the first successful Next.
	Current() (Fragment[T], error)
	// Next moves to the following fragment. On false the cursor does not move.
	Next() bool
	// Prev moves to the preceding fragment. On false the cursor does not move.
	Prev() bool
	// Mark records the current position. It does nothing before the first Next.
	Mark()
	// CaptureSinceMark returns the fragments from the mark through the current
	// one, inclusive, as a range of the same representation.
	CaptureSinceMark() (Range[T], error)
	// Reset moves the cursor before the first fragment and drops the mark.
	Reset()
}
