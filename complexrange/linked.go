package complexrange

import (
	"fmt"
	"iter"

	"github.com/garethgeorge/rangeshift/internal/nodelist"
)

type fragmentList[T Element[T]] = nodelist.List[Fragment[T]]

func emptyList[T Element[T]]() *fragmentList[T] {
	return nodelist.New[Fragment[T]](0)
}

// Linked is a complex range over any domain, stored as a doubly linked list
// of fragments. Edits cost O(affected fragments) after one copy of the list.
type Linked[T Element[T]] struct {
	list *fragmentList[T]
}

var _ Range[Int] = (*Linked[Int])(nil)

func (l *Linked[T]) Len() int {
	return l.list.Len()
}

func (l *Linked[T]) At(i int) (Fragment[T], error) {
	return at[T](l, i)
}

func (l *Linked[T]) Fragments() []Fragment[T] {
	return collect[T](l)
}

func (l *Linked[T]) All() iter.Seq[Fragment[T]] {
	return func(yield func(Fragment[T]) bool) {
		for _, f := range l.list.All() {
			if !yield(f) {
				return
			}
		}
	}
}

// find returns the fragment containing v.
func (l *Linked[T]) find(v T) (Fragment[T], bool) {
	for _, f := range l.list.All() {
		if v.Compare(f.start) < 0 {
			break
		}
		if v.Compare(f.end) <= 0 {
			return f, true
		}
	}
	return Fragment[T]{}, false
}

func (l *Linked[T]) Contains(v T) bool {
	_, ok := l.find(v)
	return ok
}

func (l *Linked[T]) ContainsFragment(f Fragment[T]) bool {
	containing, ok := l.find(f.start)
	return ok && containing.ContainsCompletely(f)
}

func (l *Linked[T]) Count() int64 {
	var n int64
	for _, f := range l.list.All() {
		n += f.Size()
	}
	return n
}

func (l *Linked[T]) IsEmpty() bool {
	return l.list.Len() == 0
}

func (l *Linked[T]) Span() (Fragment[T], bool) {
	if l.list.Len() == 0 {
		return Fragment[T]{}, false
	}
	return Fragment[T]{
		start: l.list.Get(l.list.Front()).start,
		end:   l.list.Get(l.list.Back()).end,
	}, true
}

func (l *Linked[T]) Cursor() Cursor[T] {
	return newLinkedCursor(l.list)
}

func (l *Linked[T]) Modify() Editor[T] {
	return &linkedEditor[T]{list: l.list}
}

func (l *Linked[T]) Equal(other Range[T]) bool {
	return Equal[T](l, other)
}

func (l *Linked[T]) Hash() uint64 {
	return Hash[T](l)
}

func (l *Linked[T]) String() string {
	return format[T](l)
}

// linkedEditor copies the list on the first edit after creation or after
// Range handed the current list out.
type linkedEditor[T Element[T]] struct {
	list  *fragmentList[T]
	owned bool
}

func (e *linkedEditor[T]) own() {
	if !e.owned {
		e.list = e.list.Clone()
		e.owned = true
	}
}

func (e *linkedEditor[T]) Set(f Fragment[T]) error {
	e.own()
	include[T](e.list, f)
	return nil
}

func (e *linkedEditor[T]) Unset(f Fragment[T]) error {
	e.own()
	exclude[T](e.list, f)
	return nil
}

func (e *linkedEditor[T]) SetValue(v T) error {
	return e.Set(Single(v))
}

func (e *linkedEditor[T]) UnsetValue(v T) error {
	return e.Unset(Single(v))
}

func (e *linkedEditor[T]) Range() Range[T] {
	e.owned = false
	if e.list.Len() == 0 {
		return Empty[T]()
	}
	return &Linked[T]{list: e.list}
}

type linkedCursor[T Element[T]] struct {
	list *fragmentList[T]
	cur  int
	mark int
}

func newLinkedCursor[T Element[T]](list *fragmentList[T]) *linkedCursor[T] {
	return &linkedCursor[T]{list: list, cur: nodelist.Nil, mark: nodelist.Nil}
}

func (c *linkedCursor[T]) Current() (Fragment[T], error) {
	if c.cur == nodelist.Nil {
		return Fragment[T]{}, fmt.Errorf("current before first advance: %w", ErrCursorState)
	}
	return c.list.Get(c.cur), nil
}

func (c *linkedCursor[T]) Next() bool {
	h := c.list.Front()
	if c.cur != nodelist.Nil {
		h = c.list.Next(c.cur)
	}
	if h == nodelist.Nil {
		return false
	}
	c.cur = h
	return true
}

func (c *linkedCursor[T]) Prev() bool {
	if c.cur == nodelist.Nil {
		return false
	}
	h := c.list.Prev(c.cur)
	if h == nodelist.Nil {
		return false
	}
	c.cur = h
	return true
}

func (c *linkedCursor[T]) Mark() {
	if c.cur != nodelist.Nil {
		c.mark = c.cur
	}
}

func (c *linkedCursor[T]) CaptureSinceMark() (Range[T], error) {
	if c.mark == nodelist.Nil {
		return nil, fmt.Errorf("capture without mark: %w", ErrCursorState)
	}
	out := emptyList[T]()
	for h := c.mark; ; h = c.list.Next(h) {
		if h == nodelist.Nil {
			return nil, fmt.Errorf("capture with current before mark: %w", ErrCursorState)
		}
		out.PushBack(c.list.Get(h))
		if h == c.cur {
			break
		}
	}
	return &Linked[T]{list: out}, nil
}

func (c *linkedCursor[T]) Reset() {
	c.cur = nodelist.Nil
	c.mark = nodelist.Nil
}
