package complexrange

import (
	"fmt"

	"github.com/google/btree"
)

const builderDegree = 32

// Builder accumulates fragments and values in any order and builds a
// canonical range. Input is normalized as it arrives in a btree ordered by
// fragment start, so out-of-order bulk input costs O(log n) per fragment.
// Bounded builders reject out-of-limit input when it is added.
type Builder[T Element[T]] struct {
	tree  *btree.BTreeG[Fragment[T]]
	check func(Fragment[T]) error
	build func(b *Builder[T]) (Range[T], error)
}

func newBuilder[T Element[T]]() *Builder[T] {
	return &Builder[T]{
		tree: btree.NewG(builderDegree, func(a, b Fragment[T]) bool {
			return a.compareStart(b) < 0
		}),
		check: func(Fragment[T]) error { return nil },
	}
}

// NewBuilder returns a builder of Linked ranges.
func NewBuilder[T Element[T]]() *Builder[T] {
	b := newBuilder[T]()
	b.build = func(b *Builder[T]) (Range[T], error) {
		if b.tree.Len() == 0 {
			return Empty[T](), nil
		}
		list := emptyList[T]()
		b.tree.Ascend(func(f Fragment[T]) bool {
			list.PushBack(f)
			return true
		})
		return &Linked[T]{list: list}, nil
	}
	return b
}

// NewWordArrayBuilder returns a builder of WordArray ranges over
// [limitStart, limitEnd].
func NewWordArrayBuilder(limitStart, limitEnd Int) (*Builder[Int], error) {
	if _, err := NewWordArray(limitStart, limitEnd); err != nil {
		return nil, err
	}
	b := newBuilder[Int]()
	b.check = func(f Fragment[Int]) error {
		return checkLimits(f, limitStart, limitEnd)
	}
	b.build = func(b *Builder[Int]) (Range[Int], error) {
		w, err := NewWordArray(limitStart, limitEnd)
		if err != nil {
			return nil, err
		}
		return b.fill(w.Modify())
	}
	return b, nil
}

// NewSingleWordBuilder returns a builder of SingleWord ranges over
// [limitStart, limitStart+63].
func NewSingleWordBuilder(limitStart Int) (*Builder[Int], error) {
	s, err := NewSingleWord(limitStart)
	if err != nil {
		return nil, err
	}
	b := newBuilder[Int]()
	b.check = func(f Fragment[Int]) error {
		return checkLimits(f, s.limitStart, s.limitEnd())
	}
	b.build = func(b *Builder[Int]) (Range[Int], error) {
		return b.fill(s.Modify())
	}
	return b, nil
}

func (b *Builder[T]) fill(ed Editor[T]) (Range[T], error) {
	var err error
	b.tree.Ascend(func(f Fragment[T]) bool {
		err = ed.Set(f)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return ed.Range(), nil
}

// Fragment adds [start, end].
func (b *Builder[T]) Fragment(start, end T) error {
	f, err := NewFragment(start, end)
	if err != nil {
		return err
	}
	return b.Add(f)
}

// Add unites f into the builder.
func (b *Builder[T]) Add(f Fragment[T]) error {
	if err := b.check(f); err != nil {
		return fmt.Errorf("add %v: %w", f, err)
	}

	merged := f
	var absorbed []Fragment[T]

	// Merge with the fragment starting at or before f
	b.tree.DescendLessOrEqual(f, func(item Fragment[T]) bool {
		if u, ok := item.Unite(merged); ok {
			merged = u
			absorbed = append(absorbed, item)
		}
		return false
	})

	// Merge with every following fragment the union reaches
	b.tree.AscendGreaterOrEqual(f, func(item Fragment[T]) bool {
		u, ok := item.Unite(merged)
		if !ok {
			return false
		}
		merged = u
		absorbed = append(absorbed, item)
		return true
	})

	for _, item := range absorbed {
		b.tree.Delete(item)
	}
	b.tree.ReplaceOrInsert(merged)
	return nil
}

// Value adds the single value v.
func (b *Builder[T]) Value(v T) error {
	return b.Add(Single(v))
}

// Fragments adds every fragment, stopping at the first rejected one.
func (b *Builder[T]) Fragments(fs ...Fragment[T]) error {
	for _, f := range fs {
		if err := b.Add(f); err != nil {
			return err
		}
	}
	return nil
}

// Values adds every value, stopping at the first rejected one.
func (b *Builder[T]) Values(vs ...T) error {
	for _, v := range vs {
		if err := b.Value(v); err != nil {
			return err
		}
	}
	return nil
}

// Build returns the range holding everything added so far. The builder can
// keep accepting input afterwards.
func (b *Builder[T]) Build() Range[T] {
	r, err := b.build(b)
	if err != nil {
		// Input was checked against the limits when it was added.
		panic("build: " + err.Error())
	}
	return r
}

// Of builds a Linked range from fragments given in any order.
func Of[T Element[T]](fs ...Fragment[T]) Range[T] {
	b := NewBuilder[T]()
	// Linked builders accept every valid fragment.
	_ = b.Fragments(fs...)
	return b.Build()
}
