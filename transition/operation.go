// Package transition computes minimal transformation scripts between two
// complex ranges: independent groups of insert, remove, transform, split,
// join and move operations.
package transition

import (
	"fmt"
	"slices"
	"strings"

	"github.com/garethgeorge/rangeshift/complexrange"
)

type Fragment[T complexrange.Element[T]] = complexrange.Fragment[T]

type Kind uint8

const (
	KindInsert Kind = iota
	KindRemove
	KindTransform
	KindSplit
	KindJoin
	KindMove
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "Insert"
	case KindRemove:
		return "Remove"
	case KindTransform:
		return "Transform"
	case KindSplit:
		return "Split"
	case KindJoin:
		return "Join"
	case KindMove:
		return "Move"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Operation is one step of a transition. The set of operations is closed:
// Insert, Remove, Transform, Split, Join and Move.
type Operation[T complexrange.Element[T]] interface {
	Kind() Kind
	// Origins returns the fragments the operation consumes.
	Origins() []Fragment[T]
	// Destinations returns the fragments the operation produces.
	Destinations() []Fragment[T]
	// Inverse returns the operation undoing this one.
	Inverse() Operation[T]
	// Cost returns the operation's contribution to the efficiency level.
	Cost() int64
	String() string

	apply(ed complexrange.Editor[T]) error
}

// EqualOperations reports whether a and b are the same operation on the same
// fragments.
func EqualOperations[T complexrange.Element[T]](a, b Operation[T]) bool {
	return a.Kind() == b.Kind() &&
		slices.Equal(a.Origins(), b.Origins()) &&
		slices.Equal(a.Destinations(), b.Destinations())
}

// Insert adds a fragment present only in the destination.
type Insert[T complexrange.Element[T]] struct {
	Fragment Fragment[T]
}

func (op Insert[T]) Kind() Kind                  { return KindInsert }
func (op Insert[T]) Origins() []Fragment[T]      { return nil }
func (op Insert[T]) Destinations() []Fragment[T] { return []Fragment[T]{op.Fragment} }
func (op Insert[T]) Inverse() Operation[T]       { return Remove[T](op) }
func (op Insert[T]) Cost() int64                 { return 2 }
func (op Insert[T]) String() string              { return "Insert(" + op.Fragment.String() + ")" }

func (op Insert[T]) apply(ed complexrange.Editor[T]) error {
	return ed.Set(op.Fragment)
}

// Remove drops a fragment present only in the origin.
type Remove[T complexrange.Element[T]] struct {
	Fragment Fragment[T]
}

func (op Remove[T]) Kind() Kind                  { return KindRemove }
func (op Remove[T]) Origins() []Fragment[T]      { return []Fragment[T]{op.Fragment} }
func (op Remove[T]) Destinations() []Fragment[T] { return nil }
func (op Remove[T]) Inverse() Operation[T]       { return Insert[T](op) }
func (op Remove[T]) Cost() int64                 { return 2 }
func (op Remove[T]) String() string              { return "Remove(" + op.Fragment.String() + ")" }

func (op Remove[T]) apply(ed complexrange.Editor[T]) error {
	return ed.Unset(op.Fragment)
}

// Transform changes the bounds of one fragment.
type Transform[T complexrange.Element[T]] struct {
	Origin      Fragment[T]
	Destination Fragment[T]
}

func (op Transform[T]) Kind() Kind                  { return KindTransform }
func (op Transform[T]) Origins() []Fragment[T]      { return []Fragment[T]{op.Origin} }
func (op Transform[T]) Destinations() []Fragment[T] { return []Fragment[T]{op.Destination} }

func (op Transform[T]) Inverse() Operation[T] {
	return Transform[T]{Origin: op.Destination, Destination: op.Origin}
}

// Cost counts the bounds that change.
func (op Transform[T]) Cost() int64 {
	var n int64
	if op.Origin.Start() != op.Destination.Start() {
		n++
	}
	if op.Origin.End() != op.Destination.End() {
		n++
	}
	return n
}

func (op Transform[T]) String() string {
	return "Transform(" + op.Origin.String() + " -> " + op.Destination.String() + ")"
}

func (op Transform[T]) apply(ed complexrange.Editor[T]) error {
	if err := ed.Unset(op.Origin); err != nil {
		return err
	}
	return ed.Set(op.Destination)
}

// Split breaks one fragment into several. The parts are ascending and their
// hull is the origin.
type Split[T complexrange.Element[T]] struct {
	Origin Fragment[T]
	Parts  []Fragment[T]
}

func (op Split[T]) Kind() Kind             { return KindSplit }
func (op Split[T]) Origins() []Fragment[T] { return []Fragment[T]{op.Origin} }

func (op Split[T]) Destinations() []Fragment[T] {
	return slices.Clone(op.Parts)
}

func (op Split[T]) Inverse() Operation[T] {
	return Join[T]{Parts: slices.Clone(op.Parts), Destination: op.Origin}
}

func (op Split[T]) Cost() int64 {
	return int64(len(op.Parts) - 1)
}

func (op Split[T]) String() string {
	return "Split(" + op.Origin.String() + " -> " + joinFragments(op.Parts) + ")"
}

func (op Split[T]) apply(ed complexrange.Editor[T]) error {
	if err := ed.Unset(op.Origin); err != nil {
		return err
	}
	for _, f := range op.Parts {
		if err := ed.Set(f); err != nil {
			return err
		}
	}
	return nil
}

// Join collapses several ascending fragments into their hull.
type Join[T complexrange.Element[T]] struct {
	Parts       []Fragment[T]
	Destination Fragment[T]
}

func (op Join[T]) Kind() Kind { return KindJoin }

func (op Join[T]) Origins() []Fragment[T] {
	return slices.Clone(op.Parts)
}

func (op Join[T]) Destinations() []Fragment[T] { return []Fragment[T]{op.Destination} }

func (op Join[T]) Inverse() Operation[T] {
	return Split[T]{Origin: op.Destination, Parts: slices.Clone(op.Parts)}
}

func (op Join[T]) Cost() int64 {
	return int64(len(op.Parts) - 1)
}

func (op Join[T]) String() string {
	return "Join(" + joinFragments(op.Parts) + " -> " + op.Destination.String() + ")"
}

func (op Join[T]) apply(ed complexrange.Editor[T]) error {
	return ed.Set(op.Destination)
}

// Move relocates a fragment to a nearby, non-overlapping position.
type Move[T complexrange.Element[T]] struct {
	Origin      Fragment[T]
	Destination Fragment[T]
}

func (op Move[T]) Kind() Kind                  { return KindMove }
func (op Move[T]) Origins() []Fragment[T]      { return []Fragment[T]{op.Origin} }
func (op Move[T]) Destinations() []Fragment[T] { return []Fragment[T]{op.Destination} }

func (op Move[T]) Inverse() Operation[T] {
	return Move[T]{Origin: op.Destination, Destination: op.Origin}
}

// Cost is the distance between the two starts, or 1 for domains without a
// distance metric.
func (op Move[T]) Cost() int64 {
	if d, ok := complexrange.Distance(op.Origin.Start(), op.Destination.Start()); ok {
		return d
	}
	return 1
}

func (op Move[T]) String() string {
	return "Move(" + op.Origin.String() + " -> " + op.Destination.String() + ")"
}

func (op Move[T]) apply(ed complexrange.Editor[T]) error {
	if err := ed.Unset(op.Origin); err != nil {
		return err
	}
	return ed.Set(op.Destination)
}

func joinFragments[T complexrange.Element[T]](fs []Fragment[T]) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
