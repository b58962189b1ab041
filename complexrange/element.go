// Package complexrange models complex ranges: canonical unions of disjoint,
// non-adjacent closed intervals (fragments) over a discretely steppable ordered
// domain. Three interchangeable storage representations are provided: a linked
// representation for any domain, and two bit-packed representations over a
// bounded integer domain.
package complexrange

import (
	"encoding/binary"
	"strconv"
	"time"
)

// Element is the capability contract of a domain value: a total order plus
// successor and predecessor. Prev(Next(x)) == x wherever both are defined.
// AppendKey appends a canonical binary encoding of the value, used for hashing.
type Element[T any] interface {
	comparable
	Compare(other T) int
	Next() T
	Prev() T
	AppendKey(dst []byte) []byte
}

// Distancer is implemented by domains with a distance metric. Distance returns
// the absolute number of steps between two values.
type Distancer[T any] interface {
	Distance(other T) int64
}

// Distance returns the distance between a and b when T implements Distancer.
func Distance[T Element[T]](a, b T) (int64, bool) {
	d, ok := any(a).(Distancer[T])
	if !ok {
		return 0, false
	}
	return d.Distance(b), true
}

// isElement only compiles for types satisfying Element.
func isElement[T Element[T]]() {}

// Int is an integer domain: indices, offsets or timestamps.
type Int int64

var _ = isElement[Int]
var _ Distancer[Int] = Int(0)

func (v Int) Compare(other Int) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	}
	return 0
}

func (v Int) Next() Int { return v + 1 }
func (v Int) Prev() Int { return v - 1 }

func (v Int) Distance(other Int) int64 {
	if v > other {
		return int64(v - other)
	}
	return int64(other - v)
}

func (v Int) AppendKey(dst []byte) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(v))
}

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// Day is a calendar day, counted in days since 1970-01-01 UTC.
type Day int32

var _ = isElement[Day]
var _ Distancer[Day] = Day(0)

const secondsPerDay = 24 * 60 * 60

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	u := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	if u < 0 && u%secondsPerDay != 0 {
		return Day(u/secondsPerDay - 1)
	}
	return Day(u / secondsPerDay)
}

// Date returns the day as a UTC midnight.
func (d Day) Date() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

func (d Day) Compare(other Day) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	}
	return 0
}

func (d Day) Next() Day { return d + 1 }
func (d Day) Prev() Day { return d - 1 }

func (d Day) Distance(other Day) int64 {
	if d > other {
		return int64(d - other)
	}
	return int64(other - d)
}

func (d Day) AppendKey(dst []byte) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(d))
}

func (d Day) String() string {
	return d.Date().Format(time.DateOnly)
}
