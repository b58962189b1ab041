package complexrange

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSeq is an index-addressed sequence, used to check that the algebra
// does not depend on linked storage.
type sliceSeq struct {
	fs []Fragment[Int]
}

var _ sequence[Int] = (*sliceSeq)(nil)

func (s *sliceSeq) Front() int {
	if len(s.fs) == 0 {
		return none
	}
	return 0
}

func (s *sliceSeq) Next(p int) int {
	if p+1 < len(s.fs) {
		return p + 1
	}
	return none
}

func (s *sliceSeq) Get(p int) Fragment[Int]    { return s.fs[p] }
func (s *sliceSeq) Set(p int, f Fragment[Int]) { s.fs[p] = f }

func (s *sliceSeq) InsertBefore(p int, f Fragment[Int]) int {
	if p == none {
		s.fs = append(s.fs, f)
		return len(s.fs) - 1
	}
	s.fs = slices.Insert(s.fs, p, f)
	return p
}

func (s *sliceSeq) Remove(p int) int {
	s.fs = slices.Delete(s.fs, p, p+1)
	if p < len(s.fs) {
		return p
	}
	return none
}

// model is a naive set of small integers.
type model map[Int]bool

func (m model) set(f Fragment[Int], v bool) {
	for i := f.start; i <= f.end; i++ {
		if v {
			m[i] = true
		} else {
			delete(m, i)
		}
	}
}

func (m model) fragments() []Fragment[Int] {
	keys := make([]Int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var out []Fragment[Int]
	for _, k := range keys {
		if n := len(out); n > 0 && out[n-1].end.Next() == k {
			out[n-1].end = k
			continue
		}
		out = append(out, Single(k))
	}
	return out
}

func assertCanonical(t *testing.T, fs []Fragment[Int]) {
	t.Helper()
	for i := 1; i < len(fs); i++ {
		assert.Less(t, fs[i-1].end.Next(), fs[i].start, "fragments %v and %v are not canonical", fs[i-1], fs[i])
	}
}

// fragmentsEqual treats nil and empty fragment slices alike.
func fragmentsEqual(t *testing.T, expected, actual []Fragment[Int]) {
	t.Helper()
	if len(expected) == 0 {
		require.Empty(t, actual)
		return
	}
	require.Equal(t, expected, actual)
}

func TestInclude(t *testing.T) {
	testCases := []struct {
		name     string
		initial  []Fragment[Int]
		add      Fragment[Int]
		expected []Fragment[Int]
	}{
		{"into empty", nil, frag(1, 2), []Fragment[Int]{frag(1, 2)}},
		{"before all", []Fragment[Int]{frag(10, 12)}, frag(1, 2), []Fragment[Int]{frag(1, 2), frag(10, 12)}},
		{"after all", []Fragment[Int]{frag(1, 2)}, frag(10, 12), []Fragment[Int]{frag(1, 2), frag(10, 12)}},
		{"between", []Fragment[Int]{frag(1, 2), frag(10, 12)}, frag(5, 6), []Fragment[Int]{frag(1, 2), frag(5, 6), frag(10, 12)}},
		{"duplicate", []Fragment[Int]{frag(1, 2), frag(5, 6)}, frag(5, 6), []Fragment[Int]{frag(1, 2), frag(5, 6)}},
		{"adjacent left", []Fragment[Int]{frag(5, 6)}, frag(3, 4), []Fragment[Int]{frag(3, 6)}},
		{"adjacent right", []Fragment[Int]{frag(5, 6)}, frag(7, 9), []Fragment[Int]{frag(5, 9)}},
		{"bridges two", []Fragment[Int]{frag(1, 2), frag(4, 5)}, frag(2, 3), []Fragment[Int]{frag(1, 5)}},
		{"swallows run", []Fragment[Int]{frag(0, 0), frag(2, 3), frag(5, 6), frag(8, 9), frag(20, 21)}, frag(1, 10), []Fragment[Int]{frag(0, 10), frag(20, 21)}},
		{"inside existing", []Fragment[Int]{frag(0, 10)}, frag(3, 4), []Fragment[Int]{frag(0, 10)}},
		{"covers existing", []Fragment[Int]{frag(3, 4)}, frag(0, 10), []Fragment[Int]{frag(0, 10)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &sliceSeq{fs: slices.Clone(tc.initial)}
			include[Int](s, tc.add)
			fragmentsEqual(t, tc.expected, s.fs)

			r := Of(tc.initial...)
			got, err := Modify(r, func(ed Editor[Int]) error { return ed.Set(tc.add) })
			require.NoError(t, err)
			fragmentsEqual(t, tc.expected, got.Fragments())
		})
	}
}

func TestExclude(t *testing.T) {
	testCases := []struct {
		name     string
		initial  []Fragment[Int]
		remove   Fragment[Int]
		expected []Fragment[Int]
	}{
		{"from empty", nil, frag(1, 2), nil},
		{"no overlap", []Fragment[Int]{frag(1, 2), frag(6, 7)}, frag(3, 5), []Fragment[Int]{frag(1, 2), frag(6, 7)}},
		{"tail value", []Fragment[Int]{frag(0, 1)}, frag(1, 1), []Fragment[Int]{frag(0, 0)}},
		{"whole fragment", []Fragment[Int]{frag(1, 2), frag(4, 5)}, frag(4, 5), []Fragment[Int]{frag(1, 2)}},
		{"covering fragment", []Fragment[Int]{frag(4, 5)}, frag(0, 9), nil},
		{"split", []Fragment[Int]{frag(0, 10)}, frag(3, 4), []Fragment[Int]{frag(0, 2), frag(5, 10)}},
		{"head", []Fragment[Int]{frag(5, 10)}, frag(0, 6), []Fragment[Int]{frag(7, 10)}},
		{"tail", []Fragment[Int]{frag(5, 10)}, frag(8, 20), []Fragment[Int]{frag(5, 7)}},
		{"trims both ends", []Fragment[Int]{frag(0, 3), frag(5, 6), frag(8, 12)}, frag(2, 9), []Fragment[Int]{frag(0, 1), frag(10, 12)}},
		{"removes first trims last", []Fragment[Int]{frag(2, 3), frag(5, 6), frag(8, 12)}, frag(1, 9), []Fragment[Int]{frag(10, 12)}},
		{"trims first removes last", []Fragment[Int]{frag(0, 3), frag(5, 6), frag(8, 12), frag(20, 21)}, frag(2, 15), []Fragment[Int]{frag(0, 1), frag(20, 21)}},
		{"removes all", []Fragment[Int]{frag(0, 3), frag(5, 6)}, frag(0, 6), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &sliceSeq{fs: slices.Clone(tc.initial)}
			exclude[Int](s, tc.remove)
			fragmentsEqual(t, tc.expected, s.fs)

			r := Of(tc.initial...)
			got, err := Modify(r, func(ed Editor[Int]) error { return ed.Unset(tc.remove) })
			require.NoError(t, err)
			fragmentsEqual(t, tc.expected, got.Fragments())
		})
	}
}

func TestExclude_PanicsWithoutOverlap(t *testing.T) {
	s := &sliceSeq{fs: []Fragment[Int]{frag(0, 1)}}
	assert.Panics(t, func() { excludeFromOne[Int](s, 0, frag(5, 6)) })
}

// FuzzAlgebra applies a stream of edits, two bytes each, to both the algebra
// and a naive model over [0, 63].
func FuzzAlgebra(f *testing.F) {
	f.Add([]byte{1, 2, 4, 5, 2, 3})
	f.Add([]byte{0, 40, 128 | 5, 9, 128 | 20, 30, 7, 7})
	f.Add([]byte{10, 20, 128 | 10, 20})

	f.Fuzz(func(t *testing.T, data []byte) {
		s := &sliceSeq{}
		ed := Empty[Int]().Modify()
		m := model{}
		for i := 0; i+1 < len(data); i += 2 {
			a, b := Int(data[i]&63), Int(data[i+1]&63)
			if a > b {
				a, b = b, a
			}
			fr := frag(int64(a), int64(b))
			if data[i]&128 != 0 {
				exclude[Int](s, fr)
				require.NoError(t, ed.Unset(fr))
				m.set(fr, false)
			} else {
				include[Int](s, fr)
				require.NoError(t, ed.Set(fr))
				m.set(fr, true)
			}
			expected := m.fragments()
			assertCanonical(t, s.fs)
			fragmentsEqual(t, expected, s.fs)
			fragmentsEqual(t, expected, ed.Range().Fragments())
		}
	})
}
