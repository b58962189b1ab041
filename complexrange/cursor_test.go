package complexrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	for name, r := range representations(t, frag(1, 2), frag(4, 5), frag(9, 9)) {
		t.Run(name, func(t *testing.T) {
			c := r.Cursor()
			_, err := c.Current()
			require.ErrorIs(t, err, ErrCursorState)
			assert.False(t, c.Prev())

			var seen []Fragment[Int]
			for c.Next() {
				f, err := c.Current()
				require.NoError(t, err)
				seen = append(seen, f)
			}
			assert.Equal(t, r.Fragments(), seen)

			// A failed move leaves the cursor in place.
			f, err := c.Current()
			require.NoError(t, err)
			assert.Equal(t, frag(9, 9), f)

			require.True(t, c.Prev())
			f, _ = c.Current()
			assert.Equal(t, frag(4, 5), f)
			require.True(t, c.Prev())
			assert.False(t, c.Prev())
			f, _ = c.Current()
			assert.Equal(t, frag(1, 2), f)
		})
	}
}

func TestCursor_Capture(t *testing.T) {
	for name, r := range representations(t, frag(1, 2), frag(4, 5), frag(9, 9), frag(20, 30)) {
		t.Run(name, func(t *testing.T) {
			c := r.Cursor()
			c.Mark()
			_, err := c.CaptureSinceMark()
			require.ErrorIs(t, err, ErrCursorState, "mark before the first fragment is ignored")

			require.True(t, c.Next())
			require.True(t, c.Next())
			c.Mark()
			_, err = c.CaptureSinceMark()
			require.NoError(t, err)

			require.True(t, c.Next())
			got, err := c.CaptureSinceMark()
			require.NoError(t, err)
			assert.Equal(t, []Fragment[Int]{frag(4, 5), frag(9, 9)}, got.Fragments())
			assert.IsType(t, r, got)

			require.True(t, c.Prev())
			require.True(t, c.Prev())
			_, err = c.CaptureSinceMark()
			require.ErrorIs(t, err, ErrCursorState)

			c.Reset()
			_, err = c.Current()
			require.ErrorIs(t, err, ErrCursorState)
			_, err = c.CaptureSinceMark()
			require.ErrorIs(t, err, ErrCursorState)

			require.True(t, c.Next())
			c.Mark()
			got, err = c.CaptureSinceMark()
			require.NoError(t, err)
			assert.Equal(t, []Fragment[Int]{frag(1, 2)}, got.Fragments())
		})
	}
}

func TestCursor_WordArrayAcrossWords(t *testing.T) {
	b, err := NewWordArrayBuilder(-100, 200)
	require.NoError(t, err)
	require.NoError(t, b.Fragments(frag(-100, -90), frag(-3, 70), frag(127, 128), frag(190, 200)))
	r := b.Build()

	c := r.Cursor()
	var forward []Fragment[Int]
	for c.Next() {
		f, err := c.Current()
		require.NoError(t, err)
		forward = append(forward, f)
	}
	assert.Equal(t, []Fragment[Int]{frag(-100, -90), frag(-3, 70), frag(127, 128), frag(190, 200)}, forward)

	var backward []Fragment[Int]
	for {
		f, err := c.Current()
		require.NoError(t, err)
		backward = append([]Fragment[Int]{f}, backward...)
		if !c.Prev() {
			break
		}
	}
	assert.Equal(t, forward, backward)
}
