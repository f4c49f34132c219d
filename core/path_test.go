// Path ring-buffer contracts: O(1) double-ended
// access, random indexing, in-place reversal, and the empty-path sentinel.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gryphlib/gryph/core"
)

func TestPath_EmptySentinel(t *testing.T) {
	p := core.NewPath[string]()

	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0.0, p.Length())
	_, ok := p.Front()
	assert.False(t, ok)
	_, ok = p.PopBack()
	assert.False(t, ok)
}

func TestPath_PushFrontBacktrackOrder(t *testing.T) {
	// Built back-to-front, the way search backtracks predecessor links.
	p := core.NewPath[string]()
	for _, v := range []string{"D", "C", "B", "A"} {
		p.PushFront(v)
	}

	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Slice())

	front, ok := p.Front()
	require.True(t, ok)
	assert.Equal(t, "A", front)
	back, ok := p.Back()
	require.True(t, ok)
	assert.Equal(t, "D", back)
}

func TestPath_RandomAccess(t *testing.T) {
	p := core.NewPath[int]()
	for i := 0; i < 5; i++ {
		p.PushBack(i)
	}

	for i := 0; i < 5; i++ {
		v, ok := p.At(i)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := p.At(5)
	assert.False(t, ok)
	_, ok = p.At(-1)
	assert.False(t, ok)
}

func TestPath_PopBothEnds(t *testing.T) {
	p := core.NewPath[int]()
	for i := 1; i <= 4; i++ {
		p.PushBack(i)
	}

	v, ok := p.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = p.PopBack()
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, []int{2, 3}, p.Slice())
}

func TestPath_WraparoundGrowth(t *testing.T) {
	// Interleave front/back pushes past the initial capacity to force the
	// ring to wrap and regrow.
	p := core.NewPath[int]()
	for i := 0; i < 50; i++ {
		if i%2 == 0 {
			p.PushBack(i)
		} else {
			p.PushFront(i)
		}
	}

	assert.Equal(t, 50, p.Len())
	first, _ := p.Front()
	assert.Equal(t, 49, first)
	last, _ := p.Back()
	assert.Equal(t, 48, last)
}

func TestPath_Reverse(t *testing.T) {
	p := core.NewPath[int]()
	for i := 1; i <= 5; i++ {
		p.PushBack(i)
	}
	p.Reverse()

	assert.Equal(t, []int{5, 4, 3, 2, 1}, p.Slice())
}

func TestPath_Length(t *testing.T) {
	p := core.NewPath[string]()
	p.PushBack("A")
	p.AddLength(1.5)
	p.PushBack("B")
	p.AddLength(2.5)

	assert.Equal(t, 4.0, p.Length())
}
