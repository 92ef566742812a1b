package grid

import (
	"testing"

	"github.com/ctessum/sparse"
	"github.com/stretchr/testify/require"
)

// TestFromDense copies a small DenseArray field into a Float32 grid.
func TestFromDense(t *testing.T) {
	d := sparse.ZerosDense(2, 3)
	d.Set(1.5, 0, 0)
	d.Set(-2.25, 1, 2)

	g, err := FromDense(d)
	require.NoError(t, err)

	h, w := g.Shape()
	require.Equal(t, 2, h)
	require.Equal(t, 3, w)
	require.Equal(t, float32(1.5), g.At(0, 0))
	require.Equal(t, float32(-2.25), g.At(1, 2))
	require.Equal(t, float32(0), g.At(0, 1))
}

// TestFromDense_Rank rejects non-2-D arrays.
func TestFromDense_Rank(t *testing.T) {
	_, err := FromDense(sparse.ZerosDense(2, 2, 2))
	require.ErrorIs(t, err, ErrDenseRank)

	_, err = FromDense(sparse.ZerosDense(4))
	require.ErrorIs(t, err, ErrDenseRank)
}

// TestToDense verifies the reverse copy, including independence from
// the source grid.
func TestToDense(t *testing.T) {
	g, _ := From2D([][]float32{{1, 2}, {3, 4}})
	d := ToDense(g)

	require.Equal(t, []int{2, 2}, d.Shape)
	require.Equal(t, 4.0, d.Get(1, 1))

	g.Set(1, 1, 9)
	require.Equal(t, 4.0, d.Get(1, 1))
}

// TestInt32ToDense covers the basin-grid conversion.
func TestInt32ToDense(t *testing.T) {
	b, _ := From2D([][]int32{{0, 7}, {-1, 3}})
	d := Int32ToDense(b)
	require.Equal(t, 7.0, d.Get(0, 1))
	require.Equal(t, -1.0, d.Get(1, 0))
}
