package watershed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tramebleue/fct-terrain-analysis/grid"
	"github.com/tramebleue/fct-terrain-analysis/watershed"
)

// coneFlow builds a 5×5 flow grid where every cell drains toward the
// bottom-right corner, which itself flows off-grid.
func coneFlow(t *testing.T) *grid.Uint8 {
	t.Helper()
	f, err := grid.New[uint8](5, 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			switch {
			case i < 4 && j < 4:
				f.Set(i, j, grid.SouthEast.Code())
			case i == 4 && j < 4:
				f.Set(i, j, grid.East.Code())
			case j == 4 && i < 4:
				f.Set(i, j, grid.South.Code())
			default: // (4,4) leaves the grid to the southeast
				f.Set(i, j, grid.SouthEast.Code())
			}
		}
	}
	return f
}

// TestUpslopeCone checks the single-outlet scenario: flooding from the
// corner outlet labels all 25 cells.
func TestUpslopeCone(t *testing.T) {
	f := coneFlow(t)
	b, _ := grid.New[int32](5, 5)

	count, err := watershed.Upslope(f, 4, 4, 7, b)
	require.NoError(t, err)
	require.Equal(t, uint64(25), count)
	for _, v := range b.Cells() {
		require.Equal(t, int32(7), v)
	}
}

// TestUpslopeIdempotence checks that a second identical
// call leaves the basin grid unchanged.
func TestUpslopeIdempotence(t *testing.T) {
	f := coneFlow(t)
	b, _ := grid.New[int32](5, 5)

	_, err := watershed.Upslope(f, 4, 4, 7, b)
	require.NoError(t, err)
	snapshot := b.Clone()

	_, err = watershed.Upslope(f, 4, 4, 7, b)
	require.NoError(t, err)
	require.Equal(t, snapshot.Cells(), b.Cells())
}

// TestUpslopeNoDataSeed verifies a seed without flow paints nothing.
func TestUpslopeNoDataSeed(t *testing.T) {
	f, _ := grid.New[uint8](3, 3) // all zero
	b, _ := grid.New[int32](3, 3)

	count, err := watershed.Upslope(f, 1, 1, 4, b)
	require.NoError(t, err)
	require.Zero(t, count)
	for _, v := range b.Cells() {
		require.Zero(t, v)
	}
}

// TestUpslopeRespectsOtherBasins verifies that two floods with distinct
// ids over independent columns each label only their own column, and
// the first basin's labels survive the second flood.
func TestUpslopeRespectsOtherBasins(t *testing.T) {
	// Two columns draining south independently.
	f, _ := grid.From2D([][]uint8{
		{grid.South.Code(), grid.South.Code()},
		{grid.South.Code(), grid.South.Code()},
	})
	b, _ := grid.New[int32](2, 2)

	left, err := watershed.Upslope(f, 1, 0, 1, b)
	require.NoError(t, err)
	require.Equal(t, uint64(2), left)

	right, err := watershed.Upslope(f, 1, 1, 2, b)
	require.NoError(t, err)
	require.Equal(t, uint64(2), right)

	require.Equal(t, []int32{1, 2, 1, 2}, b.Cells())
}

// TestDelineate seeds at the summit and verifies the downstream walk
// finds the outlet, the whole cone is painted, and no -1 trail marker
// survives.
func TestDelineate(t *testing.T) {
	f := coneFlow(t)
	b, _ := grid.New[int32](5, 5)

	count, err := watershed.Delineate(f, 0, 0, 3, b)
	require.NoError(t, err)
	require.Equal(t, uint64(25), count)
	for _, v := range b.Cells() {
		require.Equal(t, int32(3), v)
	}
}

// TestDelineateStopsAtNoFlow verifies the walk halts before a cell
// with flow code 0 and floods from the last flowing cell.
func TestDelineateStopsAtNoFlow(t *testing.T) {
	// 1×4 channel: two cells flow east into a dead cell; the last is
	// independent.
	f, _ := grid.From2D([][]uint8{
		{grid.East.Code(), grid.East.Code(), 0, grid.East.Code()},
	})
	b, _ := grid.New[int32](1, 4)

	count, err := watershed.Delineate(f, 0, 0, 9, b)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count)
	require.Equal(t, []int32{9, 9, 0, 0}, b.Cells())
}

// TestDelineateSeedWithoutFlow verifies a dead seed is a no-op.
func TestDelineateSeedWithoutFlow(t *testing.T) {
	f, _ := grid.New[uint8](2, 2)
	b, _ := grid.New[int32](2, 2)

	count, err := watershed.Delineate(f, 0, 0, 1, b)
	require.NoError(t, err)
	require.Zero(t, count)
	for _, v := range b.Cells() {
		require.Zero(t, v)
	}
}

// TestAll labels a three-column grid where each column drains south to
// its own outlet; ids follow outlet elevation order.
func TestAll(t *testing.T) {
	south := grid.South.Code()
	f, _ := grid.From2D([][]uint8{
		{south, south, south},
		{south, south, south},
		{south, south, south},
	})
	z, _ := grid.From2D([][]float32{
		{9, 9, 9},
		{9, 9, 9},
		{3, 1, 2},
	})
	b, _ := grid.New[int32](3, 3)

	n, err := watershed.All(z, f, -1, b)
	require.NoError(t, err)
	require.Equal(t, int32(3), n)

	// Lowest outlet (z=1, column 1) founds basin 1, then column 2,
	// then column 0.
	require.Equal(t, []int32{
		3, 1, 2,
		3, 1, 2,
		3, 1, 2,
	}, b.Cells())
}

// TestAllSkipsNoData verifies nodata cells found no basin.
func TestAllSkipsNoData(t *testing.T) {
	f, _ := grid.From2D([][]uint8{{grid.East.Code(), grid.East.Code()}})
	z, _ := grid.From2D([][]float32{{-1, 5}})
	b, _ := grid.New[int32](1, 2)

	n, err := watershed.All(z, f, -1, b)
	require.NoError(t, err)
	require.Equal(t, int32(1), n)
	require.Equal(t, []int32{1, 1}, b.Cells())
}

// TestValidation covers the argument errors.
func TestValidation(t *testing.T) {
	f, _ := grid.New[uint8](2, 2)
	b, _ := grid.New[int32](2, 2)
	bad, _ := grid.New[int32](2, 3)

	_, err := watershed.Upslope(nil, 0, 0, 1, b)
	require.ErrorIs(t, err, watershed.ErrNilGrid)
	_, err = watershed.Upslope(f, 0, 0, 1, bad)
	require.ErrorIs(t, err, watershed.ErrShape)
	_, err = watershed.Upslope(f, 2, 0, 1, b)
	require.ErrorIs(t, err, watershed.ErrSeedOutOfGrid)
	_, err = watershed.Upslope(f, 0, -1, 1, b)
	require.ErrorIs(t, err, watershed.ErrSeedOutOfGrid)
	_, err = watershed.Upslope(f, 0, 0, 0, b)
	require.ErrorIs(t, err, watershed.ErrBasinID)

	_, err = watershed.Delineate(f, 0, 0, -3, b)
	require.ErrorIs(t, err, watershed.ErrBasinID)
	_, err = watershed.Delineate(f, 5, 5, 1, b)
	require.ErrorIs(t, err, watershed.ErrSeedOutOfGrid)
}

// TestCancellation verifies a pre-cancelled context aborts the flood.
func TestCancellation(t *testing.T) {
	f := coneFlow(t)
	b, _ := grid.New[int32](5, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := watershed.Upslope(f, 4, 4, 1, b, watershed.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
