package contourgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestAmong(t *testing.T) {
	reference := [][]float64{{0, 0}, {10, 0}, {0, 10}}
	query := [][]float64{{1, 1}, {9, 1}, {-1, 8}}

	nearest, distances, err := NearestAmong(query, reference)
	require.NoError(t, err)
	require.Len(t, nearest, len(query))
	require.Len(t, distances, len(query))

	assert.Equal(t, []float64{0, 0}, nearest[0])
	assert.Equal(t, []float64{10, 0}, nearest[1])
	assert.Equal(t, []float64{0, 10}, nearest[2])
	assert.InDelta(t, 1.4142135623730951, distances[0], 1e-12)
}

func TestNearestAmong_EmptyQuery(t *testing.T) {
	nearest, distances, err := NearestAmong(nil, [][]float64{{1, 2}})
	require.NoError(t, err)
	assert.Empty(t, nearest)
	assert.Empty(t, distances)
}

func TestNearestAmong_ShapeErrors(t *testing.T) {
	_, _, err := NearestAmong([][]float64{{1, 2}}, nil)
	assert.ErrorIs(t, err, ErrShape)

	_, _, err = NearestAmong([][]float64{{1, 2}}, [][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrShape)
}

func TestClosestToReference(t *testing.T) {
	// Candidate insertion points against a septum contour: the second
	// candidate sits closest to the contour.
	candidates := [][]float64{{0, 5}, {4, 1}, {9, 9}}
	reference := [][]float64{{4, 0}, {5, 0}, {6, 0}}

	got, err := ClosestToReference(candidates, reference)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 1}, got)
}

func TestClosestToReference_NoCandidates(t *testing.T) {
	_, err := ClosestToReference(nil, [][]float64{{1, 2}})
	assert.ErrorIs(t, err, ErrShape)
}

func TestClosestPair_IdenticalSets(t *testing.T) {
	points := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	got, err := ClosestPair(points, points)
	require.NoError(t, err)
	// Distance zero everywhere on the diagonal: the first row-major minimum
	// wins, which is the first point of the first set.
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestClosestPair_SkipsZeroRows(t *testing.T) {
	a := [][]float64{{0, 0, 0}, {5, 5, 5}, {1, 1, 1}}
	b := [][]float64{{0, 0, 0}, {1, 1, 2}}

	got, err := ClosestPair(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, got)
}

func TestClosestPair_AllZero(t *testing.T) {
	_, err := ClosestPair([][]float64{{0, 0}}, [][]float64{{1, 1}})
	assert.ErrorIs(t, err, ErrShape)
}
