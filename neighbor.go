package contourgeom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// nnIndex is a static nearest-neighbour index built once over a reference
// set and queried per point. Decouples the matching routines from the
// concrete spatial index.
type nnIndex interface {
	nearest(q []float64) (point []float64, dist float64)
}

// kdIndex backs nnIndex with a balanced KD-tree over the reference rows.
type kdIndex struct {
	tree *kdtree.Tree
}

func newKDIndex(reference [][]float64) *kdIndex {
	pts := make(kdtree.Points, len(reference))
	for i, row := range reference {
		pts[i] = kdtree.Point(row)
	}
	return &kdIndex{tree: kdtree.New(pts, false)}
}

func (ix *kdIndex) nearest(q []float64) ([]float64, float64) {
	got, dist2 := ix.tree.Nearest(kdtree.Point(q))
	// The tree reports squared Euclidean distance.
	return []float64(got.(kdtree.Point)), math.Sqrt(dist2)
}

// NearestAmong returns, for each query point, the nearest point in the
// reference set under Euclidean distance, along with the matching distances.
// The reference set is indexed once and queried per point. An empty query
// set yields empty results; an empty reference set or mismatched column
// counts fail with ErrShape.
func NearestAmong(query, reference [][]float64) (nearest [][]float64, distances []float64, err error) {
	if len(query) == 0 {
		return nil, nil, nil
	}
	if len(reference) == 0 {
		return nil, nil, fmt.Errorf("nearest among: empty reference set: %w", ErrShape)
	}
	if len(query[0]) != len(reference[0]) {
		return nil, nil, fmt.Errorf("nearest among: column counts %d and %d differ: %w", len(query[0]), len(reference[0]), ErrShape)
	}

	var ix nnIndex = newKDIndex(reference)
	nearest = make([][]float64, len(query))
	distances = make([]float64, len(query))
	for i, q := range query {
		nearest[i], distances[i] = ix.nearest(q)
	}
	return nearest, distances, nil
}

// ClosestToReference returns the candidate point with the smallest distance
// to any point in the reference set. Used to pick the landmark point closest
// to an independently derived separator point.
func ClosestToReference(candidates, reference [][]float64) ([]float64, error) {
	_, distances, err := NearestAmong(candidates, reference)
	if err != nil {
		return nil, err
	}
	if len(distances) == 0 {
		return nil, fmt.Errorf("closest to reference: no candidate points: %w", ErrShape)
	}
	return candidates[floats.MinIdx(distances)], nil
}

// ClosestPair removes all-zero rows from both sets, then returns the point
// in a achieving the global minimum distance to any point in b, computed
// over the full pairwise distance matrix. Ties resolve to the first minimum
// in row-major scan order.
func ClosestPair(a, b [][]float64) ([]float64, error) {
	fa := RemoveZeroRows(a)
	fb := RemoveZeroRows(b)
	if len(fa) == 0 || len(fb) == 0 {
		return nil, fmt.Errorf("closest pair: a point set is empty after zero-row removal: %w", ErrShape)
	}
	if len(fa[0]) != len(fb[0]) {
		return nil, fmt.Errorf("closest pair: column counts %d and %d differ: %w", len(fa[0]), len(fb[0]), ErrShape)
	}

	dist := mat.NewDense(len(fa), len(fb), nil)
	for i, p := range fa {
		for j, q := range fb {
			dist.Set(i, j, floats.Distance(p, q, 2))
		}
	}

	best := math.Inf(1)
	bestRow := 0
	for i := 0; i < len(fa); i++ {
		for j := 0; j < len(fb); j++ {
			if d := dist.At(i, j); d < best {
				best = d
				bestRow = i
			}
		}
	}
	return fa[bestRow], nil
}
