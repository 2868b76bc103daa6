package contourgeom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PlanarArea estimates the area enclosed by a near-planar 3D point set. An
// orthonormal basis {v1, v2, normal} is built with v2 = normal x (1,0,0)
// and v1 = v2 x normal, the centered points are rotated into it, the
// component along normal is discarded, and the area of the projected 2D
// polygon is computed over the vertices in their given order. The caller
// must supply points in a consistent boundary traversal order; no
// re-sorting happens.
//
// A normal parallel to the x axis collapses the basis and fails with
// ErrDegenerateGeometry. Fewer than 3 points enclose no area and yield 0.
func PlanarArea(points [][]float64, normal []float64) (float64, error) {
	if len(normal) != 3 {
		return 0, fmt.Errorf("planar area: normal has %d coordinates, want 3: %w", len(normal), ErrShape)
	}
	for i, row := range points {
		if len(row) != 3 {
			return 0, fmt.Errorf("planar area: row %d has %d coordinates, want 3: %w", i, len(row), ErrShape)
		}
	}

	eps := math.Nextafter(1, 2) - 1
	v2 := cross3(normal, []float64{1, 0, 0})
	n2 := floats.Norm(v2, 2)
	if n2 <= eps {
		return 0, fmt.Errorf("planar area: normal is parallel to the x axis: %w", ErrDegenerateGeometry)
	}
	floats.Scale(1/n2, v2)
	v1 := cross3(v2, normal)
	n1 := floats.Norm(v1, 2)
	if n1 <= eps {
		return 0, fmt.Errorf("planar area: basis construction collapsed: %w", ErrDegenerateGeometry)
	}
	floats.Scale(1/n1, v1)

	if len(points) < 3 {
		return 0, nil
	}

	var centroid [3]float64
	for _, row := range points {
		for k, v := range row {
			centroid[k] += v
		}
	}
	for k := range centroid {
		centroid[k] /= float64(len(points))
	}

	rotation := mat.NewDense(3, 3, []float64{
		v1[0], v1[1], v1[2],
		v2[0], v2[1], v2[2],
		normal[0], normal[1], normal[2],
	})
	centered := mat.NewDense(len(points), 3, nil)
	for i, row := range points {
		for k, v := range row {
			centered.Set(i, k, v-centroid[k])
		}
	}
	var projected mat.Dense
	projected.Mul(centered, rotation.T())

	ring := make(orb.Ring, 0, len(points)+1)
	for i := range points {
		ring = append(ring, orb.Point{projected.At(i, 0), projected.At(i, 1)})
	}
	ring = append(ring, ring[0])
	return math.Abs(planar.Area(ring)), nil
}

func cross3(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
