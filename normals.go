package contourgeom

import (
	"fmt"
	"math"
)

// LineNormals2D computes a unit vector per vertex of a 2D polyline. Each
// incident segment contributes a tangent scaled by its squared length
// (floored at machine epsilon), the contributions per vertex are summed, and
// the sum is renormalised to unit length. With perpendicular set, each
// vector is rotated 90 degrees to give the outward-perpendicular field
// instead of the tangent-aligned one.
//
// segments lists the vertex index pairs forming each line segment; nil means
// consecutive-index segments. When segments share an endpoint slot the later
// segment's tangent wins for that slot, in segment order.
//
// Zero vertices yield an empty result; exactly one vertex fails with
// ErrShape since no segment can be formed.
func LineNormals2D(vertices [][]float64, segments [][2]int, perpendicular bool) ([][]float64, error) {
	n := len(vertices)
	if n == 1 {
		return nil, fmt.Errorf("line normals: a single vertex forms no segment: %w", ErrShape)
	}
	if n == 0 {
		return nil, nil
	}
	for i, row := range vertices {
		if len(row) != 2 {
			return nil, fmt.Errorf("line normals: vertex %d has %d coordinates, want 2: %w", i, len(row), ErrShape)
		}
	}

	if segments == nil {
		segments = make([][2]int, n-1)
		for i := range segments {
			segments[i] = [2]int{i, i + 1}
		}
	}

	// Machine epsilon floors both normalisations against near-zero lengths.
	eps := math.Nextafter(1, 2) - 1

	// Segment tangents divided by the squared segment length.
	tangents := make([][2]float64, len(segments))
	for k, s := range segments {
		dx := vertices[s[0]][0] - vertices[s[1]][0]
		dy := vertices[s[0]][1] - vertices[s[1]][1]
		ll2 := math.Max(dx*dx+dy*dy, eps)
		tangents[k] = [2]float64{dx / ll2, dy / ll2}
	}

	// Scatter each tangent to the endpoint slots of its segment, then sum
	// the two slots per vertex.
	first := make([][2]float64, n)
	second := make([][2]float64, n)
	for k, s := range segments {
		first[s[0]] = tangents[k]
		second[s[1]] = tangents[k]
	}

	normals := make([][]float64, n)
	for i := 0; i < n; i++ {
		dx := first[i][0] + second[i][0]
		dy := first[i][1] + second[i][1]
		ll := math.Max(math.Hypot(dx, dy), eps)
		if perpendicular {
			normals[i] = []float64{-dy / ll, dx / ll}
		} else {
			normals[i] = []float64{dx / ll, dy / ll}
		}
	}
	return normals, nil
}
