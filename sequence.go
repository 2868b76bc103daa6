package contourgeom

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PointDistances returns the Euclidean distance from each point to its
// successor, treating the sequence as cyclic: the last point's successor is
// the first point. A single point yields the one distance to itself (zero).
func PointDistances(points [][]float64) []float64 {
	n := len(points)
	distances := make([]float64, n)
	for i := 0; i < n; i++ {
		distances[i] = floats.Distance(points[i], points[(i+1)%n], 2)
	}
	return distances
}

// DetectInsertionGap locates an anomalously large consecutive-point distance
// in a densely sampled contour, marking an anatomical insertion point. A gap
// is significant when its cyclic distance exceeds mean + 3 sample standard
// deviations (Bessel-corrected). Returns the index pair spanning the single
// largest gap, with the wrap distance pairing index n-1 with index 0, or nil
// when no distance exceeds the threshold.
func DetectInsertionGap(points [][]float64) []int {
	distances := PointDistances(points)
	if len(distances) == 0 {
		return nil
	}

	upper := stat.Mean(distances, nil) + 3*stat.StdDev(distances, nil)
	exceeds := false
	for _, d := range distances {
		if d > upper {
			exceeds = true
			break
		}
	}
	if !exceeds {
		return nil
	}

	largest := floats.MaxIdx(distances)
	if largest == len(points)-1 {
		return []int{0, largest}
	}
	return []int{largest, largest + 1}
}

// RemoveFarPoints removes points that are far from the majority of a cyclic
// contour. A distance is flagged when it exceeds mean + 2 population
// standard deviations. Only points far from both neighbours are removed:
// a flagged index adjacent to the next flagged index marks its shared point,
// and a flagged run wrapping from the last distance index back to index 0
// marks the first point. Points far from a single neighbour are retained; a
// true outlier breaks two segments, not one. Sets of two or fewer points are
// returned unchanged.
func RemoveFarPoints(points [][]float64) [][]float64 {
	if len(points) <= 2 {
		return points
	}

	distances := PointDistances(points)
	upper := stat.Mean(distances, nil) + 2*stat.PopStdDev(distances, nil)

	var far []int
	for i, d := range distances {
		if d > upper {
			far = append(far, i)
		}
	}
	if len(far) < 2 {
		return points
	}

	last := far[len(far)-1]
	var remove []int
	for i := 0; i < len(far)-1; i++ {
		switch {
		case far[i] == 0 && last == len(points)-1:
			remove = append(remove, far[i])
		case far[i+1]-far[i] == 1:
			remove = append(remove, far[i+1])
		}
	}
	return SafeDelete(points, remove, Rows)
}
