package contourgeom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FitLine3D fits a line through a 3D point cloud and returns the per-point
// residuals. The line passes through the centroid along the direction of
// greatest variance, the first right-singular vector of the centered
// coordinates. Each residual is the Euclidean distance between a point and
// its reconstruction on the fitted line. Fewer than 2 points or non-3D rows
// fail with ErrShape.
func FitLine3D(points [][]float64) ([]float64, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("fit line: need at least 2 points, got %d: %w", len(points), ErrShape)
	}
	for i, row := range points {
		if len(row) != 3 {
			return nil, fmt.Errorf("fit line: row %d has %d coordinates, want 3: %w", i, len(row), ErrShape)
		}
	}

	n := len(points)
	var centroid [3]float64
	for _, row := range points {
		for k, v := range row {
			centroid[k] += v
		}
	}
	for k := range centroid {
		centroid[k] /= float64(n)
	}

	centered := mat.NewDense(n, 3, nil)
	for i, row := range points {
		for k, v := range row {
			centered.Set(i, k, v-centroid[k])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, fmt.Errorf("fit line: SVD did not converge: %w", ErrDegenerateGeometry)
	}
	var v mat.Dense
	svd.VTo(&v)
	direction := []float64{v.At(0, 0), v.At(1, 0), v.At(2, 0)}

	residuals := make([]float64, n)
	for i := 0; i < n; i++ {
		t := floats.Dot(centered.RawRowView(i), direction)
		var sum float64
		for k := 0; k < 3; k++ {
			d := centroid[k] + t*direction[k] - points[i][k]
			sum += d * d
		}
		residuals[i] = math.Sqrt(sum)
	}
	return residuals, nil
}
