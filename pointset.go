package contourgeom

import (
	"fmt"
	"slices"
)

// Axis selects the dimension SafeDelete removes from.
type Axis int

const (
	// Rows deletes whole points from the table.
	Rows Axis = iota
	// Cols deletes coordinate columns from every row.
	Cols
)

// SafeDelete returns table with the given row or column indices removed.
// Unlike a naive deletion primitive it tolerates empty inputs: an empty
// table or an empty index list returns the table unchanged. Out-of-range
// and duplicate indices are ignored.
func SafeDelete(table [][]float64, indices []int, axis Axis) [][]float64 {
	if len(table) == 0 || len(indices) == 0 {
		return table
	}

	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		drop[idx] = true
	}

	if axis == Cols {
		out := make([][]float64, len(table))
		for i, row := range table {
			kept := make([]float64, 0, len(row))
			for j, v := range row {
				if !drop[j] {
					kept = append(kept, v)
				}
			}
			out[i] = kept
		}
		return out
	}

	out := make([][]float64, 0, len(table))
	for i, row := range table {
		if !drop[i] {
			out = append(out, row)
		}
	}
	return out
}

// SharedRows returns the rows common to a and b by exact value match, along
// with the index lists into a and b of the matched rows. Matching pairs rows
// first-come in row-major scan order and never reuses a row already matched.
// Either input being empty yields three empty results. The scan is quadratic
// in row count, which is fine for the expected point-set sizes (tens of
// points); a hashed join would be warranted beyond a few hundred rows.
func SharedRows(a, b [][]float64) (shared [][]float64, aIdx, bIdx []int, err error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, nil, nil
	}
	if len(a[0]) != len(b[0]) {
		return nil, nil, nil, fmt.Errorf("shared rows: column counts %d and %d differ: %w", len(a[0]), len(b[0]), ErrShape)
	}

	matchedB := make(map[int]bool, len(b))
	for i, row := range a {
		for j, other := range b {
			if matchedB[j] {
				continue
			}
			if slices.Equal(row, other) {
				aIdx = append(aIdx, i)
				bIdx = append(bIdx, j)
				matchedB[j] = true
				break
			}
		}
	}

	shared = make([][]float64, len(aIdx))
	for k, i := range aIdx {
		shared[k] = a[i]
	}
	return shared, aIdx, bIdx, nil
}

// RemoveZeroRows returns the rows of table where at least one coordinate is
// non-zero.
func RemoveZeroRows(table [][]float64) [][]float64 {
	out := make([][]float64, 0, len(table))
	for _, row := range table {
		for _, v := range row {
			if v != 0 {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
