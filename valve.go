package contourgeom

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/cardioscan/contourgeom/internal/fsutil"
)

// Track is a landmark track indexed frame x landmark x coordinate. Zero
// entries denote missing samples, not valid zero coordinates; this is a
// legacy convention of the upstream data and is preserved for
// compatibility even though it conflates the two.
type Track [][][]float64

// Landmark variable names in the per-file valve tables.
const (
	KeyMitral    = "point_coords_mv"
	KeyTricuspid = "point_coords_tv"
	KeyAortic    = "point_coords_av"
	KeyPulmonary = "point_coords_pv"
)

// ValveFilePattern matches the per-view valve motion files within a folder.
const ValveFilePattern = "valve-motion-predicted-LA_[0-9]CH.json"

// LandmarkTable maps landmark variable names to their tracks.
type LandmarkTable map[string]Track

// TableStore loads named landmark tables from an external per-file store.
type TableStore interface {
	// List returns the store paths under dir holding valve tables.
	List(dir string) ([]string, error)

	// Load reads the landmark table at path.
	Load(path string) (LandmarkTable, error)
}

// FileTableStore reads JSON-encoded landmark tables from a filesystem,
// matching ValveFilePattern. A nil FS falls back to the host filesystem.
type FileTableStore struct {
	FS fsutil.FileSystem
}

func (s FileTableStore) fsys() fsutil.FileSystem {
	if s.FS == nil {
		return fsutil.OSFileSystem{}
	}
	return s.FS
}

// List returns the valve table files under dir in lexical order.
func (s FileTableStore) List(dir string) ([]string, error) {
	return s.fsys().Glob(filepath.Join(dir, ValveFilePattern))
}

// Load reads and decodes the landmark table at path.
func (s FileTableStore) Load(path string) (LandmarkTable, error) {
	data, err := s.fsys().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var table LandmarkTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, nil
}

// InterpolateTrack resamples a sparse, zero-padded track onto targetFrames
// uniformly spaced frames. Each (landmark, coordinate) pair is handled
// independently: zero entries are dropped and the remaining samples are
// linearly interpolated, parameterised uniformly over the fixed [1,100]
// domain the upstream tracks use. A pair whose samples are all zero stays
// all zero; a pair with a single sample holds that constant. Ragged input
// or a non-positive targetFrames fails with ErrShape.
func InterpolateTrack(samples Track, targetFrames int) (Track, error) {
	if targetFrames < 1 {
		return nil, fmt.Errorf("interpolate track: target frame count %d: %w", targetFrames, ErrShape)
	}
	if len(samples) == 0 || len(samples[0]) == 0 {
		return nil, fmt.Errorf("interpolate track: empty track: %w", ErrShape)
	}
	rows := len(samples[0])
	cols := len(samples[0][0])
	for f, frame := range samples {
		if len(frame) != rows {
			return nil, fmt.Errorf("interpolate track: frame %d has %d landmarks, want %d: %w", f, len(frame), rows, ErrShape)
		}
		for i, lm := range frame {
			if len(lm) != cols {
				return nil, fmt.Errorf("interpolate track: frame %d landmark %d has %d coordinates, want %d: %w", f, i, len(lm), cols, ErrShape)
			}
		}
	}

	out := make(Track, targetFrames)
	for f := range out {
		out[f] = make([][]float64, rows)
		for i := range out[f] {
			out[f][i] = make([]float64, cols)
		}
	}

	query := paramGrid(targetFrames)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			vals := make([]float64, 0, len(samples))
			for f := range samples {
				if v := samples[f][i][j]; v != 0 {
					vals = append(vals, v)
				}
			}
			switch len(vals) {
			case 0:
				// All samples missing: output stays zero.
			case 1:
				for f := range out {
					out[f][i][j] = vals[0]
				}
			default:
				var pl interp.PiecewiseLinear
				if err := pl.Fit(paramGrid(len(vals)), vals); err != nil {
					return nil, fmt.Errorf("interpolate track: landmark %d coordinate %d: %w", i, j, err)
				}
				for f, q := range query {
					out[f][i][j] = pl.Predict(q)
				}
			}
		}
	}
	return out, nil
}

// paramGrid returns n points uniformly spaced over the fixed [1,100]
// interpolation parameter domain.
func paramGrid(n int) []float64 {
	if n == 1 {
		return []float64{1}
	}
	return floats.Span(make([]float64, n), 1, 100)
}

// CompileValvePoints aggregates valve landmark tracks from the matched files
// under dir, resamples each onto numFrames frames, and extracts frame
// frameNum. The mitral track must appear in every file and is stacked per
// file (files x landmarks x coordinates); the tricuspid, aortic and
// pulmonary tracks are looked up by name across files, first match wins,
// and default to a 2x3 zero placeholder when absent from every file so
// downstream code can rely on fixed shapes.
func CompileValvePoints(store TableStore, dir string, numFrames, frameNum int) (mv Track, tv, av, pv [][]float64, err error) {
	if frameNum < 0 || frameNum >= numFrames {
		return nil, nil, nil, nil, fmt.Errorf("compile valve points: frame %d outside [0,%d): %w", frameNum, numFrames, ErrShape)
	}

	paths, err := store.List(dir)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("list valve tables in %s: %w", dir, err)
	}
	tables := make([]LandmarkTable, len(paths))
	for i, p := range paths {
		if tables[i], err = store.Load(p); err != nil {
			return nil, nil, nil, nil, err
		}
	}

	mv = make(Track, 0, len(tables))
	for i, table := range tables {
		track, ok := table[KeyMitral]
		if !ok {
			return nil, nil, nil, nil, fmt.Errorf("%s: missing %s: %w", paths[i], KeyMitral, ErrShape)
		}
		resampled, err := InterpolateTrack(track, numFrames)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("%s: %s: %w", paths[i], KeyMitral, err)
		}
		mv = append(mv, resampled[frameNum])
	}

	if tv, err = resampleNamedValve(tables, KeyTricuspid, numFrames, frameNum); err != nil {
		return nil, nil, nil, nil, err
	}
	if av, err = resampleNamedValve(tables, KeyAortic, numFrames, frameNum); err != nil {
		return nil, nil, nil, nil, err
	}
	if pv, err = resampleNamedValve(tables, KeyPulmonary, numFrames, frameNum); err != nil {
		return nil, nil, nil, nil, err
	}
	return mv, tv, av, pv, nil
}

// resampleNamedValve resamples the first track found under key across the
// tables and extracts the requested frame. Absence from every table is not
// an error; it resolves to the documented 2x3 zero placeholder.
func resampleNamedValve(tables []LandmarkTable, key string, numFrames, frameNum int) ([][]float64, error) {
	for _, table := range tables {
		track, ok := table[key]
		if !ok {
			continue
		}
		resampled, err := InterpolateTrack(track, numFrames)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return resampled[frameNum], nil
	}
	if len(tables) > 0 {
		log.Printf("valve: %s absent from all %d source files; using zero placeholder", key, len(tables))
	}
	return [][]float64{{0, 0, 0}, {0, 0, 0}}, nil
}
