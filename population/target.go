/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package population

import (
	"log/slog"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrRegionSource signals a target region configured with
	// neither a file to load from nor a test figure to build.
	ErrRegionSource = errors.New("target region needs either a file or a test figure to build from")
	// ErrRegionFromFile signals the file-backed target region
	// mode, which is declared but not supported.
	ErrRegionFromFile = errors.New("target region from file is not supported")
)

// ShapeParams bounds a rectangular test figure in the three
// dimensions of binary parameter space, with a step per axis used
// to derive the number of grid points.
type ShapeParams struct {
	XMin, XMax, DX float64
	YMin, YMax, DY float64
	ZMin, ZMax, DZ float64
}

// DefaultShapeParams returns the unit cube with a step of 0.2 per
// axis, giving 5 points per axis and 125 grid points in total.
func DefaultShapeParams() ShapeParams {
	return ShapeParams{
		XMin: 0, XMax: 1, DX: 0.2,
		YMin: 0, YMax: 1, DY: 0.2,
		ZMin: 0, ZMax: 1, DZ: 0.2,
	}
}

// RegionConfig holds the parameters for building a target region.
// Exactly one of LoadFromFile and MakeTest must be set.
type RegionConfig struct {
	// LoadFromFile selects the file-backed mode. The mode is
	// declared but not supported and always fails.
	LoadFromFile bool
	// Filename of the file-backed target region.
	Filename string
	// MakeTest selects the test-figure mode.
	MakeTest bool
	// Shape names the test figure. The only option is "rectangle".
	Shape string
	// Params bounds the test figure.
	Params ShapeParams
}

// TargetRegion is the region in binary parameter space of initial
// masses, mass ratios and orbital periods over which rates are
// computed. It is immutable after construction.
type TargetRegion struct {
	points *mat.Dense
}

// NewTargetRegion builds a target region from cfg. A nil logger
// falls back to slog.Default().
//
// It returns ErrRegionSource when neither mode is selected and
// ErrRegionFromFile when the file-backed mode is; only the
// test-figure mode constructs a region.
func NewTargetRegion(cfg RegionConfig, logger *slog.Logger) (*TargetRegion, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("generating target region")

	if !cfg.LoadFromFile && !cfg.MakeTest {
		return nil, ErrRegionSource
	}
	if cfg.LoadFromFile {
		return nil, errors.Wrapf(ErrRegionFromFile, "fname %q", cfg.Filename)
	}

	points, err := testRegion(cfg.Params)
	if err != nil {
		return nil, err
	}

	return &TargetRegion{points: points}, nil
}

// Len returns the number of grid points in the region.
func (r *TargetRegion) Len() int {
	n, _ := r.points.Dims()
	return n
}

// Points returns the grid as a Len x 3 matrix of (x, y, z) rows.
// Rows are ordered with x varying slowest and z varying fastest.
func (r *TargetRegion) Points() *mat.Dense {
	return r.points
}

// testRegion builds the Cartesian product grid of the per-axis
// point sets bounded by p.
func testRegion(p ShapeParams) (*mat.Dense, error) {
	x, err := axisPoints(p.XMin, p.XMax, p.DX)
	if err != nil {
		return nil, errors.Wrap(err, "x axis")
	}
	y, err := axisPoints(p.YMin, p.YMax, p.DY)
	if err != nil {
		return nil, errors.Wrap(err, "y axis")
	}
	z, err := axisPoints(p.ZMin, p.ZMax, p.DZ)
	if err != nil {
		return nil, errors.Wrap(err, "z axis")
	}

	points := mat.NewDense(len(x)*len(y)*len(z), 3, nil)
	row := 0
	for _, xv := range x {
		for _, yv := range y {
			for _, zv := range z {
				points.SetRow(row, []float64{xv, yv, zv})
				row++
			}
		}
	}

	return points, nil
}

// axisPoints returns floor((max-min)/step) evenly spaced points
// spanning [min, max] inclusive. The step only derives the point
// count; the resulting spacing is (max-min)/(n-1).
func axisPoints(min, max, step float64) ([]float64, error) {
	n := int((max - min) / step)
	if n < 1 {
		return nil, errors.Errorf("step %v does not fit in range [%v, %v]", step, min, max)
	}
	if n == 1 {
		return []float64{min}, nil
	}

	return floats.Span(make([]float64, n), min, max), nil
}
