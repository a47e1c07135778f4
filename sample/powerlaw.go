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

package sample

import (
	"golang.org/x/exp/rand"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// PowerLaw samples random values whose density is proportional
// to x^alpha on the interval [xMin, xMax].
//
// Values are drawn by inverse-transform sampling: uniform draws on
// the transformed interval [xMin^(alpha+1), xMax^(alpha+1)] are
// mapped back through the inverse cumulative distribution
// u^(1/(alpha+1)).
type PowerLaw struct {
	alpha float64
	xMin  float64
	xMax  float64
	// uniform distribution over the transformed interval
	base distuv.Uniform
}

var _ Sampler = (*PowerLaw)(nil)

// NewPowerLaw returns an instance of the PowerLaw sampler.
// It accepts the exponent of the power law, lower and upper bounds
// on the sampled values, and a random source; a nil source selects
// the package-global stream.
//
// It returns an error when alpha equals -1 (the inverse transform
// divides by alpha+1) or when the bounds are not strictly positive,
// inverted, or not finite. These are treated as fatal rather than
// clamped, since sampling from them would corrupt every value drawn.
func NewPowerLaw(alpha, xMin, xMax float64, src rand.Source) (*PowerLaw, error) {
	if !isFinite(alpha) || alpha == -1 {
		return nil, errors.Wrapf(ErrExponent, "alpha = %v", alpha)
	}
	if !isFinite(xMin) || !isFinite(xMax) || xMin <= 0 || xMax <= 0 || xMin > xMax {
		return nil, errors.Wrapf(ErrBounds, "power law needs 0 < xMin <= xMax, got [%v, %v]", xMin, xMax)
	}

	pI := math.Pow(xMin, alpha+1)
	pF := math.Pow(xMax, alpha+1)
	if pI > pF {
		// alpha < -1 reverses the transformed interval
		pI, pF = pF, pI
	}

	return &PowerLaw{
		alpha: alpha,
		xMin:  xMin,
		xMax:  xMax,
		base:  distuv.Uniform{Min: pI, Max: pF, Src: src},
	}, nil
}

// Sample draws n values distributed according to the power law.
// All values lie in [xMin, xMax]. An n of zero yields an empty
// slice; a negative n is an error.
func (p *PowerLaw) Sample(n int) ([]float64, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "n = %d", n)
	}

	inv := 1 / (p.alpha + 1)
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Pow(p.base.Rand(), inv)
	}

	return x, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
