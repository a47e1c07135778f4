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

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform samples random values from the interval [xMin, xMax].
type Uniform struct {
	dist distuv.Uniform
}

var _ Sampler = (*Uniform)(nil)

// NewUniform returns an instance of the Uniform sampler.
// It accepts lower and upper bounds on the sampled values and a
// random source; a nil source selects the package-global stream.
// It returns an error when the bounds are inverted or not finite.
func NewUniform(xMin, xMax float64, src rand.Source) (*Uniform, error) {
	if !isFinite(xMin) || !isFinite(xMax) || xMin > xMax {
		return nil, errors.Wrapf(ErrBounds, "uniform needs xMin <= xMax, got [%v, %v]", xMin, xMax)
	}

	return &Uniform{
		dist: distuv.Uniform{Min: xMin, Max: xMax, Src: src},
	}, nil
}

// Sample draws n uniformly distributed values from [xMin, xMax].
// An n of zero yields an empty slice; a negative n is an error.
func (u *Uniform) Sample(n int) ([]float64, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "n = %d", n)
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = u.dist.Rand()
	}

	return x, nil
}
