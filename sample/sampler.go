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
)

// Sampler is an interface for drawing n random values
// from a probability distribution.
type Sampler interface {
	Sample(n int) ([]float64, error)
}

var (
	// ErrExponent signals a power-law exponent of -1, for which
	// the inverse transform is undefined.
	ErrExponent = errors.New("power-law exponent must differ from -1")
	// ErrBounds signals sampling bounds that are not of the proper
	// form for the requested distribution.
	ErrBounds = errors.New("sampling bounds are not of the proper form")
	// ErrNegativeCount signals a request for a negative number
	// of samples.
	ErrNegativeCount = errors.New("number of samples must be non-negative")
)

// NewSource returns a deterministic random source for the given seed.
// Two sources built from the same seed produce identical streams, so
// samplers sharing such sources, called in the same order, draw
// identical values. A source must not be shared across goroutines.
func NewSource(seed int64) rand.Source {
	return rand.NewSource(uint64(seed))
}
