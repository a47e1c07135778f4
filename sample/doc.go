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

// Package sample includes samplers for drawing random values
// from bounded probability distributions.
//
// Package sample provides the Sampler interface
// along with implementations of this interface for the
// power-law and uniform distributions, both realized through
// inverse-transform sampling. Its primary purpose is support
// for drawing the initial conditions of synthetic binary
// populations: primary masses, mass ratios and orbital periods.
//
// Every sampler owns an optional random source. Samplers built
// from the same seeded source draw identical sequences, which is
// the basis of the reproducibility guarantee offered by the
// population package. A sampler with a nil source draws from the
// shared package-global stream and is not reproducible. Sources
// are not safe for concurrent use; callers that sample from
// multiple goroutines must give each goroutine its own source.
package sample
