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

// Package kepler provides stateless orbital-mechanics conversions
// between period, separation and orbital frequency for binary
// systems, following Kepler's third law. Inputs and outputs use
// solar masses, solar radii and days; the arithmetic is carried
// out in CGS internally.
package kepler

import "math"

// PeriodToSeparation returns the separation in Rsun of a binary
// with orbital period periodDays (days) and component masses
// m1, m2 (Msun).
func PeriodToSeparation(periodDays, m1, m2 float64) float64 {
	p := periodDays * SecondsPerDay
	mTot := (m1 + m2) * Msun

	pOver2Pi := p / (2 * math.Pi)
	a := math.Cbrt(GravConst * mTot * pOver2Pi * pOver2Pi)

	return a / Rsun
}

// SeparationToPeriod returns the orbital period in days of a binary
// with separation sepRsun (Rsun) and component masses m1, m2 (Msun).
// It is the exact inverse of PeriodToSeparation up to floating-point
// precision.
func SeparationToPeriod(sepRsun, m1, m2 float64) float64 {
	a := sepRsun * Rsun
	mTot := (m1 + m2) * Msun

	p := 2 * math.Pi * math.Sqrt(a*a*a/(GravConst*mTot))

	return p / SecondsPerDay
}

// SeparationToFrequency returns the orbital frequency in Hz of a
// binary with separation sepRsun (Rsun) and component masses
// m1, m2 (Msun).
func SeparationToFrequency(sepRsun, m1, m2 float64) float64 {
	a := sepRsun * Rsun
	mTot := (m1 + m2) * Msun

	return math.Sqrt(GravConst*mTot/(a*a*a)) / (2 * math.Pi)
}

// PeriodToSeparationTo computes PeriodToSeparation element-wise over
// equal-length slices, storing the result in dst and returning it.
// A nil dst is allocated; otherwise all slices must have equal
// length or the call panics.
func PeriodToSeparationTo(dst, periodDays, m1, m2 []float64) []float64 {
	dst = prepare(dst, periodDays, m1, m2)
	for i := range periodDays {
		dst[i] = PeriodToSeparation(periodDays[i], m1[i], m2[i])
	}

	return dst
}

// SeparationToPeriodTo computes SeparationToPeriod element-wise over
// equal-length slices, storing the result in dst and returning it.
// A nil dst is allocated; otherwise all slices must have equal
// length or the call panics.
func SeparationToPeriodTo(dst, sepRsun, m1, m2 []float64) []float64 {
	dst = prepare(dst, sepRsun, m1, m2)
	for i := range sepRsun {
		dst[i] = SeparationToPeriod(sepRsun[i], m1[i], m2[i])
	}

	return dst
}

// SeparationToFrequencyTo computes SeparationToFrequency element-wise
// over equal-length slices, storing the result in dst and returning
// it. A nil dst is allocated; otherwise all slices must have equal
// length or the call panics.
func SeparationToFrequencyTo(dst, sepRsun, m1, m2 []float64) []float64 {
	dst = prepare(dst, sepRsun, m1, m2)
	for i := range sepRsun {
		dst[i] = SeparationToFrequency(sepRsun[i], m1[i], m2[i])
	}

	return dst
}

func prepare(dst, x, m1, m2 []float64) []float64 {
	if len(x) != len(m1) || len(x) != len(m2) {
		panic("kepler: slice length mismatch")
	}
	if dst == nil {
		return make([]float64, len(x))
	}
	if len(dst) != len(x) {
		panic("kepler: slice length mismatch")
	}

	return dst
}
