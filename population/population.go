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

// Package population generates synthetic populations of binary
// stars by drawing primary masses, mass ratios and orbital periods
// from configurable probability density functions, and builds the
// target regions of parameter space against which population-derived
// rates are compared.
package population

import (
	"golang.org/x/exp/rand"
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/binrates-project/binrates/sample"
)

// DefaultNumber is the number of binaries generated when the
// configured number is invalid.
const DefaultNumber = 100000

// Config holds the parameters for generating a binary population.
type Config struct {
	// Number of random binaries in the population. A negative
	// value falls back to DefaultNumber.
	Number int
	// Seed for pseudo-random draws. A nil seed leaves the draws
	// non-deterministic.
	Seed *int64
	// Fields maps field names (Primary, MassRatio, OrbitalPeriod)
	// to partial overrides of their default sampling configuration.
	Fields map[string]FieldOverride
}

// Population is a random sample population of binaries characterized
// by masses, mass ratios and orbital periods. The three sequences
// are aligned: index i across all of them describes one synthetic
// binary. A Population is immutable after construction.
//
// A field whose configured PDF was not recognized is nil; the
// remaining fields are still populated.
type Population struct {
	Number int
	Seed   *int64

	// Primaries holds primary masses in Msun.
	Primaries []float64
	// MassRatios holds mass ratios q; companion masses are
	// defined as primary * q.
	MassRatios []float64
	// Periods holds orbital periods in days.
	Periods []float64
}

// New generates a binary population from cfg. A nil logger falls
// back to slog.Default().
//
// Draws are reproducible: two calls with the same configuration,
// including a non-nil seed, produce identical sequences. Fields are
// always sampled in the order Primary, MassRatio, OrbitalPeriod,
// which makes the order part of the reproducibility contract.
// Without a seed the draws come from the shared global stream and
// differ between runs.
//
// An unrecognized PDF name degrades the affected field to nil and
// is logged, while malformed sampling bounds abort generation with
// an error; silently clamping them would corrupt the statistics of
// every downstream consumer.
func New(cfg Config, logger *slog.Logger) (*Population, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("generating binary population")

	number := cfg.Number
	if number < 0 {
		logger.Error("the number of random binaries must be non-negative, using default",
			"number", cfg.Number, "default", DefaultNumber)
		number = DefaultNumber
	}

	// one source per generation, built before any sampling
	var src rand.Source
	if cfg.Seed != nil {
		src = sample.NewSource(*cfg.Seed)
	}

	fields := resolveFields(cfg.Fields, logger)

	p := &Population{
		Number: number,
		Seed:   cfg.Seed,
	}

	var err error
	if p.Primaries, err = samplePrimaries(fields[FieldPrimary], number, src, logger); err != nil {
		return nil, err
	}
	if p.MassRatios, err = sampleMassRatios(fields[FieldMassRatio], number, src, logger); err != nil {
		return nil, err
	}
	if p.Periods, err = samplePeriods(fields[FieldOrbitalPeriod], number, src, logger); err != nil {
		return nil, err
	}

	return p, nil
}

// Len returns the number of binaries in the population.
func (p *Population) Len() int {
	return p.Number
}

// Array returns the row-stacked population as a Number x 3 matrix
// with columns primary mass, mass ratio and orbital period. It
// returns nil when the population is empty or any field is nil.
func (p *Population) Array() *mat.Dense {
	if p.Number == 0 || p.Primaries == nil || p.MassRatios == nil || p.Periods == nil {
		return nil
	}

	a := mat.NewDense(p.Number, 3, nil)
	a.SetCol(0, p.Primaries)
	a.SetCol(1, p.MassRatios)
	a.SetCol(2, p.Periods)

	return a
}

// samplePrimaries draws a set of initial primary masses.
func samplePrimaries(fc FieldConfig, n int, src rand.Source, logger *slog.Logger) ([]float64, error) {
	if fc.PDF != Salpeter {
		logger.Warn("unrecognized pdf for primary masses", "pdf", fc.PDF)
		return nil, nil
	}

	s, err := sample.NewPowerLaw(SalpeterSlope, fc.Min, fc.Max, src)
	if err != nil {
		return nil, errors.Wrap(err, "primary mass sampler")
	}

	return s.Sample(n)
}

// sampleMassRatios draws a set of initial mass ratios.
func sampleMassRatios(fc FieldConfig, n int, src rand.Source, logger *slog.Logger) ([]float64, error) {
	if fc.PDF != Uniform {
		logger.Warn("unrecognized pdf for mass ratios", "pdf", fc.PDF)
		return nil, nil
	}

	s, err := sample.NewUniform(fc.Min, fc.Max, src)
	if err != nil {
		return nil, errors.Wrap(err, "mass ratio sampler")
	}

	return s.Sample(n)
}

// samplePeriods draws a set of initial orbital periods. The Sana
// power law applies in log10-period space: the configured bounds in
// days are log10-transformed before sampling and the drawn values
// exponentiated back.
func samplePeriods(fc FieldConfig, n int, src rand.Source, logger *slog.Logger) ([]float64, error) {
	if fc.PDF != Sana {
		logger.Warn("unrecognized pdf for orbital periods", "pdf", fc.PDF)
		return nil, nil
	}

	s, err := sample.NewPowerLaw(SanaSlope, math.Log10(fc.Min), math.Log10(fc.Max), src)
	if err != nil {
		return nil, errors.Wrap(err, "orbital period sampler")
	}

	logP, err := s.Sample(n)
	if err != nil {
		return nil, err
	}
	for i := range logP {
		logP[i] = math.Pow(10, logP[i])
	}

	return logP, nil
}
