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

package population_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binrates-project/binrates/population"
	"github.com/binrates-project/binrates/sample"
)

func seedPtr(s int64) *int64 {
	return &s
}

func pdfPtr(p population.PDF) *population.PDF {
	return &p
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestPopulationDeterminism(t *testing.T) {
	cfg := population.Config{Number: 1000, Seed: seedPtr(42)}

	first, err := population.New(cfg, nil)
	require.NoError(t, err)
	second, err := population.New(cfg, nil)
	require.NoError(t, err)

	require.Len(t, first.Primaries, 1000)
	require.Len(t, first.MassRatios, 1000)
	require.Len(t, first.Periods, 1000)

	assert.Equal(t, first.Primaries, second.Primaries)
	assert.Equal(t, first.MassRatios, second.MassRatios)
	assert.Equal(t, first.Periods, second.Periods)
}

func TestPopulationWithoutSeed(t *testing.T) {
	cfg := population.Config{Number: 500}

	first, err := population.New(cfg, nil)
	require.NoError(t, err)
	second, err := population.New(cfg, nil)
	require.NoError(t, err)

	require.Len(t, first.Primaries, 500)
	require.Len(t, second.Primaries, 500)

	// 500 unseeded draws matching element-wise is vanishingly unlikely
	assert.NotEqual(t, first.Primaries, second.Primaries)
}

func TestPopulationNegativeNumber(t *testing.T) {
	cfg := population.Config{Number: -5, Seed: seedPtr(1)}

	p, err := population.New(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, population.DefaultNumber, p.Len())
	assert.Len(t, p.Primaries, population.DefaultNumber)
	assert.Len(t, p.MassRatios, population.DefaultNumber)
	assert.Len(t, p.Periods, population.DefaultNumber)
}

func TestPopulationFieldBounds(t *testing.T) {
	p, err := population.New(population.Config{Number: 2000, Seed: seedPtr(3)}, nil)
	require.NoError(t, err)

	for _, m := range p.Primaries {
		assert.True(t, m >= 1*(1-1e-12) && m <= 150*(1+1e-12), "primary mass %v outside of [1, 150]", m)
	}
	for _, q := range p.MassRatios {
		assert.True(t, q >= 1e-2 && q <= 1, "mass ratio %v outside of [1e-2, 1]", q)
	}
	for _, per := range p.Periods {
		assert.True(t, per >= 1.412537545*(1-1e-9) && per <= 316227.766*(1+1e-9),
			"orbital period %v outside of the default bounds", per)
	}
}

func TestPopulationUnknownPDF(t *testing.T) {
	cfg := population.Config{
		Number: 100,
		Seed:   seedPtr(1),
		Fields: map[string]population.FieldOverride{
			population.FieldPrimary: {PDF: pdfPtr("Kroupa")},
		},
	}

	p, err := population.New(cfg, nil)
	require.NoError(t, err)

	assert.Nil(t, p.Primaries)
	assert.Len(t, p.MassRatios, 100)
	assert.Len(t, p.Periods, 100)
	assert.Nil(t, p.Array())
}

func TestPopulationOverrideBounds(t *testing.T) {
	cfg := population.Config{
		Number: 1000,
		Seed:   seedPtr(5),
		Fields: map[string]population.FieldOverride{
			population.FieldPrimary: {Min: floatPtr(5), Max: floatPtr(20)},
			// unrecognized field names are logged and ignored
			"Eccentricity": {Min: floatPtr(0)},
		},
	}

	p, err := population.New(cfg, nil)
	require.NoError(t, err)

	for _, m := range p.Primaries {
		assert.True(t, m >= 5*(1-1e-12) && m <= 20*(1+1e-12),
			"primary mass %v outside of the overridden bounds [5, 20]", m)
	}
	// defaults kept for the untouched fields
	for _, q := range p.MassRatios {
		assert.True(t, q >= 1e-2 && q <= 1)
	}
}

func TestPopulationMalformedBounds(t *testing.T) {
	cfg := population.Config{
		Number: 10,
		Fields: map[string]population.FieldOverride{
			population.FieldPrimary: {Min: floatPtr(-1)},
		},
	}
	_, err := population.New(cfg, nil)
	assert.ErrorIs(t, err, sample.ErrBounds)

	// a period bound at or below one day has a non-positive log10
	cfg = population.Config{
		Number: 10,
		Fields: map[string]population.FieldOverride{
			population.FieldOrbitalPeriod: {Min: floatPtr(0.5)},
		},
	}
	_, err = population.New(cfg, nil)
	assert.ErrorIs(t, err, sample.ErrBounds)
}

func TestPopulationArray(t *testing.T) {
	p, err := population.New(population.Config{Number: 10, Seed: seedPtr(9)}, nil)
	require.NoError(t, err)

	a := p.Array()
	require.NotNil(t, a)

	rows, cols := a.Dims()
	assert.Equal(t, 10, rows)
	assert.Equal(t, 3, cols)

	for i := 0; i < rows; i++ {
		assert.Equal(t, p.Primaries[i], a.At(i, 0))
		assert.Equal(t, p.MassRatios[i], a.At(i, 1))
		assert.Equal(t, p.Periods[i], a.At(i, 2))
	}
}

func TestPopulationEmpty(t *testing.T) {
	p, err := population.New(population.Config{Number: 0, Seed: seedPtr(1)}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Len())
	assert.Len(t, p.Primaries, 0)
	assert.Nil(t, p.Array())
}
