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

// Package config loads the YAML configuration file and maps it onto
// the typed configurations consumed by the population package.
//
// All coercion of loosely-typed scalars happens here, at the
// boundary: a number or seed that cannot be read as an integer is
// logged and replaced by its documented fallback instead of
// aborting the run, while a file that does not parse at all is a
// fatal error.
package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/binrates-project/binrates/population"
)

// Document is the top-level configuration file.
type Document struct {
	BinaryPopulation PopulationSection `yaml:"BinaryPopulation"`
	TargetRegion     RegionSection     `yaml:"TargetRegion"`
}

// PopulationSection configures the random binary population. Field
// keys follow the historical file format.
type PopulationSection struct {
	Number Scalar `yaml:"number"`
	Seed   Scalar `yaml:"seed"`

	Primary       FieldSection `yaml:"Primary"`
	MassRatio     FieldSection `yaml:"MassRatio"`
	OrbitalPeriod FieldSection `yaml:"OrbitalPeriod"`
}

// FieldSection overrides the PDF configuration of one population
// field. Only the bound keys matching the field are consulted:
// min_mass/max_mass for Primary, min_mass_ratio/max_mass_ratio for
// MassRatio, min_period/max_period for OrbitalPeriod.
type FieldSection struct {
	PDF *string `yaml:"pdf"`

	MinMass      *float64 `yaml:"min_mass"`
	MaxMass      *float64 `yaml:"max_mass"`
	MinMassRatio *float64 `yaml:"min_mass_ratio"`
	MaxMassRatio *float64 `yaml:"max_mass_ratio"`
	MinPeriod    *float64 `yaml:"min_period"`
	MaxPeriod    *float64 `yaml:"max_period"`
}

// RegionSection configures the target region.
type RegionSection struct {
	LoadFromFile bool   `yaml:"load_from_file"`
	Filename     string `yaml:"fname"`
	MakeTest     bool   `yaml:"make_test_with_figure"`
	Shape        string `yaml:"shape_of_figure"`

	XMin *float64 `yaml:"xmin"`
	XMax *float64 `yaml:"xmax"`
	DX   *float64 `yaml:"dx"`
	YMin *float64 `yaml:"ymin"`
	YMax *float64 `yaml:"ymax"`
	DY   *float64 `yaml:"dy"`
	ZMin *float64 `yaml:"zmin"`
	ZMax *float64 `yaml:"zmax"`
	DZ   *float64 `yaml:"dz"`
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening configuration file")
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader parses a YAML configuration document from r.
func LoadReader(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding YAML configuration")
	}

	return &doc, nil
}

// PopulationConfig maps the BinaryPopulation section onto a
// population.Config. A number or seed that is missing or cannot be
// coerced to an integer is logged and falls back to its default
// (population.DefaultNumber, respectively no seed). A nil logger
// falls back to slog.Default().
func (d *Document) PopulationConfig(logger *slog.Logger) population.Config {
	if logger == nil {
		logger = slog.Default()
	}
	sec := d.BinaryPopulation

	cfg := population.Config{Number: population.DefaultNumber}
	if sec.Number.IsSet() {
		if n, ok := sec.Number.Int(); ok {
			cfg.Number = int(n)
		} else {
			logger.Error("the number of random binaries must be an integer or a float, using default",
				"number", sec.Number.Raw(), "default", population.DefaultNumber)
		}
	} else {
		logger.Debug("number of random binaries not given, using default",
			"default", population.DefaultNumber)
	}

	if sec.Seed.IsSet() {
		if s, ok := sec.Seed.Int(); ok {
			cfg.Seed = &s
		} else {
			logger.Error("the seed for random draws must be an integer or a float, draws will not be reproducible",
				"seed", sec.Seed.Raw())
		}
	}

	cfg.Fields = map[string]population.FieldOverride{
		population.FieldPrimary:       fieldOverride(sec.Primary.PDF, sec.Primary.MinMass, sec.Primary.MaxMass),
		population.FieldMassRatio:     fieldOverride(sec.MassRatio.PDF, sec.MassRatio.MinMassRatio, sec.MassRatio.MaxMassRatio),
		population.FieldOrbitalPeriod: fieldOverride(sec.OrbitalPeriod.PDF, sec.OrbitalPeriod.MinPeriod, sec.OrbitalPeriod.MaxPeriod),
	}

	return cfg
}

// RegionConfig maps the TargetRegion section onto a
// population.RegionConfig, filling absent shape bounds with the
// unit-cube defaults.
func (d *Document) RegionConfig() population.RegionConfig {
	sec := d.TargetRegion

	params := population.DefaultShapeParams()
	setFloat(&params.XMin, sec.XMin)
	setFloat(&params.XMax, sec.XMax)
	setFloat(&params.DX, sec.DX)
	setFloat(&params.YMin, sec.YMin)
	setFloat(&params.YMax, sec.YMax)
	setFloat(&params.DY, sec.DY)
	setFloat(&params.ZMin, sec.ZMin)
	setFloat(&params.ZMax, sec.ZMax)
	setFloat(&params.DZ, sec.DZ)

	return population.RegionConfig{
		LoadFromFile: sec.LoadFromFile,
		Filename:     sec.Filename,
		MakeTest:     sec.MakeTest,
		Shape:        sec.Shape,
		Params:       params,
	}
}

// BuildPopulation loads the configuration file at path and
// generates the binary population it describes.
func BuildPopulation(path string, logger *slog.Logger) (*population.Population, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	return population.New(doc.PopulationConfig(logger), logger)
}

// BuildTargetRegion loads the configuration file at path and builds
// the target region it describes.
func BuildTargetRegion(path string, logger *slog.Logger) (*population.TargetRegion, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	return population.NewTargetRegion(doc.RegionConfig(), logger)
}

func fieldOverride(pdf *string, min, max *float64) population.FieldOverride {
	return population.FieldOverride{
		PDF: (*population.PDF)(pdf),
		Min: min,
		Max: max,
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
