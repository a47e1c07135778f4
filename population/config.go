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

import "log/slog"

// PDF names a probability density function recognized by the
// population generator.
type PDF string

// Recognized probability density functions. Each population field
// accepts a subset of these; a field configured with any other name
// yields a nil sequence for that field.
const (
	// Salpeter is the power-law initial mass function with
	// slope -2.35, used for primary masses.
	Salpeter PDF = "Salpeter"
	// Uniform is the flat distribution, used for mass ratios.
	Uniform PDF = "Uniform"
	// Sana is the power-law distribution of log10 orbital periods
	// with slope -0.55, used for orbital periods.
	Sana PDF = "Sana"
)

// Power-law slopes bound to the named PDFs.
const (
	SalpeterSlope = -2.35
	SanaSlope     = -0.55
)

// Names of the three population fields.
const (
	FieldPrimary       = "Primary"
	FieldMassRatio     = "MassRatio"
	FieldOrbitalPeriod = "OrbitalPeriod"
)

// FieldConfig is the effective sampling configuration of one
// population field: the PDF to draw from and the bounds of its
// support. Orbital-period bounds are given in days; the Sana PDF
// transforms them to log10 space before sampling.
type FieldConfig struct {
	PDF PDF
	Min float64
	Max float64
}

// FieldOverride is a partial FieldConfig. Nil members keep the
// built-in default for the field.
type FieldOverride struct {
	PDF *PDF
	Min *float64
	Max *float64
}

// defaultFields returns the built-in sampling configuration of the
// three population fields: a Salpeter IMF on [1, 150] Msun, a
// uniform mass-ratio distribution on [1e-2, 1], and a Sana period
// distribution on [1.412537545, 316227.766] days (10^0.15 to 10^5.5,
// sampled in log10-period space).
func defaultFields() map[string]FieldConfig {
	return map[string]FieldConfig{
		FieldPrimary:       {PDF: Salpeter, Min: 1, Max: 150},
		FieldMassRatio:     {PDF: Uniform, Min: 1e-2, Max: 1},
		FieldOrbitalPeriod: {PDF: Sana, Min: 1.412537545, Max: 316227.766},
	}
}

// resolveFields merges per-field overrides into the built-in
// defaults and returns the effective configuration of every field.
// Overrides for unrecognized field names are logged and ignored;
// nil members of an override keep the default. The merge is
// deterministic and order-independent across fields.
func resolveFields(overrides map[string]FieldOverride, logger *slog.Logger) map[string]FieldConfig {
	fields := defaultFields()

	for name, ov := range overrides {
		cur, ok := fields[name]
		if !ok {
			logger.Warn("ignoring unrecognized population field", "field", name)
			continue
		}

		if ov.PDF != nil {
			cur.PDF = *ov.PDF
		}
		if ov.Min != nil {
			cur.Min = *ov.Min
		}
		if ov.Max != nil {
			cur.Max = *ov.Max
		}
		fields[name] = cur
	}

	return fields
}
