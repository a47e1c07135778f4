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

package config

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Scalar is an integer-valued configuration scalar tolerating the
// historical file format, where integers, floats and numeric
// strings were used interchangeably. Coercion happens in Int so
// that junk values can fall back instead of failing the parse.
type Scalar struct {
	raw string
	set bool
}

// UnmarshalYAML implements yaml.Unmarshaler. It never fails;
// malformed values are rejected later by Int.
func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	s.raw = value.Value
	s.set = value.Tag != "!!null"
	return nil
}

// IsSet reports whether the scalar was present and non-null in the
// document.
func (s Scalar) IsSet() bool {
	return s.set
}

// Raw returns the scalar as written in the document.
func (s Scalar) Raw() string {
	return s.raw
}

// Int coerces the scalar to an integer. Floats are truncated, the
// way the historical format read them. The second return value
// reports whether coercion succeeded.
func (s Scalar) Int() (int64, bool) {
	if !s.set {
		return 0, false
	}
	if n, err := strconv.ParseInt(s.raw, 10, 64); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s.raw, 64); err == nil {
		return int64(f), true
	}

	return 0, false
}
