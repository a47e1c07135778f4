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

package kepler

// Physical constants in CGS units. Solar values follow
// Bahcall et al., ApJ 618 (2005) 1049-1056.
const (
	// GravConst is the gravitational constant (g^-1 cm^3 s^-2).
	GravConst = 6.67428e-8
	// Msun is the solar mass (g).
	Msun = 1.9892e33
	// Rsun is the solar radius (cm).
	Rsun = 6.9598e10
	// SecondsPerDay converts days to seconds.
	SecondsPerDay = 86400.0
)
