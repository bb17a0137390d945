// Copyright 2026 Ewout Prangsma
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Author Ewout Prangsma
//

package model

import (
	"strings"
)

// Level is the electrical level of a digital output pin.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// Invert returns the opposite level.
func (l Level) Invert() Level {
	return !l
}

// Bool returns true for High.
func (l Level) Bool() bool {
	return bool(l)
}

// Int returns 1 for High, 0 for Low.
func (l Level) Int() int {
	if l {
		return 1
	}
	return 0
}

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

// MarshalText encodes the level as "high" or "low".
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes "high"/"low" (or "1"/"0").
func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "high", "1":
		*l = High
	case "low", "0":
		*l = Low
	default:
		return Causef(ValidationError, "invalid level '%s'", string(text))
	}
	return nil
}
