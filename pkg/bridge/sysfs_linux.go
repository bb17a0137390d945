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

package bridge

import (
	"github.com/ecc1/gpio"
	"github.com/rs/zerolog"

	"github.com/binkynet/Heartbeat/pkg/model"
)

const (
	// Heartbeat pins are driven active high.
	sysfsActiveLow = false
)

type sysfsBridge struct {
	*claims
}

// NewSysfsBridge claims the GPIO subsystem through /sys/class/gpio.
// Sysfs GPIO numbers equal BCM numbers on Raspberry Pi's.
func NewSysfsBridge(cfg Config, log zerolog.Logger) (API, error) {
	unlock, err := lockFile(cfg.LockFile)
	if err != nil {
		return nil, err
	}
	b := &sysfsBridge{
		claims: newClaims(TypeSysfs, log),
	}
	b.onRelease(unlock)
	return b, nil
}

// Output initializes a GPIO output pin with the given pin number
// and initial value.
func (b *sysfsBridge) Output(pinNumber int, initialValue model.Level) (OutputPin, error) {
	if err := b.claimPin(pinNumber); err != nil {
		return nil, err
	}
	pin, err := gpio.Output(pinNumber, sysfsActiveLow, initialValue.Bool())
	if err != nil {
		b.unclaimPin(pinNumber)
		return nil, hardwareUnavailable(err, "cannot configure sysfs gpio %d as output", pinNumber)
	}
	b.onRelease(func() error {
		if _, err := gpio.Input(pinNumber, sysfsActiveLow); err != nil {
			return hardwareUnavailable(err, "cannot revert sysfs gpio %d to input", pinNumber)
		}
		return nil
	})
	b.log.Debug().Int("pin", pinNumber).Stringer("level", initialValue).Msg("Configured output")
	return b.newOutputPin(pinNumber, func(value model.Level) error {
		return pin.Write(value.Bool())
	}), nil
}
