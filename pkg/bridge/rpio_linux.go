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
	"github.com/rs/zerolog"
	"github.com/stianeikeland/go-rpio/v4"

	"github.com/binkynet/Heartbeat/pkg/model"
)

type rpioBridge struct {
	*claims
}

// NewRPIOBridge claims the GPIO subsystem by memory mapping the GPIO
// registers of a Raspberry Pi. Pins are addressed by BCM number.
func NewRPIOBridge(cfg Config, log zerolog.Logger) (API, error) {
	unlock, err := lockFile(cfg.LockFile)
	if err != nil {
		return nil, err
	}
	if err := rpio.Open(); err != nil {
		unlock()
		return nil, hardwareUnavailable(err, "cannot map GPIO registers")
	}
	b := &rpioBridge{
		claims: newClaims(TypeRPIO, log),
	}
	b.onRelease(unlock)
	b.onRelease(rpio.Close)
	return b, nil
}

// Output configures the pin with given BCM number as output.
func (b *rpioBridge) Output(pinNumber int, initialValue model.Level) (OutputPin, error) {
	if err := b.claimPin(pinNumber); err != nil {
		return nil, err
	}
	if pinNumber > 53 {
		b.unclaimPin(pinNumber)
		return nil, model.Causef(model.ValidationError, "invalid BCM pin %d", pinNumber)
	}
	pin := rpio.Pin(pinNumber)
	// The output latch is set while the pin is still an input,
	// so the pin starts driving the initial level.
	pin.Write(rpioState(initialValue))
	pin.Output()
	b.onRelease(func() error {
		pin.Input()
		return nil
	})
	b.log.Debug().Int("pin", pinNumber).Stringer("level", initialValue).Msg("Configured output")
	return b.newOutputPin(pinNumber, func(value model.Level) error {
		pin.Write(rpioState(value))
		return nil
	}), nil
}

func rpioState(value model.Level) rpio.State {
	if value.Bool() {
		return rpio.High
	}
	return rpio.Low
}
