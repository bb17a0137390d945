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
	"fmt"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/binkynet/Heartbeat/pkg/model"
)

type periphBridge struct {
	*claims
}

// NewPeriphBridge claims the GPIO subsystem using the periph.io host drivers.
func NewPeriphBridge(cfg Config, log zerolog.Logger) (API, error) {
	unlock, err := lockFile(cfg.LockFile)
	if err != nil {
		return nil, err
	}
	state, err := host.Init()
	if err != nil {
		unlock()
		return nil, hardwareUnavailable(err, "cannot initialize periph host drivers")
	}
	for _, failure := range state.Failed {
		log.Debug().Str("driver", failure.D.String()).Err(failure.Err).Msg("periph driver failed to load")
	}
	b := &periphBridge{
		claims: newClaims(TypePeriph, log),
	}
	b.onRelease(unlock)
	return b, nil
}

// Output configures the pin named GPIO<pinNumber> as output.
func (b *periphBridge) Output(pinNumber int, initialValue model.Level) (OutputPin, error) {
	if err := b.claimPin(pinNumber); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("GPIO%d", pinNumber)
	pin := gpioreg.ByName(name)
	if pin == nil {
		b.unclaimPin(pinNumber)
		return nil, model.Causef(model.HardwareUnavailable, "pin %s not found", name)
	}
	if err := pin.Out(gpio.Level(initialValue.Bool())); err != nil {
		b.unclaimPin(pinNumber)
		return nil, hardwareUnavailable(err, "cannot configure %s as output", name)
	}
	b.onRelease(func() error {
		if err := pin.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			return hardwareUnavailable(err, "cannot revert %s to input", name)
		}
		return nil
	})
	b.log.Debug().Str("pin", name).Stringer("level", initialValue).Msg("Configured output")
	return b.newOutputPin(pinNumber, func(value model.Level) error {
		return pin.Out(gpio.Level(value.Bool()))
	}), nil
}
