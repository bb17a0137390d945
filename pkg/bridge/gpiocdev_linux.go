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
	"github.com/warthog618/go-gpiocdev"

	"github.com/binkynet/Heartbeat/pkg/model"
)

type gpiocdevBridge struct {
	*claims
	chip *gpiocdev.Chip
}

// NewGPIOCdevBridge claims the GPIO subsystem through the GPIO character
// device of the configured chip. On Raspberry Pi's, line offsets of
// gpiochip0 equal BCM numbers.
func NewGPIOCdevBridge(cfg Config, log zerolog.Logger) (API, error) {
	chipName := cfg.Chip
	if chipName == "" {
		chipName = DefaultChip
	}
	unlock, err := lockFile(cfg.LockFile)
	if err != nil {
		return nil, err
	}
	chip, err := gpiocdev.NewChip(chipName, gpiocdev.WithConsumer(consumerName))
	if err != nil {
		unlock()
		return nil, hardwareUnavailable(err, "cannot open GPIO chip %s", chipName)
	}
	b := &gpiocdevBridge{
		claims: newClaims(TypeGPIOCdev, log.With().Str("chip", chipName).Logger()),
		chip:   chip,
	}
	b.onRelease(unlock)
	b.onRelease(chip.Close)
	return b, nil
}

// Output requests the line with given offset as an output
// with given initial value.
func (b *gpiocdevBridge) Output(pinNumber int, initialValue model.Level) (OutputPin, error) {
	if err := b.claimPin(pinNumber); err != nil {
		return nil, err
	}
	line, err := b.chip.RequestLine(pinNumber, gpiocdev.AsOutput(initialValue.Int()))
	if err != nil {
		b.unclaimPin(pinNumber)
		return nil, hardwareUnavailable(err, "cannot request line %d as output", pinNumber)
	}
	b.onRelease(func() error {
		// Revert line to input before handing it back to the kernel.
		if err := line.Reconfigure(gpiocdev.AsInput); err != nil {
			line.Close()
			return hardwareUnavailable(err, "cannot revert line %d to input", pinNumber)
		}
		return line.Close()
	})
	b.log.Debug().Int("pin", pinNumber).Stringer("level", initialValue).Msg("Requested output line")
	return b.newOutputPin(pinNumber, func(value model.Level) error {
		return line.SetValue(value.Int())
	}), nil
}
