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
	"sync"

	aerr "github.com/ewoutp/go-aggregate-error"
	"github.com/rs/zerolog"

	"github.com/binkynet/Heartbeat/pkg/model"
)

// claims keeps track of everything a bridge has claimed, so
// it can all be handed back in reverse order on Release.
type claims struct {
	name string
	log  zerolog.Logger

	mutex      sync.Mutex
	pins       map[int]struct{}
	reverts    []func() error
	released   bool
	releaseOne sync.Once
	releaseErr error
}

func newClaims(name string, log zerolog.Logger) *claims {
	return &claims{
		name: name,
		log:  log,
		pins: make(map[int]struct{}),
	}
}

// Name of the bridge type
func (c *claims) Name() string {
	return c.name
}

// onRelease registers a callback that is invoked on Release.
// Callbacks are invoked in reverse order of registration.
func (c *claims) onRelease(revert func() error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.reverts = append(c.reverts, revert)
}

// claimPin marks the given pin as claimed.
func (c *claims) claimPin(pinNumber int) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.released {
		return model.Causef(model.HardwareUnavailable, "%s bridge already released", c.name)
	}
	if pinNumber < 0 {
		return model.Causef(model.ValidationError, "invalid pin %d", pinNumber)
	}
	if _, found := c.pins[pinNumber]; found {
		return model.Causef(model.ValidationError, "pin %d already claimed", pinNumber)
	}
	c.pins[pinNumber] = struct{}{}
	return nil
}

// unclaimPin undoes a claimPin after a failed configuration.
func (c *claims) unclaimPin(pinNumber int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.pins, pinNumber)
}

func (c *claims) isReleased() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.released
}

// Release reverts all claimed pins to input and relinquishes
// control over the GPIO subsystem.
func (c *claims) Release() error {
	c.releaseOne.Do(func() {
		c.mutex.Lock()
		c.released = true
		reverts := c.reverts
		c.reverts = nil
		c.mutex.Unlock()

		var ae aerr.AggregateError
		for i := len(reverts) - 1; i >= 0; i-- {
			ae.Add(reverts[i]())
		}
		c.releaseErr = ae.AsError()
		releaseCounters.WithLabelValues(c.name).Inc()
		if c.releaseErr != nil {
			c.log.Error().Err(c.releaseErr).Msg("Failed to release GPIO subsystem")
		} else {
			c.log.Info().Msg("Released GPIO subsystem")
		}
	})
	return c.releaseErr
}

// newOutputPin wraps the given write function into an OutputPin
// that fails with model.PinWriteFailure.
func (c *claims) newOutputPin(pinNumber int, write func(model.Level) error) OutputPin {
	return &outputPin{
		claims:    c,
		pinNumber: pinNumber,
		write:     write,
	}
}

type outputPin struct {
	claims    *claims
	pinNumber int
	write     func(model.Level) error
}

// Write the given level to the pin.
func (p *outputPin) Write(value model.Level) error {
	name := p.claims.name
	if p.claims.isReleased() {
		writeErrorCounters.WithLabelValues(name).Inc()
		return model.Causef(model.PinWriteFailure, "pin %d written after release", p.pinNumber)
	}
	if err := p.write(value); err != nil {
		writeErrorCounters.WithLabelValues(name).Inc()
		return model.CauseWith(model.PinWriteFailure, err, fmt.Sprintf("write %s to pin %d", value, p.pinNumber))
	}
	writeCounters.WithLabelValues(name).Inc()
	return nil
}
