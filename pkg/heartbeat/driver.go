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

package heartbeat

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/binkynet/Heartbeat/pkg/bridge"
	"github.com/binkynet/Heartbeat/pkg/model"
)

const (
	// DefaultPin is the BCM number of the heartbeat pin.
	DefaultPin = 18
	// DefaultInterval is the time between two level changes.
	DefaultInterval = time.Second
)

var (
	maskAny = errors.WithStack
)

// Config of the heartbeat driver.
type Config struct {
	// BCM number of the pin to toggle
	Pin int
	// Time between two level changes
	Interval time.Duration
}

// Dependencies of the heartbeat driver.
type Dependencies struct {
	Logger zerolog.Logger
	// Claimed GPIO subsystem. The driver releases it when Run returns.
	Bridge bridge.API
	// Source of time, defaults to the real clock.
	Clock clockwork.Clock
}

// Status of the heartbeat pin.
type Status struct {
	// BCM number of the heartbeat pin
	Pin int `json:"pin"`
	// Current level of the pin
	Level model.Level `json:"level"`
	// Number of level changes written since the pin was configured
	Ticks uint64 `json:"ticks"`
	// Set while the pin is under control of the driver
	Running bool `json:"running"`
	// Time the pin was configured
	StartedAt time.Time `json:"started_at"`
}

// Driver toggles a single GPIO pin at a fixed interval.
type Driver struct {
	Config
	Dependencies

	mutex  sync.Mutex
	status Status
}

// NewDriver creates a Driver for the given configuration.
func NewDriver(cfg Config, deps Dependencies) (*Driver, error) {
	if cfg.Pin < 0 {
		return nil, model.Causef(model.ValidationError, "invalid pin %d", cfg.Pin)
	}
	if cfg.Interval == 0 {
		cfg.Interval = DefaultInterval
	} else if cfg.Interval < 0 {
		return nil, model.Causef(model.ValidationError, "invalid interval %s", cfg.Interval)
	}
	if deps.Bridge == nil {
		return nil, model.Causef(model.ValidationError, "bridge missing")
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	deps.Logger = deps.Logger.With().
		Str("component", "heartbeat").
		Int("pin", cfg.Pin).
		Logger()
	return &Driver{
		Config:       cfg,
		Dependencies: deps,
		status: Status{
			Pin: cfg.Pin,
		},
	}, nil
}

// Run configures the pin as output at high level and inverts its level
// every interval until the given context is canceled or a write fails.
// The bridge is released on every return path, exactly once.
func (d *Driver) Run(ctx context.Context) (result error) {
	log := d.Logger
	defer func() {
		if err := d.release(); err != nil && result == nil {
			result = errors.Wrap(err, "Release failed")
		}
	}()

	level := model.High
	pin, err := d.Bridge.Output(d.Pin, level)
	if err != nil {
		log.Error().Err(err).Msg("Failed to configure heartbeat pin")
		if !model.IsHardwareUnavailable(err) {
			return model.CauseWith(model.HardwareUnavailable, err, "Output failed")
		}
		return errors.Wrap(err, "Output failed")
	}
	d.started(level)
	levelGauge.Set(float64(level.Int()))
	log.Info().
		Str("bridge", d.Bridge.Name()).
		Dur("interval", d.Interval).
		Msg("Heartbeat started")

	for tick := uint64(1); ; tick++ {
		select {
		case <-ctx.Done():
			log.Info().Msg("Stopping heartbeat; context canceled")
			return nil
		case <-d.Clock.After(d.Interval):
			// Continue
		}
		next := level.Invert()
		if err := pin.Write(next); err != nil {
			writeFailuresTotal.Inc()
			log.Error().Err(err).Uint64("tick", tick).Msg("Failed to write heartbeat")
			if !model.IsPinWriteFailure(err) {
				return model.CauseWith(model.PinWriteFailure, err, "Write failed")
			}
			return maskAny(err)
		}
		level = next
		d.ticked(level, tick)
		ticksTotal.Inc()
		levelGauge.Set(float64(level.Int()))
		log.Debug().Uint64("tick", tick).Stringer("level", level).Msg("Heartbeat")
	}
}

// Status returns a snapshot of the heartbeat pin status.
func (d *Driver) Status() Status {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.status
}

func (d *Driver) started(level model.Level) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.status.Level = level
	d.status.Running = true
	d.status.StartedAt = d.Clock.Now()
}

func (d *Driver) ticked(level model.Level, tick uint64) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.status.Level = level
	d.status.Ticks = tick
}

func (d *Driver) release() error {
	d.mutex.Lock()
	d.status.Running = false
	d.mutex.Unlock()
	return d.Bridge.Release()
}
