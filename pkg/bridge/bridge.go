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
	"strings"

	"github.com/rs/zerolog"

	"github.com/binkynet/Heartbeat/pkg/model"
)

const (
	// TypeAuto selects the bridge type based on the environment.
	TypeAuto = "auto"
	// TypeSysfs uses the legacy /sys/class/gpio interface.
	TypeSysfs = "sysfs"
	// TypeGPIOCdev uses the GPIO character device (/dev/gpiochipN).
	TypeGPIOCdev = "gpiocdev"
	// TypeRPIO uses memory mapped registers of Raspberry Pi's (/dev/gpiomem).
	TypeRPIO = "rpio"
	// TypePeriph uses the periph.io host drivers.
	TypePeriph = "periph"
	// TypeVirtual only logs pin changes.
	TypeVirtual = "virtual"

	// DefaultChip is the GPIO character device used when none is given.
	DefaultChip = "gpiochip0"
	// DefaultLockFile is the file locked while the GPIO subsystem is claimed.
	DefaultLockFile = "/run/lock/binky-heartbeat.lock"

	consumerName = "binky-heartbeat"
)

// Types returns all bridge types accepted by New, except TypeAuto.
func Types() []string {
	return []string{TypeSysfs, TypeGPIOCdev, TypeRPIO, TypePeriph, TypeVirtual}
}

// Config for creating a bridge.
type Config struct {
	// Type of bridge (sysfs|gpiocdev|rpio|periph|virtual)
	Type string
	// Chip name used by the gpiocdev bridge
	Chip string
	// Path of the lock file used to claim exclusive control.
	// Empty disables locking.
	LockFile string
}

// New claims the GPIO subsystem using a bridge of the configured type.
// If the subsystem cannot be claimed, an error with cause
// model.HardwareUnavailable is returned.
func New(cfg Config, log zerolog.Logger) (API, error) {
	log = log.With().Str("component", "bridge").Str("bridge", cfg.Type).Logger()
	var result API
	var err error
	switch strings.ToLower(cfg.Type) {
	case TypeSysfs:
		result, err = NewSysfsBridge(cfg, log)
	case TypeGPIOCdev:
		result, err = NewGPIOCdevBridge(cfg, log)
	case TypeRPIO:
		result, err = NewRPIOBridge(cfg, log)
	case TypePeriph:
		result, err = NewPeriphBridge(cfg, log)
	case TypeVirtual:
		result, err = NewVirtualBridge(log)
	default:
		return nil, model.Causef(model.ValidationError, "unknown bridge type '%s' (%s)", cfg.Type, strings.Join(Types(), "|"))
	}
	if err != nil {
		claimErrorCounters.WithLabelValues(cfg.Type).Inc()
		return nil, err
	}
	claimCounters.WithLabelValues(cfg.Type).Inc()
	log.Info().Msg("Claimed GPIO subsystem")
	return result, nil
}

func hardwareUnavailable(err error, format string, args ...interface{}) error {
	return model.CauseWith(model.HardwareUnavailable, err, fmt.Sprintf(format, args...))
}
