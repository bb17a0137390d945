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
	"sync"

	"github.com/rs/zerolog"

	"github.com/binkynet/Heartbeat/pkg/model"
)

type virtualBridge struct {
	*claims

	mutex  sync.Mutex
	levels map[int]model.Level
}

// NewVirtualBridge implements the bridge for hosts without GPIO hardware.
// Pin changes are only logged.
func NewVirtualBridge(log zerolog.Logger) (API, error) {
	b := &virtualBridge{
		claims: newClaims(TypeVirtual, log),
		levels: make(map[int]model.Level),
	}
	b.onRelease(func() error {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		for pinNumber := range b.levels {
			delete(b.levels, pinNumber)
			b.log.Debug().Int("pin", pinNumber).Msg("Virtual pin reverted to input")
		}
		return nil
	})
	return b, nil
}

// Output initializes a virtual output pin with the given pin number
// and initial value.
func (b *virtualBridge) Output(pinNumber int, initialValue model.Level) (OutputPin, error) {
	if err := b.claimPin(pinNumber); err != nil {
		return nil, err
	}
	b.set(pinNumber, initialValue)
	return b.newOutputPin(pinNumber, func(value model.Level) error {
		b.set(pinNumber, value)
		return nil
	}), nil
}

// Level returns the current level of the given pin and true
// if it is configured as output.
func (b *virtualBridge) Level(pinNumber int) (model.Level, bool) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	value, found := b.levels[pinNumber]
	return value, found
}

func (b *virtualBridge) set(pinNumber int, value model.Level) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.levels[pinNumber] = value
	b.log.Debug().Int("pin", pinNumber).Stringer("level", value).Msg("Virtual pin set")
}
