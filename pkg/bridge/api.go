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
	"github.com/binkynet/Heartbeat/pkg/model"
)

// API of the bridge, the claimed GPIO subsystem of the host.
// A bridge is created by one of the New... functions, which claim
// exclusive control over the GPIO subsystem using BCM pin numbering.
type API interface {
	// Name of the bridge type
	Name() string
	// Output configures the pin with given (BCM) number as a digital
	// output, driving the given initial level from the moment it
	// becomes an output.
	Output(pinNumber int, initialValue model.Level) (OutputPin, error)
	// Release reverts all claimed pins to input and relinquishes
	// control over the GPIO subsystem.
	// Calling Release more than once is a no-op that returns the
	// result of the first call.
	Release() error
}

// OutputPin is the interface satisfied by GPIO output pins.
type OutputPin interface {
	// Write the given level to the pin.
	Write(model.Level) error
}
