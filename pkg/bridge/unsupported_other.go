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

//go:build !linux

package bridge

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/binkynet/Heartbeat/pkg/model"
)

// NewSysfsBridge is only available on Linux.
func NewSysfsBridge(cfg Config, log zerolog.Logger) (API, error) {
	return nil, unsupported(TypeSysfs)
}

// NewGPIOCdevBridge is only available on Linux.
func NewGPIOCdevBridge(cfg Config, log zerolog.Logger) (API, error) {
	return nil, unsupported(TypeGPIOCdev)
}

// NewRPIOBridge is only available on Linux.
func NewRPIOBridge(cfg Config, log zerolog.Logger) (API, error) {
	return nil, unsupported(TypeRPIO)
}

func unsupported(bridgeType string) error {
	return model.Causef(model.HardwareUnavailable, "%s bridge is not supported on %s", bridgeType, runtime.GOOS)
}

// lockFile is a no-op outside Linux.
func lockFile(path string) (func() error, error) {
	return func() error { return nil }, nil
}
