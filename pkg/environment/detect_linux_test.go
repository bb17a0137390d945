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

package environment

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/binkynet/Heartbeat/pkg/bridge"
)

func TestBridgeTypeFor(t *testing.T) {
	assert.Equal(t, bridge.TypeVirtual, bridgeTypeFor("x86_64", true))
	assert.Equal(t, bridge.TypeGPIOCdev, bridgeTypeFor("armv7l", true))
	assert.Equal(t, bridge.TypeGPIOCdev, bridgeTypeFor("aarch64", true))
	assert.Equal(t, bridge.TypeSysfs, bridgeTypeFor("armv6l", false))
	assert.Equal(t, bridge.TypeSysfs, bridgeTypeFor(" AARCH64\n", false))
}

func TestAutoDetectBridgeType(t *testing.T) {
	result := AutoDetectBridgeType(zerolog.Nop())
	assert.Contains(t, bridge.Types(), result)
}
