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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binkynet/Heartbeat/pkg/model"
)

func TestLockFileExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpio.lock")

	unlock, err := lockFile(path)
	require.NoError(t, err)

	_, err = lockFile(path)
	require.Error(t, err)
	assert.True(t, model.IsHardwareUnavailable(err))

	require.NoError(t, unlock())

	unlock, err = lockFile(path)
	require.NoError(t, err)
	assert.NoError(t, unlock())
}

func TestLockFileDisabled(t *testing.T) {
	unlock, err := lockFile("")
	require.NoError(t, err)
	assert.NoError(t, unlock())
}

func TestLockFileUnwritable(t *testing.T) {
	_, err := lockFile(filepath.Join(t.TempDir(), "missing", "gpio.lock"))
	require.Error(t, err)
	assert.True(t, model.IsHardwareUnavailable(err))
}
