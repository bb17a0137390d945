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
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binkynet/Heartbeat/pkg/model"
)

func TestNewUnknownType(t *testing.T) {
	_, err := New(Config{Type: "opz"}, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	assert.Contains(t, err.Error(), "opz")
}

func TestVirtualBridgeLifecycle(t *testing.T) {
	api, err := New(Config{Type: TypeVirtual}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, TypeVirtual, api.Name())
	vb := api.(*virtualBridge)

	pin, err := api.Output(18, model.High)
	require.NoError(t, err)
	level, found := vb.Level(18)
	require.True(t, found)
	assert.Equal(t, model.High, level)

	require.NoError(t, pin.Write(model.Low))
	level, _ = vb.Level(18)
	assert.Equal(t, model.Low, level)

	require.NoError(t, api.Release())
	_, found = vb.Level(18)
	assert.False(t, found, "pin must be reverted on release")

	err = pin.Write(model.High)
	require.Error(t, err)
	assert.True(t, model.IsPinWriteFailure(err))

	_, err = api.Output(18, model.High)
	assert.True(t, model.IsHardwareUnavailable(err))
}

func TestOutputClaimsPinOnce(t *testing.T) {
	api, err := NewVirtualBridge(zerolog.Nop())
	require.NoError(t, err)
	defer api.Release()

	_, err = api.Output(18, model.High)
	require.NoError(t, err)
	_, err = api.Output(18, model.Low)
	assert.True(t, model.IsValidationError(err))
	_, err = api.Output(-1, model.Low)
	assert.True(t, model.IsValidationError(err))
}

func TestReleaseRunsRevertsOnceInReverseOrder(t *testing.T) {
	c := newClaims("test", zerolog.Nop())
	var order []int
	c.onRelease(func() error { order = append(order, 1); return nil })
	c.onRelease(func() error { order = append(order, 2); return errors.New("revert 2 failed") })
	c.onRelease(func() error { order = append(order, 3); return errors.New("revert 3 failed") })

	err := c.Release()
	require.Error(t, err)
	assert.Equal(t, "revert 3 failed, revert 2 failed", err.Error())
	assert.Equal(t, []int{3, 2, 1}, order)

	assert.Equal(t, err, c.Release())
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestOutputPinWriteFailure(t *testing.T) {
	c := newClaims("test", zerolog.Nop())
	pin := c.newOutputPin(18, func(model.Level) error { return errors.New("EIO") })
	err := pin.Write(model.Low)
	require.Error(t, err)
	assert.True(t, model.IsPinWriteFailure(err))
	assert.Contains(t, err.Error(), "write low to pin 18")
	assert.Contains(t, err.Error(), "EIO")
}
