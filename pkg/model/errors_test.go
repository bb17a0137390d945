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

package model

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	err := Causef(HardwareUnavailable, "pin %d", 18)
	assert.True(t, IsHardwareUnavailable(err))
	assert.False(t, IsPinWriteFailure(err))
	assert.Contains(t, err.Error(), "pin 18")

	err = errors.Wrap(CauseWith(PinWriteFailure, fmt.Errorf("EIO"), "tick 3"), "run")
	assert.True(t, IsPinWriteFailure(err))
	assert.Contains(t, err.Error(), "EIO")

	assert.False(t, IsValidationError(fmt.Errorf("other")))
	assert.False(t, IsHardwareUnavailable(nil))
}

func TestCauseWithNil(t *testing.T) {
	err := CauseWith(ValidationError, nil, "pin -1")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "pin -1: validation failed", err.Error())
}
