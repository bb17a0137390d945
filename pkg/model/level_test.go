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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelInvert(t *testing.T) {
	assert.Equal(t, Low, High.Invert())
	assert.Equal(t, High, Low.Invert())
	assert.Equal(t, High, High.Invert().Invert())
}

func TestLevelConversions(t *testing.T) {
	assert.True(t, High.Bool())
	assert.False(t, Low.Bool())
	assert.Equal(t, 1, High.Int())
	assert.Equal(t, 0, Low.Int())
	assert.Equal(t, "high", High.String())
	assert.Equal(t, "low", Low.String())
}

func TestLevelText(t *testing.T) {
	encoded, err := json.Marshal(struct {
		Level Level `json:"level"`
	}{High})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"high"}`, string(encoded))

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("LOW")))
	assert.Equal(t, Low, l)
	require.NoError(t, l.UnmarshalText([]byte("1")))
	assert.Equal(t, High, l)
	assert.True(t, IsValidationError(l.UnmarshalText([]byte("floating"))))
}
