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
	"github.com/binkynet/Heartbeat/pkg/metrics"
)

const (
	subSystem = "bridge"
)

var (
	// Total number of successful GPIO subsystem claims
	claimCounters = metrics.MustRegisterCounterVec(subSystem,
		"claim_total",
		"Total number of successful GPIO subsystem claims",
		"bridge")
	// Total number of failed GPIO subsystem claims
	claimErrorCounters = metrics.MustRegisterCounterVec(subSystem,
		"claim_error_total",
		"Total number of failed GPIO subsystem claims",
		"bridge")
	// Total number of GPIO subsystem releases
	releaseCounters = metrics.MustRegisterCounterVec(subSystem,
		"release_total",
		"Total number of GPIO subsystem releases",
		"bridge")
	// Total number of times OutputPin.Write is called successfully
	writeCounters = metrics.MustRegisterCounterVec(subSystem,
		"write_total",
		"Total number of times OutputPin.Write succeeded",
		"bridge")
	// Total number of times OutputPin.Write failed
	writeErrorCounters = metrics.MustRegisterCounterVec(subSystem,
		"write_error_total",
		"Total number of times OutputPin.Write failed",
		"bridge")
)
