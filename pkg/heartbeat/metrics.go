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

package heartbeat

import (
	"github.com/binkynet/Heartbeat/pkg/metrics"
)

const (
	subSystem = "driver"
)

var (
	// Total number of heartbeat level changes written
	ticksTotal = metrics.MustRegisterCounter(subSystem,
		"ticks_total",
		"Total number of heartbeat level changes written")
	// Total number of failed heartbeat writes
	writeFailuresTotal = metrics.MustRegisterCounter(subSystem,
		"write_failures_total",
		"Total number of failed heartbeat writes")
	// Current level of the heartbeat pin (1=high, 0=low)
	levelGauge = metrics.MustRegisterGauge(subSystem,
		"level",
		"Current level of the heartbeat pin (1=high, 0=low)")
)
