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
	"github.com/pkg/errors"
)

var (
	// HardwareUnavailable is returned when the GPIO subsystem or the
	// heartbeat pin cannot be claimed.
	HardwareUnavailable = errors.New("gpio hardware unavailable")
	// PinWriteFailure is returned when a level cannot be written to
	// a claimed output pin.
	PinWriteFailure = errors.New("gpio pin write failed")
	// ValidationError is returned for invalid arguments.
	ValidationError = errors.New("validation failed")
)

// IsHardwareUnavailable returns true if the cause of the given error
// is HardwareUnavailable.
func IsHardwareUnavailable(err error) bool {
	return errors.Cause(err) == HardwareUnavailable
}

// IsPinWriteFailure returns true if the cause of the given error
// is PinWriteFailure.
func IsPinWriteFailure(err error) bool {
	return errors.Cause(err) == PinWriteFailure
}

// IsValidationError returns true if the cause of the given error
// is ValidationError.
func IsValidationError(err error) bool {
	return errors.Cause(err) == ValidationError
}

// Causef wraps the given cause with a formatted message, keeping
// the cause available for errors.Cause.
func Causef(cause error, format string, args ...interface{}) error {
	return errors.Wrapf(cause, format, args...)
}

// CauseWith records the given underlying error in the message of the
// given cause.
func CauseWith(cause, err error, msg string) error {
	if err == nil {
		return errors.Wrap(cause, msg)
	}
	return errors.Wrapf(cause, "%s: %v", msg, err)
}
