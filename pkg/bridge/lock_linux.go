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
	"os"

	aerr "github.com/ewoutp/go-aggregate-error"
	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive, non-blocking lock on the file with given path.
// The returned function releases the lock.
func lockFile(path string) (func() error, error) {
	if path == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, hardwareUnavailable(err, "cannot open lock file %s", path)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, hardwareUnavailable(err, "GPIO subsystem claimed by another process (%s)", path)
	}
	return func() error {
		var ae aerr.AggregateError
		ae.Add(unix.Flock(int(f.Fd()), unix.LOCK_UN))
		ae.Add(f.Close())
		return ae.AsError()
	}, nil
}
