// Copyright 2017-2026 Ewout Prangsma
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

package main

import (
	"context"
	"fmt"
	"os"

	terminate "github.com/pulcy/go-terminate"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/binkynet/Heartbeat/pkg/bridge"
	"github.com/binkynet/Heartbeat/pkg/environment"
	"github.com/binkynet/Heartbeat/pkg/heartbeat"
	"github.com/binkynet/Heartbeat/pkg/model"
	"github.com/binkynet/Heartbeat/pkg/server"
)

const (
	projectName = "BinkyNet Heartbeat"
)

var (
	projectVersion = "dev"
	projectBuild   = "dev"
)

func main() {
	var levelFlag string
	var pin int
	var bridgeType string
	var chip string
	var lockFile string
	var serverHost string
	var metricsPort int

	pflag.IntVarP(&pin, "pin", "p", heartbeat.DefaultPin, "BCM number of the heartbeat pin")
	pflag.StringVarP(&levelFlag, "level", "l", "info", "Set log level")
	pflag.StringVarP(&bridgeType, "bridge", "b", bridge.TypeAuto, "Type of bridge to use (auto|sysfs|gpiocdev|rpio|periph|virtual)")
	pflag.StringVar(&chip, "chip", bridge.DefaultChip, "GPIO chip used by the gpiocdev bridge")
	pflag.StringVar(&lockFile, "lock-file", bridge.DefaultLockFile, "File locked while the GPIO subsystem is claimed")
	pflag.StringVar(&serverHost, "host", "0.0.0.0", "Host address the HTTP server will listen on")
	pflag.IntVar(&metricsPort, "metrics-port", 0, "Port the HTTP server (health & metrics) will listen on, 0 to disable")
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(levelFlag)
	if err != nil {
		Exitf("Invalid log level '%s': %v\n", levelFlag, err)
	}
	logger = logger.Level(level)

	if bridgeType == bridge.TypeAuto {
		bridgeType = environment.AutoDetectBridgeType(logger)
	}

	fmt.Printf("Starting %s (version %s build %s)\n", projectName, projectVersion, projectBuild)

	// Claim the GPIO subsystem
	br, err := bridge.New(bridge.Config{
		Type:     bridgeType,
		Chip:     chip,
		LockFile: lockFile,
	}, logger)
	if err != nil {
		if model.IsHardwareUnavailable(err) {
			Exitf("GPIO hardware unavailable: %v\n", err)
		}
		Exitf("Failed to initialize %s bridge: %v\n", bridgeType, err)
	}

	driver, err := heartbeat.NewDriver(heartbeat.Config{
		Pin: pin,
	}, heartbeat.Dependencies{
		Logger: logger,
		Bridge: br,
	})
	if err != nil {
		br.Release()
		Exitf("Failed to initialize heartbeat: %v\n", err)
	}

	// Prepare to shutdown in a controlled manor
	ctx, cancel := context.WithCancel(context.Background())
	t := terminate.NewTerminator(func(template string, args ...interface{}) {
		logger.Info().Msgf(template, args...)
	}, cancel)
	go t.ListenSignals()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return driver.Run(ctx) })
	if metricsPort > 0 {
		httpServer, err := server.New(server.Config{
			Host:     serverHost,
			HTTPPort: metricsPort,
		}, logger, driver)
		if err != nil {
			cancel()
			g.Wait()
			Exitf("Failed to initialize Server: %v\n", err)
		}
		g.Go(func() error { return httpServer.Run(ctx) })
	}
	if err := g.Wait(); err != nil {
		if model.IsPinWriteFailure(err) {
			Exitf("Heartbeat pin write failed: %v\n", err)
		}
		Exitf("Heartbeat failed: %v\n", err)
	}
}

// Print the given error message and exit with code 1
func Exitf(message string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, message, args...)
	os.Exit(1)
}
