// Copyright 2023-2026 Ewout Prangsma
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

package server

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/binkynet/Heartbeat/pkg/heartbeat"
)

// Config for the HTTP server.
type Config struct {
	// Host interface to listen on
	Host string
	// Port to listen on for HTTP requests
	HTTPPort int
}

// Server runs the HTTP server exposing heartbeat status and metrics.
type Server struct {
	Config
	log    zerolog.Logger
	status StatusProvider
}

// StatusProvider gives access to the heartbeat status.
type StatusProvider interface {
	Status() heartbeat.Status
}

// healthResponse is returned by GET /health.
type healthResponse struct {
	heartbeat.Status
	Uptime string `json:"uptime,omitempty"`
}

// New configures a new Server.
func New(cfg Config, log zerolog.Logger, status StatusProvider) (*Server, error) {
	if cfg.HTTPPort <= 0 {
		return nil, errors.Errorf("invalid HTTP port %d", cfg.HTTPPort)
	}
	return &Server{
		Config: cfg,
		log:    log.With().Str("component", "server").Logger(),
		status: status,
	}, nil
}

// Run the server until the given context is canceled.
func (s *Server) Run(ctx context.Context) error {
	// Prepare HTTP listener
	log := s.log
	httpAddr := net.JoinHostPort(s.Host, strconv.Itoa(s.HTTPPort))
	httpLis, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on address %s", httpAddr)
	}

	// Prepare HTTP server
	httpSrv := http.Server{
		Handler: s.newRouter(),
	}

	// Serve apis
	log.Debug().Str("address", httpAddr).Msg("Serving HTTP")
	serveErr := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(httpLis); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
		log.Debug().Str("address", httpAddr).Msg("Done Serving HTTP")
	}()

	// Wait until context closed
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		return errors.Wrap(err, "failed to serve HTTP server")
	}

	log.Info().Msg("Closing server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func (s *Server) newRouter() *echo.Echo {
	httpRouter := echo.New()
	httpRouter.HideBanner = true
	httpRouter.HidePort = true
	httpRouter.GET("/health", s.healthHandler)
	httpRouter.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	httpRouter.GET("/debug/pprof/*", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	return httpRouter
}

func (s *Server) healthHandler(c echo.Context) error {
	status := s.status.Status()
	resp := healthResponse{Status: status}
	if !status.StartedAt.IsZero() {
		resp.Uptime = strings.TrimSpace(humanize.RelTime(status.StartedAt, time.Now(), "", ""))
	}
	code := http.StatusOK
	if !status.Running {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}
