// Copyright 2021 Diem Core Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	api "github.com/diem/rosetta-proxy/api/rosetta"
	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/configuration"
	"github.com/diem/rosetta-proxy/rosetta/retriever"
	"github.com/diem/rosetta-proxy/rosetta/transactor"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAPI     string
		flagNetwork string
		flagLevel   string
		flagPort    uint16
		flagSmart   bool
	)

	pflag.StringVarP(&flagAPI, "api", "a", "http://127.0.0.1:8080", "host URL for the full node JSON-RPC API")
	pflag.StringVarP(&flagNetwork, "network", "n", "testnet", "name of the Diem network to proxy")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.Uint16VarP(&flagPort, "port", "p", 8000, "port to host Rosetta API on")
	pflag.BoolVar(&flagSmart, "smart-status-codes", false, "enable smart non-500 HTTP status codes for Rosetta API errors")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// Enable more expressive HTTP status codes if requested.
	if flagSmart {
		api.EnableSmartCodes()
	}

	// Check if the configured network is valid and set up the static
	// network configuration.
	config, err := configuration.New(flagNetwork)
	if err != nil {
		log.Error().Str("network", flagNetwork).Err(err).Msg("invalid network for configuration")
		return failure
	}

	// Rosetta API initialization.
	gateway := diem.NewGateway(config.ChainID(), flagAPI)
	transact := transactor.New(gateway)
	retrieve := retriever.New(gateway)
	construction := api.NewConstruction(config, transact, retrieve)
	data := api.NewData(config, retrieve)

	elog := lecho.From(log)
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))

	server.POST("/network/list", data.Networks)
	server.POST("/network/options", data.Options)
	server.POST("/network/status", data.Status)
	server.POST("/account/balance", data.Balance)

	server.POST("/construction/derive", construction.Derive)
	server.POST("/construction/preprocess", construction.Preprocess)
	server.POST("/construction/metadata", construction.Metadata)
	server.POST("/construction/payloads", construction.Payloads)
	server.POST("/construction/parse", construction.Parse)
	server.POST("/construction/combine", construction.Combine)
	server.POST("/construction/hash", construction.Hash)
	server.POST("/construction/submit", construction.Submit)

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Msg("Diem Rosetta Proxy starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Diem Rosetta Proxy failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Diem Rosetta Proxy stopped")
	}()

	select {
	case <-sig:
		log.Info().Msg("Diem Rosetta Proxy stopping")
	case <-done:
		log.Info().Msg("Diem Rosetta Proxy done")
	case <-failed:
		log.Warn().Msg("Diem Rosetta Proxy aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down Rosetta API")
		return failure
	}

	return success
}
