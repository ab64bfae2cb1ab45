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

package rosetta

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
)

// StatusRequest implements the request schema for /network/status.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request-2
type StatusRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

// StatusResponse implements the response schema for /network/status.
// The full node JSON-RPC API does not expose peer information, so the peer
// list is always empty.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response-2
type StatusResponse struct {
	CurrentBlockID        identifier.Block `json:"current_block_identifier"`
	CurrentBlockTimestamp int64            `json:"current_block_timestamp"`
	GenesisBlockID        identifier.Block `json:"genesis_block_identifier"`
	Peers                 []Peer           `json:"peers"`
}

// Peer identifies a node peer as defined by the Rosetta API specification.
type Peer struct {
	ID string `json:"peer_id"`
}

// Status implements the /network/status endpoint of the Rosetta Data API.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networkstatus
func (d *Data) Status(ctx echo.Context) error {

	var req StatusRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding(err))
	}

	if req.NetworkID.Blockchain == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("network identifier blockchain missing"))
	}
	if req.NetworkID.Network == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("network identifier network missing"))
	}

	err = d.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	current, timestamp, genesis, err := d.retrieve.Status()
	var gwErr failure.GatewayFailure
	if errors.As(err, &gwErr) {
		return echo.NewHTTPError(statusInternalServerError, gatewayError(gwErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := StatusResponse{
		CurrentBlockID:        current,
		CurrentBlockTimestamp: timestamp,
		GenesisBlockID:        genesis,
		Peers:                 []Peer{},
	}

	return ctx.JSON(statusOK, res)
}
