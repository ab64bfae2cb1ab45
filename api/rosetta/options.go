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
	"github.com/diem/rosetta-proxy/rosetta/meta"
)

// OptionsRequest implements the request schema for /network/options.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request-1
type OptionsRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
}

// OptionsResponse implements the response schema for /network/options.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response-1
type OptionsResponse struct {
	Version meta.Version `json:"version"`
	Allow   OptionsAllow `json:"allow"`
}

// OptionsAllow lists the operation statuses, operation types and errors
// this implementation can return.
type OptionsAllow struct {
	Statuses                []meta.StatusDefinition `json:"operation_statuses"`
	OperationTypes          []string                `json:"operation_types"`
	Errors                  []meta.ErrorDefinition  `json:"errors"`
	HistoricalBalanceLookup bool                    `json:"historical_balance_lookup"`
}

// Options implements the /network/options endpoint of the Rosetta Data
// API.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networkoptions
func (d *Data) Options(ctx echo.Context) error {

	var req OptionsRequest
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

	res := OptionsResponse{
		Version: d.config.Version(),
		Allow: OptionsAllow{
			Statuses:                d.config.Statuses(),
			OperationTypes:          d.config.Operations(),
			Errors:                  d.config.Errors(),
			HistoricalBalanceLookup: false,
		},
	}

	return ctx.JSON(statusOK, res)
}
