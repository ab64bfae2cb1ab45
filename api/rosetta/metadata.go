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
	"github.com/diem/rosetta-proxy/rosetta/object"
)

// MetadataRequest implements the request schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-5
type MetadataRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	Options   object.Options     `json:"options"`
}

// MetadataResponse implements the response schema for
// /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-5
type MetadataResponse struct {
	Metadata object.Metadata `json:"metadata"`
}

// Metadata implements the /construction/metadata endpoint of the Rosetta
// Construction API. It fetches the chain ID and the sender's current
// sequence number, which the payloads endpoint needs to assemble a
// transaction.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionmetadata
func (c *Construction) Metadata(ctx echo.Context) error {

	var req MetadataRequest
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
	if req.Options.SenderAddress == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("options sender address missing"))
	}
	if len(req.Options.SenderAddress) != hexAddressSize {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("options sender address wrong length (have: %d, want: %d)", len(req.Options.SenderAddress), hexAddressSize))
	}

	err = c.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	metadata, err := c.retrieve.AccountMetadata(req.Options.SenderAddress)
	var accErr failure.UnknownAccount
	if errors.As(err, &accErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, unknownAccount(accErr))
	}
	var gwErr failure.GatewayFailure
	if errors.As(err, &gwErr) {
		return echo.NewHTTPError(statusInternalServerError, gatewayError(gwErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := MetadataResponse{
		Metadata: metadata,
	}

	return ctx.JSON(statusOK, res)
}
