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

// DeriveRequest implements the request schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request
type DeriveRequest struct {
	NetworkID identifier.Network `json:"network_identifier"`
	PublicKey object.PublicKey   `json:"public_key"`
}

// DeriveResponse implements the response schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response
type DeriveResponse struct {
	AccountID identifier.Account `json:"account_identifier"`
}

// Derive implements the /construction/derive endpoint of the Rosetta
// Construction API. It derives the account identifier controlled by the
// given public key.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionderive
func (c *Construction) Derive(ctx echo.Context) error {

	var req DeriveRequest
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
	if req.PublicKey.HexBytes == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("public key bytes missing"))
	}

	err = c.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	account, err := c.transact.DeriveAccount(req.PublicKey)
	var sErr failure.InvalidSerialization
	if errors.As(err, &sErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSerialization(sErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := DeriveResponse{
		AccountID: account,
	}

	return ctx.JSON(statusOK, res)
}
