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

// CombineRequest implements the request schema for /construction/combine.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request
type CombineRequest struct {
	NetworkID           identifier.Network `json:"network_identifier"`
	UnsignedTransaction string             `json:"unsigned_transaction"`
	Signatures          []object.Signature `json:"signatures"`
}

// CombineResponse implements the response schema for /construction/combine.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response
type CombineResponse struct {
	SignedTransaction string `json:"signed_transaction"`
}

// Combine implements the /construction/combine endpoint of the Rosetta
// Construction API. It creates a signed transaction by combining an
// unsigned transaction and a signature.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructioncombine
func (c *Construction) Combine(ctx echo.Context) error {

	var req CombineRequest
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
	if req.UnsignedTransaction == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("unsigned transaction missing"))
	}

	err = c.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	signed, err := c.transact.AttachSignatures(req.UnsignedTransaction, req.Signatures)
	var serErr failure.InvalidSerialization
	if errors.As(err, &serErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSerialization(serErr))
	}
	var cntErr failure.InvalidSignatureCount
	if errors.As(err, &cntErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSignatureCount(cntErr))
	}
	var typErr failure.InvalidSignatureType
	if errors.As(err, &typErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSignatureType(typErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := CombineResponse{
		SignedTransaction: signed,
	}

	return ctx.JSON(statusOK, res)
}
