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

// ParseRequest implements the request schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-4
type ParseRequest struct {
	NetworkID   identifier.Network `json:"network_identifier"`
	Signed      bool               `json:"signed"`
	Transaction string             `json:"transaction"`
}

// ParseResponse implements the response schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-4
type ParseResponse struct {
	Operations []object.Operation   `json:"operations"`
	SignerIDs  []identifier.Account `json:"account_identifier_signers,omitempty"`
}

// Parse implements the /construction/parse endpoint of the Rosetta
// Construction API. It decodes a previously constructed transaction back
// into its operations, so callers can confirm the transaction matches
// their intent before signing or submitting it.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionparse
func (c *Construction) Parse(ctx echo.Context) error {

	var req ParseRequest
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
	if req.Transaction == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("transaction payload missing"))
	}

	err = c.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	operations, signers, err := c.transact.ParseTransaction(req.Transaction, req.Signed)
	var serErr failure.InvalidSerialization
	if errors.As(err, &serErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSerialization(serErr))
	}
	var sigErr failure.InvalidSignature
	if errors.As(err, &sigErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSignature(sigErr))
	}
	var typErr failure.InvalidSignatureType
	if errors.As(err, &typErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSignatureType(typErr))
	}
	var palErr failure.InvalidPayload
	if errors.As(err, &palErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidPayload(palErr))
	}
	var scrErr failure.InvalidScript
	if errors.As(err, &scrErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidScript(scrErr))
	}
	var curErr failure.UnknownCurrency
	if errors.As(err, &curErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, unknownCurrency(curErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := ParseResponse{
		Operations: operations,
		SignerIDs:  signers,
	}

	return ctx.JSON(statusOK, res)
}
