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

// HashRequest implements the request schema for /construction/hash.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-2
type HashRequest struct {
	NetworkID         identifier.Network `json:"network_identifier"`
	SignedTransaction string             `json:"signed_transaction"`
}

// HashResponse implements the response schema for /construction/hash.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-2
type HashResponse struct {
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// Hash implements the /construction/hash endpoint of the Rosetta
// Construction API. It computes the on-chain transaction identifier of a
// signed transaction without submitting it.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionhash
func (c *Construction) Hash(ctx echo.Context) error {

	var req HashRequest
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
	if req.SignedTransaction == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("signed transaction missing"))
	}

	err = c.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	transaction, err := c.transact.TransactionIdentifier(req.SignedTransaction)
	var serErr failure.InvalidSerialization
	if errors.As(err, &serErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSerialization(serErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := HashResponse{
		TransactionID: transaction,
	}

	return ctx.JSON(statusOK, res)
}
